// Package api exposes the engine's read surface and mutating entry points
// over HTTP for UI collaborators.
package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/avens/star-society/internal/population"
	"github.com/avens/star-society/internal/profile"
	"github.com/avens/star-society/internal/social"
)

// Server serves the engine over HTTP.
type Server struct {
	Gen   *population.Generator
	Graph *social.Graph
	Port  int

	httpServer *http.Server
}

// Start launches the server in the background.
func (s *Server) Start() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/status", s.handleStatus)
		r.Get("/stats", s.handleStats)
		r.Get("/profiles", s.handleProfiles)
		r.Get("/profiles/{id}", s.handleProfile)
		r.Get("/profiles/{id}/followers", s.handleFollowers)
		r.Post("/profiles", s.handleRegister)
		r.Post("/follow", s.handleFollow)
		r.Post("/interactions", s.handleInteraction)
		r.Post("/generate", s.handleGenerate)
	})

	s.httpServer = &http.Server{
		Addr:    fmt.Sprintf(":%d", s.Port),
		Handler: r,
	}

	go func() {
		slog.Info("api server listening", "port", s.Port)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("api server failed", "error", err)
		}
	}()
}

// Stop shuts the server down.
func (s *Server) Stop() {
	if s.httpServer != nil {
		s.httpServer.Close()
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("response encode failed", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	stats := s.Gen.PopulationStats()
	writeJSON(w, http.StatusOK, map[string]any{
		"population": stats.TotalGenerated,
		"target":     stats.TargetPopulation,
		"completion": fmt.Sprintf("%.1f%%", stats.CompletionPercentage),
		"queued":     stats.QueuedBatches,
	})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Gen.PopulationStats())
}

func (s *Server) handleProfiles(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var profiles []*profile.Profile
	if kind := q.Get("type"); kind != "" {
		profiles = s.Gen.GetByType(profile.RoleKind(kind))
	} else {
		profiles = s.Gen.GetByLocation(q.Get("system"), q.Get("planet"), q.Get("city"))
	}

	limit := 100
	if v := q.Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	if len(profiles) > limit {
		profiles = profiles[:limit]
	}

	type summary struct {
		ID         string           `json:"id"`
		Name       string           `json:"name"`
		Role       profile.RoleKind `json:"role"`
		Profession string           `json:"profession,omitempty"`
		System     string           `json:"system"`
		Planet     string           `json:"planet,omitempty"`
		City       string           `json:"city,omitempty"`
		Reputation float64          `json:"reputation"`
		Followers  int              `json:"followers"`
	}
	out := make([]summary, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, summary{
			ID:         p.ID,
			Name:       p.Name,
			Role:       p.Role,
			Profession: p.Profession,
			System:     p.Location.SystemID,
			Planet:     p.Location.PlanetID,
			City:       p.Location.CityID,
			Reputation: p.Reputation.Overall,
			Followers:  p.Stats.Followers,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	p, ok := s.Gen.GetByID(id)
	if !ok {
		writeError(w, http.StatusNotFound, "profile not found")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleFollowers(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	writeJSON(w, http.StatusOK, map[string]any{
		"id":        id,
		"count":     s.Graph.FollowerCount(id),
		"followers": s.Graph.Followers(id),
	})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var p profile.Profile
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, "invalid profile payload")
		return
	}
	if p.ID == "" || p.Name == "" {
		writeError(w, http.StatusBadRequest, "profile requires id and name")
		return
	}
	s.Graph.RegisterProfile(&p)
	writeJSON(w, http.StatusCreated, map[string]string{"id": p.ID})
}

func (s *Server) handleFollow(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FollowerID string `json:"follower_id"`
		TargetID   string `json:"target_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid follow payload")
		return
	}
	following := s.Graph.IsFollowing(req.FollowerID, req.TargetID)
	s.Graph.Follow(req.FollowerID, req.TargetID, following)
	writeJSON(w, http.StatusOK, map[string]any{
		"following": !following,
		"followers": s.Graph.FollowerCount(req.TargetID),
	})
}

func (s *Server) handleInteraction(w http.ResponseWriter, r *http.Request) {
	var rec social.Interaction
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		writeError(w, http.StatusBadRequest, "invalid interaction payload")
		return
	}
	if rec.ActorID == "" || rec.TargetID == "" {
		writeError(w, http.StatusBadRequest, "interaction requires actor_id and target_id")
		return
	}
	rec.Origin = social.OriginPlayer
	s.Graph.SubmitInteraction(&rec)
	writeJSON(w, http.StatusAccepted, map[string]string{"id": rec.ID})
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		LocationID string `json:"location_id"`
		Count      int    `json:"count"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid generate payload")
		return
	}
	if req.Count <= 0 || req.Count > 1000 {
		writeError(w, http.StatusBadRequest, "count must be 1-1000")
		return
	}
	generated, err := s.Gen.ForceGenerate(req.LocationID, req.Count)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, map[string]int{"generated": len(generated)})
}
