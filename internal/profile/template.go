package profile

import (
	"fmt"
	"regexp"
	"strings"
)

var slotPattern = regexp.MustCompile(`\{([a-z_]+)\}`)

// Template is a text template with named slots. Slots are extracted once at
// construction; rendering fails loudly on an unresolvable slot instead of
// leaving literal {token} text in output.
type Template struct {
	Text  string
	Slots []string
}

// Resolver maps a slot name to its value. Returning an error aborts the
// render.
type Resolver func(slot string) (string, error)

// T builds a Template from raw text, extracting its slots.
func T(text string) Template {
	var slots []string
	seen := make(map[string]bool)
	for _, m := range slotPattern.FindAllStringSubmatch(text, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			slots = append(slots, m[1])
		}
	}
	return Template{Text: text, Slots: slots}
}

// Render fills every slot via the resolver.
func (t Template) Render(resolve Resolver) (string, error) {
	out := t.Text
	for _, slot := range t.Slots {
		val, err := resolve(slot)
		if err != nil {
			return "", fmt.Errorf("template slot %q: %w", slot, err)
		}
		out = strings.ReplaceAll(out, "{"+slot+"}", val)
	}
	return out, nil
}

// MapResolver resolves slots from a fixed map, erroring on misses.
func MapResolver(values map[string]string) Resolver {
	return func(slot string) (string, error) {
		val, ok := values[slot]
		if !ok {
			return "", fmt.Errorf("no value for slot")
		}
		return val, nil
	}
}
