package catalog

import (
	"strings"

	"github.com/Nick-prog/Microsoft-API-Email/internal/errors"
)

// Load returns the seed endpoint descriptors. Pure data constructor: the
// only failure mode is malformed seed data, which Lint catches in tests,
// so Load itself never errors.
func Load() []EndpointDescriptor {
	out := make([]EndpointDescriptor, len(seed))
	copy(out, seed)
	return out
}

// FindByID looks an endpoint up by its id, case-insensitively.
func FindByID(endpoints []EndpointDescriptor, id string) (*EndpointDescriptor, error) {
	for i := range endpoints {
		if strings.EqualFold(endpoints[i].ID, id) {
			return &endpoints[i], nil
		}
	}
	return nil, errors.New(errors.ErrorTypeCatalog, "no such endpoint").
		WithContext("endpoint", id)
}

// Search narrows the catalog. Zero values match everything.
type Search struct {
	// Term matches case-insensitively against name, description and URL.
	Term     string
	Category string
	Version  Version
	Method   string
}

// Select returns the endpoints matching the search, preserving catalog order.
func (s Search) Select(endpoints []EndpointDescriptor) []EndpointDescriptor {
	var out []EndpointDescriptor

	for _, ep := range endpoints {
		if s.Term != "" && !matchesTerm(&ep, s.Term) {
			continue
		}
		if s.Category != "" && !strings.EqualFold(ep.Category, s.Category) {
			continue
		}
		if s.Version != "" && ep.Version != s.Version {
			continue
		}
		if s.Method != "" && !strings.EqualFold(ep.Method, s.Method) {
			continue
		}
		out = append(out, ep)
	}

	return out
}

func matchesTerm(ep *EndpointDescriptor, term string) bool {
	term = strings.ToLower(term)
	for _, text := range []string{ep.Name, ep.Description, ep.BaseURL} {
		if strings.Contains(strings.ToLower(text), term) {
			return true
		}
	}
	return false
}

// Categories returns the distinct categories present, in catalog order.
func Categories(endpoints []EndpointDescriptor) []string {
	var out []string
	seen := make(map[string]bool)
	for _, ep := range endpoints {
		if !seen[ep.Category] {
			seen[ep.Category] = true
			out = append(out, ep.Category)
		}
	}
	return out
}
