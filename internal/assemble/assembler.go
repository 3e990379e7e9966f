// Package assemble turns an endpoint plus its active filter fragments into
// one well-formed query URL. It never executes the request.
package assemble

import (
	"strings"

	"github.com/Nick-prog/Microsoft-API-Email/internal/catalog"
	"github.com/Nick-prog/Microsoft-API-Email/internal/errors"
	"github.com/Nick-prog/Microsoft-API-Email/internal/filter"
)

// filterFamily is the query key whose fragments coalesce instead of
// colliding: Graph-style grammars accept a single $filter clause.
const filterFamily = "$filter"

// DefaultTop is appended when assembly is asked to guarantee a page size
// and no active fragment already sets $top.
const DefaultTop = "100"

// Option adjusts assembly behavior.
type Option func(*settings)

type settings struct {
	ensureTop bool
}

// WithDefaultTop makes assembly append $top=100 when no active fragment
// carries a $top key. Used on the execution path, where the API's own
// default page size is too small to be useful.
func WithDefaultTop() Option {
	return func(s *settings) { s.ensureTop = true }
}

// queryPair is one joined query parameter, in first-appearance order.
type queryPair struct {
	key    string
	values []string // multiple values only for the coalescing family
}

// Assemble combines the endpoint's base URL, an optional context segment and
// the active fragments into the final request URL.
//
// Fragments are authored with a leading "?" and exactly one key. Joining
// strips the marker, prefixes the first fragment with "?" and the rest with
// "&". Fragments of the $filter family are coalesced into a single clause
// joined by " and ", positioned where the first of them appeared. Any other
// repeated key with differing values is a conflict: assembly aborts and
// returns no partial URL.
//
// With no active filters the base URL is returned unchanged, unless
// WithDefaultTop is requested.
func Assemble(ep *catalog.EndpointDescriptor, contextSegment string, active []filter.ActiveFilter, opts ...Option) (string, error) {
	var cfg settings
	for _, opt := range opts {
		opt(&cfg)
	}

	base := ep.ContextURL(contextSegment)

	pairs, err := joinFragments(active)
	if err != nil {
		return "", err
	}

	if cfg.ensureTop && !hasKey(pairs, "$top") {
		pairs = append(pairs, queryPair{key: "$top", values: []string{DefaultTop}})
	}

	if len(pairs) == 0 {
		return base, nil
	}

	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		parts = append(parts, p.key+"="+strings.Join(p.values, " and "))
	}

	return base + "?" + strings.Join(parts, "&"), nil
}

// joinFragments folds the ordered fragments into query pairs, coalescing the
// $filter family and rejecting other key collisions.
func joinFragments(active []filter.ActiveFilter) ([]queryPair, error) {
	var pairs []queryPair

	for _, af := range active {
		key := filter.FragmentKey(af.Fragment)
		value := filter.FragmentValue(af.Fragment)

		if key == "" {
			return nil, errors.New(errors.ErrorTypeAssembly, "fragment has no query key").
				WithContext("fragment", af.Fragment).
				WithContext("param", af.ParamKey)
		}

		idx := indexOf(pairs, key)
		if idx < 0 {
			pairs = append(pairs, queryPair{key: key, values: []string{value}})
			continue
		}

		if key == filterFamily {
			pairs[idx].values = append(pairs[idx].values, value)
			continue
		}

		// Same key from two different param keys. Identical values are a
		// harmless duplicate; differing ones cannot be merged.
		if pairs[idx].values[0] == value {
			continue
		}
		return nil, errors.New(errors.ErrorTypeAssembly, "conflicting values for query parameter").
			WithContext("param", key).
			WithContext("values", []string{pairs[idx].values[0], value})
	}

	return pairs, nil
}

func indexOf(pairs []queryPair, key string) int {
	for i := range pairs {
		if pairs[i].key == key {
			return i
		}
	}
	return -1
}

func hasKey(pairs []queryPair, key string) bool {
	return indexOf(pairs, key) >= 0
}
