package filter

import (
	"regexp"
	"strings"

	"github.com/Nick-prog/Microsoft-API-Email/internal/errors"
)

var placeholderPattern = regexp.MustCompile(`\{([a-zA-Z_][a-zA-Z0-9_]*)\}`)

// Render substitutes validated values into the config's template and returns
// the finished fragment. It is a pure function: no state, no I/O, and the
// same inputs always produce the same fragment.
//
// A placeholder with no binding (and no default, since Validate already
// applied defaults) is a template error: it means the catalog declares an
// input the builder never collected, which is a config defect rather than
// a user mistake.
func Render(cfg *Config, values *Values) (string, error) {
	if values == nil {
		values = newValues()
	}

	switch cfg.Kind {
	case KindStatic:
		return cfg.Template, nil

	case KindMultiSelect:
		// Insertion order of the selection, not catalog order. An empty
		// selection yields an empty substitution; callers decide whether
		// a no-op fragment is worth adding.
		joined := strings.Join(values.Fields(), ",")
		return finish(cfg, strings.ReplaceAll(cfg.Template, "{fields}", joined))

	case KindCompound:
		fragment := cfg.Template
		for _, sub := range cfg.Fields {
			bound, ok := values.Binding(sub.Name)
			if !ok {
				return "", errors.New(errors.ErrorTypeTemplate, "no value bound for compound sub-field").
					WithContext("placeholder", sub.Name).
					WithContext("filter", cfg.Label)
			}
			fragment = strings.ReplaceAll(fragment, "{"+sub.Name+"}", bound)
		}
		return finish(cfg, fragment)

	default:
		placeholder := cfg.Kind.Placeholder()
		bound, ok := values.Binding(placeholder)
		if !ok {
			return "", errors.New(errors.ErrorTypeTemplate, "no value bound for placeholder").
				WithContext("placeholder", placeholder).
				WithContext("filter", cfg.Label)
		}
		// Values are inserted verbatim; the template carries any literal
		// quotes the query grammar needs.
		return finish(cfg, strings.ReplaceAll(cfg.Template, "{"+placeholder+"}", bound))
	}
}

// finish rejects fragments that still carry unresolved placeholders, which
// indicates a template declaring inputs its kind never binds.
func finish(cfg *Config, fragment string) (string, error) {
	if m := placeholderPattern.FindStringSubmatch(fragment); m != nil {
		return "", errors.New(errors.ErrorTypeTemplate, "template declares a placeholder its kind does not bind").
			WithContext("placeholder", m[1]).
			WithContext("filter", cfg.Label)
	}
	return fragment, nil
}

// FragmentKey returns the query parameter name a rendered fragment sets,
// e.g. "$filter" for "?$filter=isRead eq true". Assembly uses this to
// detect same-family fragments regardless of their config's ParamKey.
func FragmentKey(fragment string) string {
	trimmed := strings.TrimPrefix(fragment, "?")
	if eq := strings.Index(trimmed, "="); eq >= 0 {
		return trimmed[:eq]
	}
	return trimmed
}

// FragmentValue returns the value part of a rendered fragment, empty when
// the fragment sets nothing (a no-op filter).
func FragmentValue(fragment string) string {
	trimmed := strings.TrimPrefix(fragment, "?")
	if eq := strings.Index(trimmed, "="); eq >= 0 {
		return trimmed[eq+1:]
	}
	return ""
}
