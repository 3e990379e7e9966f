package filter

import (
	"strings"

	"github.com/Nick-prog/Microsoft-API-Email/internal/errors"
)

// SubField declares one named input of a Compound filter.
// Sub-fields validate with their own kind's rule and are all required.
type SubField struct {
	Name    string
	Kind    Kind
	Options []string
	Default string
}

// Config describes one filter a catalog endpoint offers. Configs are
// immutable after catalog load; the builder UI and the MCP surface only
// ever read them.
type Config struct {
	Kind        Kind
	Label       string
	Description string

	// Template is the fragment template with named placeholders,
	// e.g. "?$filter=isRead eq {value}". Templates own any literal
	// quoting their value needs.
	Template string

	// ParamKey is the logical query parameter this filter governs.
	// The selection set keeps at most one active filter per key.
	ParamKey string

	// Options holds the choice list for Select and MultiSelect kinds.
	Options []string

	// Default is the preset scalar value, if any.
	Default string

	// DefaultFields is the preset MultiSelect selection, if any.
	DefaultFields []string

	// Min and Max bound Number inputs inclusively when set.
	Min *float64
	Max *float64

	// Fields declares Compound sub-fields, in template order.
	Fields []SubField
}

// HasOption reports whether value is one of the configured options.
func (c *Config) HasOption(value string) bool {
	for _, opt := range c.Options {
		if opt == value {
			return true
		}
	}
	return false
}

// Lint checks a config for catalog defects. Malformed static data is a
// programming error, so callers surface this at load/test time rather
// than per keystroke.
func (c *Config) Lint() error {
	if !c.Kind.Valid() {
		return errors.New(errors.ErrorTypeCatalog, "unrecognized filter kind").
			WithContext("label", c.Label).
			WithContext("kind", string(c.Kind))
	}
	if c.Label == "" {
		return errors.New(errors.ErrorTypeCatalog, "filter config missing label")
	}
	if c.Template == "" {
		return errors.New(errors.ErrorTypeCatalog, "filter config missing template").
			WithContext("label", c.Label)
	}
	if c.ParamKey == "" {
		return errors.New(errors.ErrorTypeCatalog, "filter config missing param key").
			WithContext("label", c.Label)
	}

	switch c.Kind {
	case KindSelect, KindMultiSelect:
		if len(c.Options) == 0 {
			return errors.New(errors.ErrorTypeCatalog, "select filter requires options").
				WithContext("label", c.Label)
		}
	case KindCompound:
		if len(c.Fields) == 0 {
			return errors.New(errors.ErrorTypeCatalog, "compound filter requires sub-fields").
				WithContext("label", c.Label)
		}
		for _, sub := range c.Fields {
			if sub.Name == "" {
				return errors.New(errors.ErrorTypeCatalog, "compound sub-field missing name").
					WithContext("label", c.Label)
			}
			if !strings.Contains(c.Template, "{"+sub.Name+"}") {
				return errors.New(errors.ErrorTypeCatalog, "compound sub-field absent from template").
					WithContext("label", c.Label).
					WithContext("sub_field", sub.Name)
			}
		}
	case KindStatic:
		if strings.Contains(c.Template, "{") {
			return errors.New(errors.ErrorTypeCatalog, "static template must not declare placeholders").
				WithContext("label", c.Label)
		}
	default:
		placeholder := c.Kind.Placeholder()
		if !strings.Contains(c.Template, "{"+placeholder+"}") {
			return errors.Newf(errors.ErrorTypeCatalog, "template missing {%s} placeholder", placeholder).
				WithContext("label", c.Label)
		}
	}

	return nil
}
