package cli

import (
	"strings"

	"github.com/Nick-prog/Microsoft-API-Email/internal/errors"
	"github.com/Nick-prog/Microsoft-API-Email/internal/filter"
)

// FilterSpec is one parsed --filter argument. The flag syntax is
//
//	--filter "Label"                          use the filter's defaults
//	--filter "Label:number=50"                set a placeholder value
//	--filter "Label:field=subject,direction=asc"
//	--filter "Label:fields=subject+from"      MultiSelect selection, ordered
//
// Keys are the template's placeholder names; "fields" takes a "+"-joined
// list replacing the default selection.
type FilterSpec struct {
	Label     string
	Values    map[string]string
	Fields    []string
	HasFields bool
}

// ParseFilterSpec parses one --filter argument.
func ParseFilterSpec(raw string) (FilterSpec, error) {
	spec := FilterSpec{Values: make(map[string]string)}

	label, rest, found := strings.Cut(raw, ":")
	spec.Label = strings.TrimSpace(label)
	if spec.Label == "" {
		return FilterSpec{}, errors.New(errors.ErrorTypeValidation, "filter spec missing label").
			WithContext("spec", raw)
	}
	if !found || strings.TrimSpace(rest) == "" {
		return spec, nil
	}

	for _, pair := range strings.Split(rest, ",") {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return FilterSpec{}, errors.New(errors.ErrorTypeValidation, "filter spec entry is not key=value").
				WithContext("spec", raw).
				WithContext("entry", pair)
		}
		key = strings.TrimSpace(key)

		if key == "fields" {
			spec.HasFields = true
			for _, f := range strings.Split(value, "+") {
				if f = strings.TrimSpace(f); f != "" {
					spec.Fields = append(spec.Fields, f)
				}
			}
			continue
		}

		spec.Values[key] = value
	}

	return spec, nil
}

// Bag builds the value bag for a config: the config's defaults, overlaid
// with the spec's explicit values. An explicit fields entry replaces the
// default selection entirely.
func (s FilterSpec) Bag(cfg *filter.Config) *filter.ValueBag {
	bag := filter.SeedDefaults(cfg)

	if s.HasFields {
		for _, f := range bag.Fields() {
			bag.DeselectField(f)
		}
		for _, f := range s.Fields {
			bag.SelectField(f)
		}
	}

	for key, value := range s.Values {
		bag.Set(key, value)
	}

	return bag
}
