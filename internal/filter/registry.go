package filter

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/Nick-prog/Microsoft-API-Email/internal/errors"
)

// datetimePattern is the ISO-8601 extended form the Graph API accepts
// in filter expressions: YYYY-MM-DDTHH:MM:SSZ.
var datetimePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}Z$`)

// SeedDefaults creates a value bag pre-populated with the config's default
// values, mirroring how a builder UI initializes its widgets.
func SeedDefaults(cfg *Config) *ValueBag {
	bag := NewValueBag()

	switch cfg.Kind {
	case KindMultiSelect:
		for _, f := range cfg.DefaultFields {
			bag.SelectField(f)
		}
	case KindCompound:
		for _, sub := range cfg.Fields {
			if sub.Default != "" {
				bag.Set(sub.Name, sub.Default)
			}
		}
	case KindStatic:
		// nothing to seed
	default:
		if cfg.Default != "" {
			bag.Set(cfg.Kind.Placeholder(), cfg.Default)
		}
	}

	return bag
}

// Validate checks the raw values in bag against the rules of the config's
// kind and returns a render-ready Values. Validation failures are
// recoverable: they belong to one builder and never touch the selection set.
//
// A missing scalar with no configured default is not an error here; Render
// reports it as a template error, which distinguishes a user slip from a
// catalog defect.
func Validate(cfg *Config, bag *ValueBag) (*Values, error) {
	if bag == nil {
		bag = NewValueBag()
	}

	values := newValues()

	switch cfg.Kind {
	case KindStatic:
		// No input collected; always valid.
		return values, nil

	case KindBoolean:
		raw, ok := lookup(cfg, bag)
		if !ok {
			return values, nil
		}
		if raw != "true" && raw != "false" {
			return nil, errors.New(errors.ErrorTypeValidation, "boolean value must be true or false").
				WithContext("field", cfg.Label).
				WithContext("value", raw)
		}
		values.bind(cfg.Kind.Placeholder(), raw)

	case KindText:
		raw, ok := lookup(cfg, bag)
		if !ok {
			return values, nil
		}
		values.bind(cfg.Kind.Placeholder(), raw)

	case KindEmail:
		raw, ok := lookup(cfg, bag)
		if !ok {
			return values, nil
		}
		// Permissive by design: a bad shape is a warning, never a block.
		if !looksLikeEmail(raw) {
			values.warn("value does not look like an email address")
		}
		values.bind(cfg.Kind.Placeholder(), raw)

	case KindNumber:
		raw, ok := lookup(cfg, bag)
		if !ok {
			return values, nil
		}
		n, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, errors.New(errors.ErrorTypeValidation, "value is not a number").
				WithContext("field", cfg.Label).
				WithContext("value", raw)
		}
		if cfg.Min != nil && n < *cfg.Min {
			return nil, errors.New(errors.ErrorTypeValidation, "value below minimum").
				WithContext("field", cfg.Label).
				WithContext("value", raw).
				WithContext("min", *cfg.Min)
		}
		if cfg.Max != nil && n > *cfg.Max {
			return nil, errors.New(errors.ErrorTypeValidation, "value above maximum").
				WithContext("field", cfg.Label).
				WithContext("value", raw).
				WithContext("max", *cfg.Max)
		}
		// Bind the value as entered, not a reformatted float.
		values.bind(cfg.Kind.Placeholder(), strings.TrimSpace(raw))

	case KindDateTime:
		raw, ok := lookup(cfg, bag)
		if !ok {
			return values, nil
		}
		if err := validateDateTime(raw); err != nil {
			return nil, errors.Wrap(err, errors.ErrorTypeValidation, "invalid datetime").
				WithContext("field", cfg.Label).
				WithContext("value", raw).
				WithContext("expected_format", "YYYY-MM-DDTHH:MM:SSZ")
		}
		values.bind(cfg.Kind.Placeholder(), raw)

	case KindSelect:
		raw, ok := lookup(cfg, bag)
		if !ok {
			return values, nil
		}
		if !cfg.HasOption(raw) {
			return nil, errors.New(errors.ErrorTypeValidation, "value is not a configured option").
				WithContext("field", cfg.Label).
				WithContext("value", raw).
				WithContext("options", cfg.Options)
		}
		values.bind(cfg.Kind.Placeholder(), raw)

	case KindMultiSelect:
		// Empty selection is allowed; it renders to an empty substitution.
		for _, f := range bag.Fields() {
			if !cfg.HasOption(f) {
				return nil, errors.New(errors.ErrorTypeValidation, "field is not a configured option").
					WithContext("field", cfg.Label).
					WithContext("value", f).
					WithContext("options", cfg.Options)
			}
			values.fields = append(values.fields, f)
		}

	case KindCompound:
		// Every declared sub-field is required.
		for _, sub := range cfg.Fields {
			raw, ok := bag.Get(sub.Name)
			if !ok || raw == "" {
				if sub.Default == "" {
					return nil, errors.New(errors.ErrorTypeValidation, "compound sub-field is required").
						WithContext("field", cfg.Label).
						WithContext("sub_field", sub.Name)
				}
				raw = sub.Default
			}
			if err := validateSubField(cfg, sub, raw); err != nil {
				return nil, err
			}
			values.bind(sub.Name, raw)
		}

	default:
		return nil, errors.New(errors.ErrorTypeCatalog, "unrecognized filter kind").
			WithContext("kind", string(cfg.Kind)).
			WithContext("field", cfg.Label)
	}

	return values, nil
}

// lookup fetches the raw scalar for the kind's placeholder, falling back to
// the configured default when the bag has no entry.
func lookup(cfg *Config, bag *ValueBag) (string, bool) {
	raw, ok := bag.Get(cfg.Kind.Placeholder())
	if ok {
		return raw, true
	}
	if cfg.Default != "" {
		return cfg.Default, true
	}
	return "", false
}

// validateSubField applies the sub-field kind's scalar rule.
func validateSubField(cfg *Config, sub SubField, raw string) error {
	switch sub.Kind {
	case KindSelect:
		for _, opt := range sub.Options {
			if opt == raw {
				return nil
			}
		}
		return errors.New(errors.ErrorTypeValidation, "sub-field value is not a configured option").
			WithContext("field", cfg.Label).
			WithContext("sub_field", sub.Name).
			WithContext("value", raw).
			WithContext("options", sub.Options)
	case KindBoolean:
		if raw != "true" && raw != "false" {
			return errors.New(errors.ErrorTypeValidation, "sub-field value must be true or false").
				WithContext("field", cfg.Label).
				WithContext("sub_field", sub.Name).
				WithContext("value", raw)
		}
		return nil
	case KindNumber:
		if _, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err != nil {
			return errors.New(errors.ErrorTypeValidation, "sub-field value is not a number").
				WithContext("field", cfg.Label).
				WithContext("sub_field", sub.Name).
				WithContext("value", raw)
		}
		return nil
	case KindDateTime:
		if err := validateDateTime(raw); err != nil {
			return errors.Wrap(err, errors.ErrorTypeValidation, "sub-field has invalid datetime").
				WithContext("field", cfg.Label).
				WithContext("sub_field", sub.Name).
				WithContext("value", raw)
		}
		return nil
	default:
		// Text-like sub-fields accept any string.
		return nil
	}
}

func validateDateTime(raw string) error {
	if !datetimePattern.MatchString(raw) {
		return errors.New(errors.ErrorTypeValidation, "datetime must match YYYY-MM-DDTHH:MM:SSZ")
	}
	if _, err := time.Parse("2006-01-02T15:04:05Z", raw); err != nil {
		return errors.Wrap(err, errors.ErrorTypeValidation, "datetime is not a real timestamp")
	}
	return nil
}

// looksLikeEmail is a best-effort shape check: an @ with a domain segment
// containing a dot after it.
func looksLikeEmail(raw string) bool {
	at := strings.Index(raw, "@")
	if at <= 0 || at == len(raw)-1 {
		return false
	}
	domain := raw[at+1:]
	dot := strings.Index(domain, ".")
	return dot > 0 && dot < len(domain)-1
}
