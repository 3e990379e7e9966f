package catalog

import (
	"strings"

	"github.com/Nick-prog/Microsoft-API-Email/internal/errors"
	"github.com/Nick-prog/Microsoft-API-Email/internal/filter"
)

// Version identifies the Graph API surface an endpoint belongs to.
type Version string

const (
	VersionV1   Version = "v1.0"
	VersionBeta Version = "beta"
)

// Valid reports whether v is a recognized API version.
func (v Version) Valid() bool {
	return v == VersionV1 || v == VersionBeta
}

// EndpointDescriptor describes one API endpoint and the filters it offers.
// Descriptors are immutable after Load; every consumer only reads them.
type EndpointDescriptor struct {
	ID          string
	Name        string
	BaseURL     string
	Method      string
	Category    string
	Version     Version
	Scopes      []string
	Description string

	// ContextTemplate, when set, declares how a context segment (e.g. a
	// resolved mail folder id) scopes the endpoint's path. It contains a
	// single {folder} placeholder and replaces BaseURL during assembly.
	// Endpoints without one ignore any supplied segment.
	ContextTemplate string

	Filters []filter.Config
}

// SupportsPathContext reports whether the endpoint can be scoped by a
// context segment.
func (e *EndpointDescriptor) SupportsPathContext() bool {
	return e.ContextTemplate != ""
}

// ContextURL returns the base URL scoped to the given context segment.
// Endpoints without context support return BaseURL unchanged, keeping
// assembly total.
func (e *EndpointDescriptor) ContextURL(segment string) string {
	if !e.SupportsPathContext() || segment == "" {
		return e.BaseURL
	}
	return strings.ReplaceAll(e.ContextTemplate, "{folder}", segment)
}

// FindFilter returns the filter config with the given label.
func (e *EndpointDescriptor) FindFilter(label string) (*filter.Config, error) {
	for i := range e.Filters {
		if strings.EqualFold(e.Filters[i].Label, label) {
			return &e.Filters[i], nil
		}
	}
	return nil, errors.New(errors.ErrorTypeCatalog, "no such filter on endpoint").
		WithContext("endpoint", e.ID).
		WithContext("filter", label)
}

// Lint checks a descriptor for catalog defects.
func (e *EndpointDescriptor) Lint() error {
	if e.ID == "" || e.Name == "" {
		return errors.New(errors.ErrorTypeCatalog, "endpoint missing id or name").
			WithContext("endpoint", e.ID)
	}
	if e.BaseURL == "" {
		return errors.New(errors.ErrorTypeCatalog, "endpoint missing base URL").
			WithContext("endpoint", e.ID)
	}
	if !e.Version.Valid() {
		return errors.New(errors.ErrorTypeCatalog, "endpoint has unrecognized API version").
			WithContext("endpoint", e.ID).
			WithContext("version", string(e.Version))
	}
	if e.ContextTemplate != "" && !strings.Contains(e.ContextTemplate, "{folder}") {
		return errors.New(errors.ErrorTypeCatalog, "context template missing {folder} placeholder").
			WithContext("endpoint", e.ID)
	}

	seen := make(map[string]string)
	for i := range e.Filters {
		cfg := &e.Filters[i]
		if err := cfg.Lint(); err != nil {
			return errors.Wrap(err, errors.ErrorTypeCatalog, "bad filter config").
				WithContext("endpoint", e.ID)
		}
		if prior, dup := seen[cfg.ParamKey]; dup {
			return errors.New(errors.ErrorTypeCatalog, "duplicate param key across filters").
				WithContext("endpoint", e.ID).
				WithContext("param_key", cfg.ParamKey).
				WithContext("filters", []string{prior, cfg.Label})
		}
		seen[cfg.ParamKey] = cfg.Label
	}

	return nil
}
