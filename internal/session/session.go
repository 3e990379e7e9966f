// Package session owns the mutable state of one explorer session: the
// selected endpoint, its context segment and the active filter selection.
// The surrounding UI (CLI commands, MCP tools) passes a session into every
// call instead of reading ambient globals, and must serialize access; the
// session itself does no locking and no I/O.
package session

import (
	"github.com/rs/zerolog"

	"github.com/Nick-prog/Microsoft-API-Email/internal/assemble"
	"github.com/Nick-prog/Microsoft-API-Email/internal/catalog"
	"github.com/Nick-prog/Microsoft-API-Email/internal/errors"
	"github.com/Nick-prog/Microsoft-API-Email/internal/filter"
)

// Session holds one user's working state against the endpoint catalog.
type Session struct {
	logger    zerolog.Logger
	endpoints []catalog.EndpointDescriptor
	selected  *catalog.EndpointDescriptor
	context   string
	selection *filter.SelectionSet
}

// ToggleResult reports the outcome of a filter toggle.
type ToggleResult struct {
	Fragment string
	Added    bool
	Warnings []string
}

// New creates a session over the given catalog.
func New(logger zerolog.Logger, endpoints []catalog.EndpointDescriptor) *Session {
	return &Session{
		logger:    logger.With().Str("component", "session").Logger(),
		endpoints: endpoints,
		selection: filter.NewSelectionSet(),
	}
}

// Endpoints returns the session's catalog.
func (s *Session) Endpoints() []catalog.EndpointDescriptor {
	return s.endpoints
}

// Endpoint returns the currently selected endpoint, nil if none.
func (s *Session) Endpoint() *catalog.EndpointDescriptor {
	return s.selected
}

// SelectEndpoint switches the session to an endpoint. Switching discards
// the previous endpoint's active filters; re-selecting the current endpoint
// keeps them.
func (s *Session) SelectEndpoint(id string) (*catalog.EndpointDescriptor, error) {
	ep, err := catalog.FindByID(s.endpoints, id)
	if err != nil {
		return nil, err
	}

	if s.selected != nil && s.selected.ID != ep.ID {
		s.selection.Clear(s.selected.ID)
	}
	s.selected = ep

	s.logger.Debug().Str("endpoint", ep.ID).Msg("endpoint selected")
	return ep, nil
}

// SetContextSegment records the opaque path segment (e.g. a resolved folder
// id) used to scope endpoints that support it. The core never interprets it.
func (s *Session) SetContextSegment(segment string) {
	s.context = segment
}

// ContextSegment returns the current context segment.
func (s *Session) ContextSegment() string {
	return s.context
}

// RenderPreview validates the raw values and renders the candidate fragment
// without touching the selection set. Used for live preview on every edit.
func (s *Session) RenderPreview(cfg *filter.Config, bag *filter.ValueBag) (string, error) {
	values, err := filter.Validate(cfg, bag)
	if err != nil {
		return "", err
	}
	return filter.Render(cfg, values)
}

// ToggleFilter validates, renders and toggles one filter on the selected
// endpoint. A failed validation or render leaves the selection set
// untouched. Fragments that resolve to a no-op (an empty value part, e.g.
// a MultiSelect with nothing chosen) are rejected rather than added.
func (s *Session) ToggleFilter(cfg *filter.Config, bag *filter.ValueBag) (ToggleResult, error) {
	if s.selected == nil {
		return ToggleResult{}, errors.New(errors.ErrorTypeValidation, "no endpoint selected")
	}

	values, err := filter.Validate(cfg, bag)
	if err != nil {
		return ToggleResult{}, err
	}

	fragment, err := filter.Render(cfg, values)
	if err != nil {
		s.logger.Error().Err(err).Str("filter", cfg.Label).Msg("render failed, selection unchanged")
		return ToggleResult{}, err
	}

	if filter.FragmentValue(fragment) == "" {
		return ToggleResult{}, errors.New(errors.ErrorTypeValidation, "filter renders to a no-op").
			WithContext("field", cfg.Label).
			WithContext("fragment", fragment)
	}

	added := s.selection.Toggle(s.selected.ID, cfg.ParamKey, fragment, cfg)

	s.logger.Debug().
		Str("endpoint", s.selected.ID).
		Str("param_key", cfg.ParamKey).
		Str("fragment", fragment).
		Bool("added", added).
		Msg("filter toggled")

	return ToggleResult{Fragment: fragment, Added: added, Warnings: values.Warnings()}, nil
}

// ActiveFilters returns the selected endpoint's active filters in insertion
// order. Empty when no endpoint is selected.
func (s *Session) ActiveFilters() []filter.ActiveFilter {
	if s.selected == nil {
		return nil
	}
	return s.selection.List(s.selected.ID)
}

// IsActive reports whether the given fragment is currently toggled on,
// for rendering add/remove button state.
func (s *Session) IsActive(paramKey, fragment string) bool {
	if s.selected == nil {
		return false
	}
	return s.selection.Contains(s.selected.ID, paramKey, fragment)
}

// BuildQueryURL assembles the final request URL for the selected endpoint
// from its context segment and active filters.
func (s *Session) BuildQueryURL(opts ...assemble.Option) (string, error) {
	if s.selected == nil {
		return "", errors.New(errors.ErrorTypeValidation, "no endpoint selected")
	}
	return assemble.Assemble(s.selected, s.context, s.selection.List(s.selected.ID), opts...)
}

// ClearFilters empties the selected endpoint's active filters. Idempotent;
// a no-op when no endpoint is selected.
func (s *Session) ClearFilters() {
	if s.selected == nil {
		return
	}
	s.selection.Clear(s.selected.ID)
}
