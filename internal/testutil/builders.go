package testutil

import (
	"github.com/Nick-prog/Microsoft-API-Email/internal/catalog"
	"github.com/Nick-prog/Microsoft-API-Email/internal/filter"
)

// FilterBuilder provides a fluent interface for building filter configs
// This eliminates repetitive config setup across test files
type FilterBuilder struct {
	config filter.Config
}

// NewFilterBuilder creates a filter builder for the given kind
func NewFilterBuilder(kind filter.Kind, label string) *FilterBuilder {
	return &FilterBuilder{
		config: filter.Config{
			Kind:  kind,
			Label: label,
		},
	}
}

// WithTemplate sets the fragment template
func (b *FilterBuilder) WithTemplate(template string) *FilterBuilder {
	b.config.Template = template
	return b
}

// WithParamKey sets the logical query parameter key
func (b *FilterBuilder) WithParamKey(key string) *FilterBuilder {
	b.config.ParamKey = key
	return b
}

// WithOptions sets the Select/MultiSelect choice list
func (b *FilterBuilder) WithOptions(options ...string) *FilterBuilder {
	b.config.Options = options
	return b
}

// WithDefault sets the preset scalar value
func (b *FilterBuilder) WithDefault(value string) *FilterBuilder {
	b.config.Default = value
	return b
}

// WithDefaultFields sets the preset MultiSelect selection
func (b *FilterBuilder) WithDefaultFields(fields ...string) *FilterBuilder {
	b.config.DefaultFields = fields
	return b
}

// WithRange bounds Number inputs inclusively
func (b *FilterBuilder) WithRange(min, max float64) *FilterBuilder {
	b.config.Min = &min
	b.config.Max = &max
	return b
}

// WithSubField adds a Compound sub-field
func (b *FilterBuilder) WithSubField(name string, kind filter.Kind, options ...string) *FilterBuilder {
	b.config.Fields = append(b.config.Fields, filter.SubField{
		Name:    name,
		Kind:    kind,
		Options: options,
	})
	return b
}

// Build returns the assembled config
func (b *FilterBuilder) Build() *filter.Config {
	cfg := b.config
	return &cfg
}

// EndpointBuilder provides a fluent interface for building endpoint descriptors
type EndpointBuilder struct {
	endpoint catalog.EndpointDescriptor
}

// NewEndpointBuilder creates an endpoint builder with sensible defaults
func NewEndpointBuilder(id string) *EndpointBuilder {
	return &EndpointBuilder{
		endpoint: catalog.EndpointDescriptor{
			ID:      id,
			Name:    id,
			BaseURL: "https://graph.microsoft.com/v1.0/me/" + id,
			Method:  "GET",
			Version: catalog.VersionV1,
		},
	}
}

// WithName sets the display name
func (b *EndpointBuilder) WithName(name string) *EndpointBuilder {
	b.endpoint.Name = name
	return b
}

// WithBaseURL sets the base URL
func (b *EndpointBuilder) WithBaseURL(url string) *EndpointBuilder {
	b.endpoint.BaseURL = url
	return b
}

// WithMethod sets the HTTP method
func (b *EndpointBuilder) WithMethod(method string) *EndpointBuilder {
	b.endpoint.Method = method
	return b
}

// WithCategory sets the category
func (b *EndpointBuilder) WithCategory(category string) *EndpointBuilder {
	b.endpoint.Category = category
	return b
}

// WithVersion sets the API version
func (b *EndpointBuilder) WithVersion(version catalog.Version) *EndpointBuilder {
	b.endpoint.Version = version
	return b
}

// WithContextTemplate sets the context template
func (b *EndpointBuilder) WithContextTemplate(template string) *EndpointBuilder {
	b.endpoint.ContextTemplate = template
	return b
}

// WithFilter adds a filter config
func (b *EndpointBuilder) WithFilter(cfg *filter.Config) *EndpointBuilder {
	b.endpoint.Filters = append(b.endpoint.Filters, *cfg)
	return b
}

// Build returns the assembled descriptor
func (b *EndpointBuilder) Build() catalog.EndpointDescriptor {
	return b.endpoint
}
