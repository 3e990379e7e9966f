package catalog

import (
	"fmt"
	"strings"

	"github.com/pb33f/libopenapi"
	v3 "github.com/pb33f/libopenapi/datamodel/high/v3"

	"github.com/Nick-prog/Microsoft-API-Email/internal/errors"
	"github.com/Nick-prog/Microsoft-API-Email/internal/filter"
)

// ImportOpenAPI derives endpoint descriptors from an OpenAPI v3 document.
// Each operation becomes one descriptor and each of its query parameters
// becomes a filter config, typed from the parameter's schema. This lets the
// explorer extend its static catalog from a service's published spec.
func ImportOpenAPI(data []byte, category string) ([]EndpointDescriptor, error) {
	document, err := libopenapi.NewDocument(data)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeCatalog, "parsing OpenAPI document")
	}

	model, errs := document.BuildV3Model()
	if len(errs) > 0 {
		return nil, errors.Newf(errors.ErrorTypeCatalog, "building OpenAPI v3 model: %v", errs)
	}

	baseURL := ""
	if len(model.Model.Servers) > 0 {
		baseURL = strings.TrimSuffix(model.Model.Servers[0].URL, "/")
	}
	if baseURL == "" {
		return nil, errors.New(errors.ErrorTypeCatalog, "OpenAPI document declares no servers")
	}

	var endpoints []EndpointDescriptor

	pathItems := model.Model.Paths.PathItems
	if pathItems == nil {
		return endpoints, nil
	}

	for pair := pathItems.First(); pair != nil; pair = pair.Next() {
		pathPattern, pathItem := pair.Key(), pair.Value()
		for method, op := range operationsOf(pathItem) {
			ep := EndpointDescriptor{
				ID:          operationID(op, method, pathPattern),
				Name:        operationName(op, method, pathPattern),
				BaseURL:     baseURL + pathPattern,
				Method:      strings.ToUpper(method),
				Category:    category,
				Version:     versionOf(pathPattern),
				Description: op.Description,
			}
			if ep.Description == "" {
				ep.Description = op.Summary
			}

			for _, param := range op.Parameters {
				if param.In != "query" {
					continue
				}
				cfg, err := filterFromParameter(param)
				if err != nil {
					return nil, errors.Wrap(err, errors.ErrorTypeCatalog, "bad query parameter").
						WithContext("endpoint", ep.ID).
						WithContext("param", param.Name)
				}
				ep.Filters = append(ep.Filters, cfg)
			}

			if err := ep.Lint(); err != nil {
				return nil, err
			}
			endpoints = append(endpoints, ep)
		}
	}

	return endpoints, nil
}

// operationsOf maps a path item's populated verbs, lowercased.
func operationsOf(pathItem *v3.PathItem) map[string]*v3.Operation {
	ops := make(map[string]*v3.Operation)

	if pathItem.Get != nil {
		ops["get"] = pathItem.Get
	}
	if pathItem.Post != nil {
		ops["post"] = pathItem.Post
	}
	if pathItem.Put != nil {
		ops["put"] = pathItem.Put
	}
	if pathItem.Delete != nil {
		ops["delete"] = pathItem.Delete
	}
	if pathItem.Patch != nil {
		ops["patch"] = pathItem.Patch
	}

	return ops
}

func operationID(op *v3.Operation, method, path string) string {
	if op.OperationId != "" {
		return slug(op.OperationId)
	}
	return slug(method + path)
}

func operationName(op *v3.Operation, method, path string) string {
	if op.Summary != "" {
		return op.Summary
	}
	return strings.ToUpper(method) + " " + path
}

func versionOf(path string) Version {
	if strings.Contains(path, "/beta/") || strings.HasPrefix(path, "/beta") {
		return VersionBeta
	}
	return VersionV1
}

// filterFromParameter types a query parameter into a filter config from its
// schema: enums become Select, booleans Boolean, numerics Number with the
// schema's bounds, everything else Text.
func filterFromParameter(param *v3.Parameter) (filter.Config, error) {
	cfg := filter.Config{
		Label:       labelFor(param.Name),
		Description: param.Description,
		ParamKey:    param.Name,
	}

	var schemaType string
	if param.Schema != nil {
		schema := param.Schema.Schema()
		if schema != nil {
			if len(schema.Type) > 0 {
				schemaType = schema.Type[0]
			}
			for _, node := range schema.Enum {
				cfg.Options = append(cfg.Options, node.Value)
			}
			if schema.Minimum != nil {
				cfg.Min = schema.Minimum
			}
			if schema.Maximum != nil {
				cfg.Max = schema.Maximum
			}
			if schema.Default != nil {
				cfg.Default = schema.Default.Value
			}
		}
	}

	switch {
	case len(cfg.Options) > 0:
		cfg.Kind = filter.KindSelect
	case schemaType == "boolean":
		cfg.Kind = filter.KindBoolean
		cfg.Options = []string{"true", "false"}
	case schemaType == "integer" || schemaType == "number":
		cfg.Kind = filter.KindNumber
	default:
		cfg.Kind = filter.KindText
	}

	cfg.Template = fmt.Sprintf("?%s={%s}", param.Name, cfg.Kind.Placeholder())

	return cfg, nil
}

func labelFor(paramName string) string {
	cleaned := strings.TrimPrefix(paramName, "$")
	if cleaned == "" {
		return paramName
	}
	return strings.ToUpper(cleaned[:1]) + cleaned[1:]
}

func slug(s string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}
