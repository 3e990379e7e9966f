package errors

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// UserMessage returns a user-friendly error message
func UserMessage(err error) string {
	if qErr, ok := err.(*QueryError); ok {
		return formatUserError(qErr)
	}
	return err.Error()
}

// formatUserError creates user-friendly error messages based on error type
func formatUserError(qErr *QueryError) string {
	switch qErr.Type {
	case ErrorTypeValidation:
		return formatValidationError(qErr)
	case ErrorTypeTemplate:
		return formatTemplateError(qErr)
	case ErrorTypeAssembly:
		return formatAssemblyError(qErr)
	case ErrorTypeCatalog:
		return formatCatalogError(qErr)
	case ErrorTypeConfig:
		return formatConfigError(qErr)
	case ErrorTypeNetwork:
		return formatNetworkError(qErr)
	default:
		return qErr.Message
	}
}

func formatValidationError(qErr *QueryError) string {
	msg := qErr.Message
	if field, ok := qErr.Context["field"]; ok {
		msg = fmt.Sprintf("Invalid %s: %s", field, msg)
	}
	return msg
}

func formatTemplateError(qErr *QueryError) string {
	msg := qErr.Message
	if placeholder, ok := qErr.Context["placeholder"]; ok {
		msg = fmt.Sprintf("Filter template error ({%s}): %s", placeholder, msg)
	}
	return msg
}

func formatAssemblyError(qErr *QueryError) string {
	msg := qErr.Message
	if key, ok := qErr.Context["param"]; ok {
		msg = fmt.Sprintf("Cannot assemble URL (%s): %s", key, msg)
	}
	return msg
}

func formatCatalogError(qErr *QueryError) string {
	msg := qErr.Message
	if endpoint, ok := qErr.Context["endpoint"]; ok {
		msg = fmt.Sprintf("Catalog error for %s: %s", endpoint, msg)
	}
	return msg
}

func formatConfigError(qErr *QueryError) string {
	msg := qErr.Message
	if configType, ok := qErr.Context["config_type"]; ok {
		msg = fmt.Sprintf("Configuration error (%s): %s", configType, msg)
	}
	return msg
}

func formatNetworkError(qErr *QueryError) string {
	msg := qErr.Message
	if url, ok := qErr.Context["url"]; ok {
		msg = fmt.Sprintf("Network error accessing %s: %s", url, msg)
	}
	return msg
}

// PresentError displays an error to the user through centralized zerolog system
func PresentError(err error) {
	if err == nil {
		return
	}

	if qErr, ok := err.(*QueryError); ok {
		event := log.Fatal()

		for key, value := range qErr.Context {
			event = event.Interface(key, value)
		}

		event.Msg(qErr.Message)
	} else {
		log.Fatal().Err(err).Msg("")
	}
}

// DebugInfo returns detailed error information for debugging
func DebugInfo(err error) map[string]interface{} {
	info := map[string]interface{}{
		"error":   err.Error(),
		"type":    "unknown",
		"context": map[string]interface{}{},
	}

	if qErr, ok := err.(*QueryError); ok {
		info["type"] = string(qErr.Type)
		info["message"] = qErr.Message
		info["context"] = qErr.Context

		if qErr.Cause != nil {
			info["cause"] = qErr.Cause.Error()
		}
	}

	return info
}
