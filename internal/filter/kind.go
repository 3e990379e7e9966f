package filter

import (
	"github.com/Nick-prog/Microsoft-API-Email/internal/errors"
)

// Kind identifies the input type of a filter configuration.
// The set is closed: validation and rendering switch over it exhaustively.
type Kind string

const (
	KindBoolean     Kind = "boolean"
	KindText        Kind = "text"
	KindEmail       Kind = "email"
	KindNumber      Kind = "number"
	KindDateTime    Kind = "datetime"
	KindSelect      Kind = "select"
	KindMultiSelect Kind = "multiselect"
	KindCompound    Kind = "compound"
	KindStatic      Kind = "static"
)

// kinds lists every recognized Kind, in declaration order.
var kinds = []Kind{
	KindBoolean,
	KindText,
	KindEmail,
	KindNumber,
	KindDateTime,
	KindSelect,
	KindMultiSelect,
	KindCompound,
	KindStatic,
}

// Kinds returns all recognized filter kinds.
func Kinds() []Kind {
	out := make([]Kind, len(kinds))
	copy(out, kinds)
	return out
}

// Valid reports whether k is a recognized filter kind.
func (k Kind) Valid() bool {
	for _, known := range kinds {
		if k == known {
			return true
		}
	}
	return false
}

// ParseKind converts a raw string (e.g. from a catalog file) into a Kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.Valid() {
		return "", errors.New(errors.ErrorTypeCatalog, "unrecognized filter kind").
			WithContext("kind", s)
	}
	return k, nil
}

// Placeholder returns the template placeholder name a scalar kind substitutes.
// MultiSelect uses "fields" and Compound declares its own sub-field names;
// Static substitutes nothing.
func (k Kind) Placeholder() string {
	switch k {
	case KindBoolean, KindSelect:
		return "value"
	case KindText:
		return "text"
	case KindEmail:
		return "email"
	case KindNumber:
		return "number"
	case KindDateTime:
		return "datetime"
	case KindMultiSelect:
		return "fields"
	default:
		return ""
	}
}
