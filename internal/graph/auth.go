package graph

import (
	"context"

	"github.com/Nick-prog/Microsoft-API-Email/internal/errors"
)

// TokenProvider supplies the bearer token the network layer attaches to
// Graph requests. Token acquisition and refresh live outside this module;
// the query-building core never sees tokens at all.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

// StaticToken is a TokenProvider for a pre-acquired token, e.g. one passed
// via flag or environment.
type StaticToken string

// Token implements TokenProvider.
func (t StaticToken) Token(_ context.Context) (string, error) {
	if t == "" {
		return "", errors.New(errors.ErrorTypeAuth, "no access token configured").
			WithContext("suggestion", "pass --token or set GRAPHQ_TOKEN")
	}
	return string(t), nil
}
