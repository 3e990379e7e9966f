package graph

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/Nick-prog/Microsoft-API-Email/internal/errors"
)

// Result is the captured outcome of an executed query.
type Result struct {
	StatusCode int
	Header     http.Header
	Body       []byte
	Duration   time.Duration
}

// OK reports whether the response carried a 2xx status.
func (r *Result) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Executor performs GET requests against assembled query URLs with bearer
// authentication. It consumes the assembler's output as an opaque string.
type Executor struct {
	logger zerolog.Logger
	client HTTPDoer
	tokens TokenProvider
}

// NewExecutor creates an executor with the given client and token source.
func NewExecutor(logger zerolog.Logger, client HTTPDoer, tokens TokenProvider) *Executor {
	return &Executor{
		logger: logger.With().Str("component", "executor").Logger(),
		client: client,
		tokens: tokens,
	}
}

// Execute GETs the query URL and returns the captured response. Non-2xx
// statuses are returned in the Result, not as errors: the caller decides
// how to present an API rejection.
func (e *Executor) Execute(ctx context.Context, queryURL string) (*Result, error) {
	token, err := e.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, queryURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeValidation, "building query request").
			WithContext("url", queryURL)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	e.logger.Debug().Str("url", queryURL).Msg("executing query")

	start := time.Now()
	resp, err := e.client.Do(req)
	duration := time.Since(start)

	if err != nil {
		e.logger.Error().Err(err).Dur("duration", duration).Msg("query failed")
		return nil, errors.Wrap(err, errors.ErrorTypeNetwork, "query request failed").
			WithContext("url", queryURL).
			WithContext("duration", duration)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeNetwork, "reading query response").
			WithContext("url", queryURL)
	}

	e.logger.Debug().
		Int("status", resp.StatusCode).
		Int("bytes", len(body)).
		Dur("duration", duration).
		Msg("query completed")

	return &Result{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
		Duration:   duration,
	}, nil
}
