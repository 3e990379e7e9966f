package cli

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Nick-prog/Microsoft-API-Email/internal/config"
	"github.com/Nick-prog/Microsoft-API-Email/internal/display"
	"github.com/Nick-prog/Microsoft-API-Email/internal/errors"
	"github.com/Nick-prog/Microsoft-API-Email/internal/graph"
)

// ExecHandler handles the exec command: assemble the query URL and run it.
type ExecHandler struct {
	logger zerolog.Logger
}

// NewExecHandler creates a new exec command handler
func NewExecHandler(logger zerolog.Logger) *ExecHandler {
	return &ExecHandler{
		logger: logger.With().Str("handler", "exec").Logger(),
	}
}

// Execute handles the exec command
func (h *ExecHandler) Execute(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadFromFlags(cmd.Flags())
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if cfg.Token == "" {
		return errors.New(errors.ErrorTypeAuth, "executing a query requires a token").
			WithContext("suggestion", "pass --token or set GRAPHQ_TOKEN")
	}

	sess, err := PrepareSession(h.logger, cfg, args[0])
	if err != nil {
		return err
	}

	// Execution always guarantees a usable page size; the API default
	// is too small when no $top filter is active.
	url, err := sess.BuildQueryURL(BuildOptions()...)
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), display.QueryURL(url))

	executor := graph.NewExecutor(h.logger, http.DefaultClient, graph.StaticToken(cfg.Token))

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Timeout)*time.Second)
	defer cancel()

	result, err := executor.Execute(ctx, url)
	if err != nil {
		return err
	}

	if !result.OK() {
		h.logger.Warn().Int("status", result.StatusCode).Msg("query rejected by API")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "HTTP %d (%s)\n", result.StatusCode, result.Duration.Round(time.Millisecond))
	fmt.Fprintln(cmd.OutOrStdout(), string(result.Body))
	return nil
}
