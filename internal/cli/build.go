package cli

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Nick-prog/Microsoft-API-Email/internal/assemble"
	"github.com/Nick-prog/Microsoft-API-Email/internal/config"
	"github.com/Nick-prog/Microsoft-API-Email/internal/display"
	"github.com/Nick-prog/Microsoft-API-Email/internal/graph"
	"github.com/Nick-prog/Microsoft-API-Email/internal/session"
)

// BuildHandler handles the url command: assemble a query URL from filter
// specs without executing anything.
type BuildHandler struct {
	logger zerolog.Logger
}

// NewBuildHandler creates a new build command handler
func NewBuildHandler(logger zerolog.Logger) *BuildHandler {
	return &BuildHandler{
		logger: logger.With().Str("handler", "build").Logger(),
	}
}

// Execute handles the url command
func (h *BuildHandler) Execute(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadFromFlags(cmd.Flags())
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	sess, err := PrepareSession(h.logger, cfg, args[0])
	if err != nil {
		return err
	}

	url, err := sess.BuildQueryURL()
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), display.ActiveFilters(sess.ActiveFilters()))
	fmt.Fprint(cmd.OutOrStdout(), display.QueryURL(url))
	return nil
}

// PrepareSession builds a session for an endpoint: selects it, resolves the
// folder context if requested, and toggles every --filter spec in order.
func PrepareSession(logger zerolog.Logger, cfg *config.Config, endpointID string) (*session.Session, error) {
	endpoints, err := LoadCatalog(cfg)
	if err != nil {
		return nil, err
	}

	sess := session.New(logger, endpoints)

	ep, err := sess.SelectEndpoint(endpointID)
	if err != nil {
		return nil, err
	}

	if cfg.Context != "" {
		sess.SetContextSegment(cfg.Context)
	} else if cfg.Folder != "" {
		segment, err := resolveFolder(logger, cfg)
		if err != nil {
			return nil, err
		}
		sess.SetContextSegment(segment)
	}

	for _, raw := range cfg.Filters {
		spec, err := ParseFilterSpec(raw)
		if err != nil {
			return nil, err
		}

		filterCfg, err := ep.FindFilter(spec.Label)
		if err != nil {
			return nil, err
		}

		result, err := sess.ToggleFilter(filterCfg, spec.Bag(filterCfg))
		if err != nil {
			return nil, err
		}
		for _, warning := range result.Warnings {
			logger.Warn().Str("filter", filterCfg.Label).Msg(warning)
		}
	}

	return sess, nil
}

// resolveFolder turns a --folder path into a context segment via the API.
func resolveFolder(logger zerolog.Logger, cfg *config.Config) (string, error) {
	resolver := graph.NewFolderResolver(logger, http.DefaultClient, graph.StaticToken(cfg.Token))

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Timeout)*time.Second)
	defer cancel()

	return resolver.ResolvePath(ctx, cfg.Folder)
}

// BuildOptions returns the assembler options the exec path uses.
func BuildOptions() []assemble.Option {
	return []assemble.Option{assemble.WithDefaultTop()}
}
