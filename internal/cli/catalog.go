package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Nick-prog/Microsoft-API-Email/internal/catalog"
	"github.com/Nick-prog/Microsoft-API-Email/internal/config"
	"github.com/Nick-prog/Microsoft-API-Email/internal/display"
	"github.com/Nick-prog/Microsoft-API-Email/internal/errors"
)

// CatalogHandler handles endpoint listing and inspection commands
type CatalogHandler struct {
	logger zerolog.Logger
}

// NewCatalogHandler creates a new catalog command handler
func NewCatalogHandler(logger zerolog.Logger) *CatalogHandler {
	return &CatalogHandler{
		logger: logger.With().Str("handler", "catalog").Logger(),
	}
}

// LoadCatalog returns the seed catalog, extended from an OpenAPI document
// when one is configured.
func LoadCatalog(cfg *config.Config) ([]catalog.EndpointDescriptor, error) {
	endpoints := catalog.Load()

	if cfg.OpenAPIPath == "" {
		return endpoints, nil
	}

	data, err := os.ReadFile(cfg.OpenAPIPath)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeCatalog, "reading OpenAPI document").
			WithContext("path", cfg.OpenAPIPath)
	}

	imported, err := catalog.ImportOpenAPI(data, "Imported")
	if err != nil {
		return nil, err
	}

	return append(endpoints, imported...), nil
}

// List handles the endpoints command
func (h *CatalogHandler) List(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadFromFlags(cmd.Flags())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to load configuration")
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	endpoints, err := LoadCatalog(cfg)
	if err != nil {
		return err
	}

	matched := cfg.Search().Select(endpoints)

	h.logger.Debug().
		Int("total", len(endpoints)).
		Int("matched", len(matched)).
		Str("term", cfg.Term).
		Msg("catalog searched")

	fmt.Fprint(cmd.OutOrStdout(), display.EndpointList(matched))
	return nil
}

// Show handles the show command
func (h *CatalogHandler) Show(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadFromFlags(cmd.Flags())
	if err != nil {
		return err
	}

	endpoints, err := LoadCatalog(cfg)
	if err != nil {
		return err
	}

	ep, err := catalog.FindByID(endpoints, args[0])
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), display.EndpointDetail(ep))
	return nil
}
