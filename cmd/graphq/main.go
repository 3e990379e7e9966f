package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Nick-prog/Microsoft-API-Email/internal/cli"
	"github.com/Nick-prog/Microsoft-API-Email/internal/config"
	"github.com/Nick-prog/Microsoft-API-Email/internal/errors"
	"github.com/Nick-prog/Microsoft-API-Email/internal/logger"
	"github.com/Nick-prog/Microsoft-API-Email/internal/mcp"
	"github.com/Nick-prog/Microsoft-API-Email/internal/session"
)

var rootCmd *cobra.Command

var appLogger zerolog.Logger

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", errors.UserMessage(err))
		os.Exit(1)
	}
}

func init() {
	rootCmd = &cobra.Command{
		Use:   "graphq",
		Short: "Build Microsoft Graph query URLs from catalog filters",
		Long: `graphq assembles Microsoft Graph request URLs from an endpoint catalog.
Each endpoint carries a set of dynamic filters; pick an endpoint, toggle
filters with values, and graphq validates them, renders the query fragments
and merges them into a single URL.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			verbose, _ := cmd.Flags().GetBool("verbose")
			debug, _ := cmd.Flags().GetBool("debug")
			appLogger = logger.SetupFromFlags(verbose, debug)
		},
	}

	// Global flags
	rootCmd.PersistentFlags().String("endpoint", "", "Endpoint id (alternative to the positional argument)")
	rootCmd.PersistentFlags().StringArrayP("filter", "f", []string{}, "Filter spec, e.g. 'Read Status:value=false' (can be used multiple times)")
	rootCmd.PersistentFlags().String("context", "", "Pre-resolved context segment (e.g. a mail folder id)")
	rootCmd.PersistentFlags().String("folder", "", "Folder path to resolve into a context segment, e.g. 'Inbox/Receipts'")
	rootCmd.PersistentFlags().String("openapi", "", "OpenAPI document extending the endpoint catalog")
	rootCmd.PersistentFlags().String("token", "", "Bearer token for API calls")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().Bool("debug", false, "Debug logging with caller info")

	rootCmd.AddCommand(newEndpointsCmd())
	rootCmd.AddCommand(newShowCmd())
	rootCmd.AddCommand(newURLCmd())
	rootCmd.AddCommand(newExecCmd())
	rootCmd.AddCommand(newMCPCmd())
}

func newEndpointsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "endpoints",
		Short: "List the endpoint catalog",
		Long:  "List the endpoint catalog, optionally narrowed by search term, category, API version or HTTP method.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.NewCatalogHandler(appLogger).List(cmd, args)
		},
	}

	cmd.Flags().String("search", "", "Substring match on name, description and URL")
	cmd.Flags().String("category", "", "Filter by category")
	cmd.Flags().String("api-version", "", "Filter by API version (v1.0 or beta)")
	cmd.Flags().String("method", "", "Filter by HTTP method")

	return cmd
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <endpoint>",
		Short: "Show an endpoint and its filters",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.NewCatalogHandler(appLogger).Show(cmd, args)
		},
	}
}

func newURLCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "url <endpoint>",
		Short: "Assemble the query URL without executing it",
		Long: `Assemble the query URL for an endpoint from --filter specs.

  graphq url list-messages -f "Read Status:value=false" -f "Limit Results:number=10"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.NewBuildHandler(appLogger).Execute(cmd, args)
		},
	}
}

func newExecCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exec <endpoint>",
		Short: "Assemble the query URL and execute it",
		Long: `Assemble the query URL and run it against the API with a bearer token.
A default $top=100 is applied when no Limit Results filter is active.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.NewExecHandler(appLogger).Execute(cmd, args)
		},
	}
}

func newMCPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Run as an MCP server over stdin/stdout",
		Long:  "Expose the endpoint catalog and query builder as MCP tools for agent integration.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadFromFlags(cmd.Flags())
			if err != nil {
				return err
			}

			endpoints, err := cli.LoadCatalog(cfg)
			if err != nil {
				return err
			}

			sess := session.New(appLogger, endpoints)
			return mcp.NewServer(appLogger, sess).Start()
		},
	}
}
