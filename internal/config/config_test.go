package config

import (
	"testing"

	"github.com/spf13/pflag"

	"github.com/Nick-prog/Microsoft-API-Email/internal/errors"
	"github.com/Nick-prog/Microsoft-API-Email/internal/testutil"
)

// newFlagSet declares the flags the root command registers, so LoadFromFlags
// sees the same surface in tests.
func newFlagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("endpoint", "", "")
	flags.StringArray("filter", []string{}, "")
	flags.String("context", "", "")
	flags.String("folder", "", "")
	flags.String("openapi", "", "")
	flags.String("token", "", "")
	flags.Bool("verbose", false, "")
	flags.Bool("debug", false, "")
	flags.String("search", "", "")
	flags.String("category", "", "")
	flags.String("api-version", "", "")
	flags.String("method", "", "")
	return flags
}

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.Timeout != 30 {
		t.Errorf("default timeout: got %d, expected 30", cfg.Timeout)
	}
	testutil.AssertSliceEqual(t, cfg.Azure.Scopes, []string{"Mail.Read", "Mail.ReadWrite"}, "default scopes")
}

func TestLoadFromFlags(t *testing.T) {
	flags := newFlagSet()
	err := flags.Parse([]string{
		"--endpoint", "list-messages",
		"--filter", "Read Status:value=false",
		"--filter", "Limit Results:number=10",
		"--context", "AAMkAGI2",
		"--token", "tok",
		"--search", "messages",
		"--api-version", "v1.0",
	})
	testutil.AssertNoError(t, err, "parse flags")

	cfg, err := LoadFromFlags(flags)
	testutil.AssertNoError(t, err, "load config")

	testutil.AssertStringEqual(t, cfg.Endpoint, "list-messages", "endpoint")
	testutil.AssertSliceEqual(t, cfg.Filters,
		[]string{"Read Status:value=false", "Limit Results:number=10"}, "filters keep order")
	testutil.AssertStringEqual(t, cfg.Context, "AAMkAGI2", "context")
	testutil.AssertStringEqual(t, cfg.Token, "tok", "token")
	testutil.AssertStringEqual(t, cfg.Term, "messages", "search term")
	testutil.AssertStringEqual(t, cfg.Version, "v1.0", "api version")
}

func TestLoadFromFlags_EnvFallbacks(t *testing.T) {
	t.Setenv("GRAPHQ_TOKEN", "env-token")
	t.Setenv("GRAPHQ_OPENAPI", "/tmp/spec.json")

	flags := newFlagSet()
	testutil.AssertNoError(t, flags.Parse(nil), "parse flags")

	cfg, err := LoadFromFlags(flags)
	testutil.AssertNoError(t, err, "load config")

	testutil.AssertStringEqual(t, cfg.Token, "env-token", "token from env")
	testutil.AssertStringEqual(t, cfg.OpenAPIPath, "/tmp/spec.json", "openapi from env")
}

func TestLoadFromFlags_FlagBeatsEnv(t *testing.T) {
	t.Setenv("GRAPHQ_TOKEN", "env-token")

	flags := newFlagSet()
	testutil.AssertNoError(t, flags.Parse([]string{"--token", "flag-token"}), "parse flags")

	cfg, err := LoadFromFlags(flags)
	testutil.AssertNoError(t, err, "load config")

	testutil.AssertStringEqual(t, cfg.Token, "flag-token", "flag wins")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Config)
		wantType errors.ErrorType
	}{
		{
			name:   "empty config valid",
			mutate: func(c *Config) {},
		},
		{
			name: "context alone valid",
			mutate: func(c *Config) {
				c.Context = "AAMkAGI2"
			},
		},
		{
			name: "folder with token valid",
			mutate: func(c *Config) {
				c.Folder = "Inbox"
				c.Token = "tok"
			},
		},
		{
			name: "context and folder conflict",
			mutate: func(c *Config) {
				c.Context = "AAMkAGI2"
				c.Folder = "Inbox"
			},
			wantType: errors.ErrorTypeValidation,
		},
		{
			name: "folder without token",
			mutate: func(c *Config) {
				c.Folder = "Inbox"
			},
			wantType: errors.ErrorTypeValidation,
		},
		{
			name: "bad api version",
			mutate: func(c *Config) {
				c.Version = "v2.0"
			},
			wantType: errors.ErrorTypeValidation,
		},
		{
			name: "beta version valid",
			mutate: func(c *Config) {
				c.Version = "beta"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantType == "" {
				testutil.AssertNoError(t, err, "validate")
				return
			}
			testutil.AssertErrorType(t, err, tt.wantType, "validate")
		})
	}
}

func TestSearch(t *testing.T) {
	cfg := NewConfig()
	cfg.Term = "messages"
	cfg.Category = "Mail"
	cfg.Version = "v1.0"
	cfg.Method = "GET"

	search := cfg.Search()
	testutil.AssertStringEqual(t, search.Term, "messages", "term")
	testutil.AssertStringEqual(t, search.Category, "Mail", "category")
	testutil.AssertStringEqual(t, string(search.Version), "v1.0", "version")
	testutil.AssertStringEqual(t, search.Method, "GET", "method")
}
