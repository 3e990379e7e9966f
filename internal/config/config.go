package config

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/Nick-prog/Microsoft-API-Email/internal/catalog"
	"github.com/Nick-prog/Microsoft-API-Email/internal/errors"
)

// Config holds all application configuration
type Config struct {
	// Query building
	Endpoint string
	Filters  []string // raw --filter specs, parsed by the CLI layer
	Context  string   // pre-resolved context segment (folder id)
	Folder   string   // folder path to resolve into a context segment

	// Catalog
	OpenAPIPath string // optional OpenAPI document extending the catalog
	Category    string
	Version     string
	Method      string
	Term        string

	// Execution
	Token   string
	Timeout int // seconds

	Verbose bool
	Debug   bool

	// Azure app registration, from the config file. Used only by the
	// auth collaborator, never by the query core.
	Azure AzureConfig
}

// AzureConfig mirrors the [azure] section of the config file.
type AzureConfig struct {
	ClientID string
	TenantID string
	Scopes   []string
}

// NewConfig creates a Config with default values
func NewConfig() *Config {
	return &Config{
		Timeout: 30,
		Azure: AzureConfig{
			Scopes: []string{"Mail.Read", "Mail.ReadWrite"},
		},
	}
}

// LoadFromFlags creates a Config from command line flags, layered over the
// optional config file and environment.
func LoadFromFlags(flags *pflag.FlagSet) (*Config, error) {
	config := NewConfig()

	if err := loadFile(config); err != nil {
		return nil, err
	}

	var err error

	if config.Endpoint, err = flags.GetString("endpoint"); err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeConfig, "failed to get endpoint flag")
	}

	if config.Filters, err = flags.GetStringArray("filter"); err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeConfig, "failed to get filter flag")
	}

	if config.Context, err = flags.GetString("context"); err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeConfig, "failed to get context flag")
	}

	if config.Folder, err = flags.GetString("folder"); err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeConfig, "failed to get folder flag")
	}

	if config.OpenAPIPath, err = flags.GetString("openapi"); err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeConfig, "failed to get openapi flag")
	}

	if config.Token, err = flags.GetString("token"); err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeConfig, "failed to get token flag")
	}

	if config.Verbose, err = flags.GetBool("verbose"); err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeConfig, "failed to get verbose flag")
	}

	if config.Debug, err = flags.GetBool("debug"); err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeConfig, "failed to get debug flag")
	}

	// Search flags are optional per command; missing lookups are fine.
	config.Term, _ = flags.GetString("search")
	config.Category, _ = flags.GetString("category")
	config.Version, _ = flags.GetString("api-version")
	config.Method, _ = flags.GetString("method")

	// Environment fallbacks (GRAPHQ_ prefixed to avoid collisions)
	if config.Token == "" {
		config.Token = os.Getenv("GRAPHQ_TOKEN")
	}
	if config.OpenAPIPath == "" {
		config.OpenAPIPath = os.Getenv("GRAPHQ_OPENAPI")
	}

	if config.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	return config, nil
}

// loadFile layers in the optional graphq config file (the successor of the
// original config.cfg): ./graphq.yaml or ~/.config/graphq/graphq.yaml.
func loadFile(config *Config) error {
	v := viper.New()
	v.SetConfigName("graphq")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home + "/.config/graphq")
	}
	v.SetEnvPrefix("GRAPHQ")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing file is the common case and not an error.
		if _, notFound := err.(viper.ConfigFileNotFoundError); notFound {
			return nil
		}
		return errors.Wrap(err, errors.ErrorTypeConfig, "reading config file")
	}

	if id := v.GetString("azure.client_id"); id != "" {
		config.Azure.ClientID = id
	}
	if id := v.GetString("azure.tenant_id"); id != "" {
		config.Azure.TenantID = id
	}
	if scopes := v.GetStringSlice("azure.scopes"); len(scopes) > 0 {
		config.Azure.Scopes = scopes
	}
	if token := v.GetString("token"); token != "" {
		config.Token = token
	}
	if timeout := v.GetInt("timeout"); timeout > 0 {
		config.Timeout = timeout
	}

	return nil
}

// Validate ensures the configuration is valid
func (c *Config) Validate() error {
	if c.Context != "" && c.Folder != "" {
		return errors.New(errors.ErrorTypeValidation, "use either --context or --folder, not both").
			WithContext("suggestion", "--context takes an already-resolved folder id; --folder resolves a path via the API")
	}

	if c.Folder != "" && c.Token == "" {
		return errors.New(errors.ErrorTypeValidation, "resolving a folder path requires a token").
			WithContext("suggestion", "pass --token or set GRAPHQ_TOKEN, or use --context with a folder id")
	}

	if c.Version != "" && !catalog.Version(c.Version).Valid() {
		return errors.New(errors.ErrorTypeValidation, "invalid API version").
			WithContext("version", c.Version).
			WithContext("valid_versions", []string{string(catalog.VersionV1), string(catalog.VersionBeta)})
	}

	return nil
}

// Search builds the catalog search this configuration describes.
func (c *Config) Search() catalog.Search {
	return catalog.Search{
		Term:     c.Term,
		Category: c.Category,
		Version:  catalog.Version(c.Version),
		Method:   c.Method,
	}
}
