package merger

import (
	"context"
	"fmt"
	"path"

	"github.com/viant/afs"
	"github.com/viant/csvmerge/table"
	"gopkg.in/yaml.v3"
)

const (
	DefaultInput      = "./data/"
	DefaultIdentifier = "SEQN"
	DefaultPattern    = "*.csv"
	DefaultOutput     = "merged_result.csv"
	DefaultResolver   = ResolverMax
)

// Config represents merge run settings
type Config struct {
	Input         string   `yaml:"input"`         // directory URL holding input files
	Identifier    string   `yaml:"identifier"`    // identifier column name
	Pattern       string   `yaml:"pattern"`       // base name glob of input files
	Output        string   `yaml:"output"`        // output file URL
	Resolver      string   `yaml:"resolver"`      // conflict resolver name
	MissingTokens []string `yaml:"missingTokens"` // field texts loaded as missing
	MissingValue  string   `yaml:"missingValue"`  // text written for missing cells
}

func DefaultConfig() *Config {
	return &Config{
		Input:         DefaultInput,
		Identifier:    DefaultIdentifier,
		Pattern:       DefaultPattern,
		Output:        DefaultOutput,
		Resolver:      DefaultResolver,
		MissingTokens: append([]string{}, table.DefaultMissingTokens...),
	}
}

// Validate checks config
func (c *Config) Validate() error {
	if c.Input == "" {
		return newError(ErrConfig, "", fmt.Errorf("input was empty"))
	}
	if c.Identifier == "" {
		return newError(ErrConfig, "", fmt.Errorf("identifier was empty"))
	}
	if c.Output == "" {
		return newError(ErrConfig, "", fmt.Errorf("output was empty"))
	}
	if _, err := path.Match(c.Pattern, ""); err != nil || c.Pattern == "" {
		return newError(ErrConfig, "", fmt.Errorf("invalid pattern %q", c.Pattern))
	}
	if _, err := LookupResolver(c.Resolver); err != nil {
		return newError(ErrConfig, "", err)
	}
	return nil
}

// LoadConfig loads YAML config from URL on top of the defaults
func LoadConfig(ctx context.Context, fs afs.Service, URL string) (*Config, error) {
	if fs == nil {
		fs = afs.New()
	}
	location, err := normalize(URL)
	if err != nil {
		return nil, newError(ErrConfig, URL, err)
	}
	data, err := fs.DownloadWithURL(ctx, location)
	if err != nil {
		return nil, newError(ErrConfig, URL, fmt.Errorf("failed to download config: %w", err))
	}
	ret := DefaultConfig()
	if err = yaml.Unmarshal(data, ret); err != nil {
		return nil, newError(ErrConfig, URL, fmt.Errorf("failed to decode config: %w", err))
	}
	return ret, nil
}
