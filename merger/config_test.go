package merger

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/csvmerge/table"
)

func TestLoadConfig(t *testing.T) {
	URL := filepath.Join(t.TempDir(), "merge.yaml")
	require.NoError(t, os.WriteFile(URL, []byte(`
input: /var/survey
identifier: ID
resolver: first
missingTokens: ["-", "?"]
missingValue: NA
`), 0644))

	config, err := LoadConfig(context.Background(), nil, URL)
	require.NoError(t, err)
	assert.Equal(t, "/var/survey", config.Input)
	assert.Equal(t, "ID", config.Identifier)
	assert.Equal(t, ResolverFirst, config.Resolver)
	assert.Equal(t, []string{"-", "?"}, config.MissingTokens)
	assert.Equal(t, "NA", config.MissingValue)
	assert.Equal(t, DefaultPattern, config.Pattern)
	assert.Equal(t, DefaultOutput, config.Output)
	assert.NoError(t, config.Validate())
}

func TestLoadConfig_Errors(t *testing.T) {
	dir := t.TempDir()
	_, err := LoadConfig(context.Background(), nil, filepath.Join(dir, "absent.yaml"))
	assert.ErrorIs(t, err, ErrConfig)

	URL := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(URL, []byte("input: [unterminated"), 0644))
	_, err = LoadConfig(context.Background(), nil, URL)
	assert.ErrorIs(t, err, ErrConfig)
}

func TestConfig_Validate(t *testing.T) {
	var testCases = []struct {
		description string
		update      func(c *Config)
		expectErr   bool
	}{
		{description: "defaults", update: func(c *Config) {}},
		{description: "empty identifier", update: func(c *Config) { c.Identifier = "" }, expectErr: true},
		{description: "empty input", update: func(c *Config) { c.Input = "" }, expectErr: true},
		{description: "empty output", update: func(c *Config) { c.Output = "" }, expectErr: true},
		{description: "bad pattern", update: func(c *Config) { c.Pattern = "[" }, expectErr: true},
		{description: "empty pattern", update: func(c *Config) { c.Pattern = "" }, expectErr: true},
		{description: "unknown resolver", update: func(c *Config) { c.Resolver = "avg" }, expectErr: true},
	}
	for _, testCase := range testCases {
		config := DefaultConfig()
		testCase.update(config)
		err := config.Validate()
		if testCase.expectErr {
			assert.ErrorIs(t, err, ErrConfig, testCase.description)
			continue
		}
		assert.NoError(t, err, testCase.description)
	}
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	assert.Equal(t, "./data/", config.Input)
	assert.Equal(t, "SEQN", config.Identifier)
	assert.Equal(t, "*.csv", config.Pattern)
	assert.Equal(t, "merged_result.csv", config.Output)
	assert.Equal(t, ResolverMax, config.Resolver)
	assert.Equal(t, table.DefaultMissingTokens, config.MissingTokens)
	config.MissingTokens[0] = "changed"
	assert.Equal(t, "", table.DefaultMissingTokens[0])
}
