package config

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RequiredTokens(t *testing.T) {
	// Given: program name, query and file path
	args := []string{"logfilter", "error", "app.log"}

	// When: resolving the configuration
	cfg, err := New(args)

	// Then: the default output file is used and case folding is on
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.SearchQuery)
	assert.Equal(t, "app.log", cfg.FilePath)
	assert.Equal(t, DefaultOutputFile, cfg.OutputFile)
	assert.True(t, cfg.IgnoreCase)
}

func TestNew_ExplicitOutputFile(t *testing.T) {
	cfg, err := New([]string{"logfilter", "error", "app.log", "errors.txt"})

	require.NoError(t, err)
	assert.Equal(t, "errors.txt", cfg.OutputFile, "explicit output name should be used verbatim")
}

func TestNew_ExtraTokensIgnored(t *testing.T) {
	cfg, err := New([]string{"logfilter", "q", "in.txt", "out.txt", "extra", "more"})

	require.NoError(t, err)
	assert.Equal(t, "out.txt", cfg.OutputFile)
	assert.True(t, cfg.IgnoreCase)
}

func TestNew_EmptyStringsAccepted(t *testing.T) {
	cfg, err := New([]string{"logfilter", "", ""})

	require.NoError(t, err)
	assert.Empty(t, cfg.SearchQuery)
	assert.Empty(t, cfg.FilePath)
}

func TestNew_NotEnoughArguments(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"nil", nil},
		{"program only", []string{"logfilter"}},
		{"missing file path", []string{"prog", "query"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := New(tt.args)

			require.Error(t, err)
			assert.Equal(t, Usage, err.Error())
			assert.True(t, IsArgumentError(err))
			assert.Equal(t, Config{}, cfg)
		})
	}
}

func TestIsArgumentError(t *testing.T) {
	wrapped := fmt.Errorf("resolve: %w", &ArgumentError{Message: "bad"})

	assert.True(t, IsArgumentError(wrapped))
	assert.False(t, IsArgumentError(errors.New("bad")))
	assert.False(t, IsArgumentError(nil))
}
