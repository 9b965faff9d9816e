package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/tre/pkg/config"
	"github.com/arthur-debert/tre/pkg/errors"
	"github.com/arthur-debert/tre/pkg/render"
	"github.com/arthur-debert/tre/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(config.LoadOptions{ConfigFile: filepath.Join(t.TempDir(), "missing.toml")})
	require.NoError(t, err)

	assert.Equal(t, "auto", cfg.Output.Color)
	assert.False(t, cfg.Output.All)
	assert.False(t, cfg.Output.Directories)
	assert.Equal(t, 0, cfg.Output.Limit)
	assert.Equal(t, "", cfg.Alias.Editor)
	assert.Equal(t, render.ColorAuto, cfg.ColorChoice())
}

func TestLoad_UserFileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[output]
color = "never"
limit = 2

[alias]
editor = "vim"
`)

	cfg, err := config.Load(config.LoadOptions{ConfigFile: path, Required: true})
	require.NoError(t, err)

	assert.Equal(t, render.ColorNever, cfg.ColorChoice())
	assert.Equal(t, 2, cfg.Output.Limit)
	assert.Equal(t, "vim", cfg.Alias.Editor)
	assert.False(t, cfg.Output.All, "keys absent from the file keep their default")
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
[alias]
editor = "vim"
`)
	t.Setenv("TRE_ALIAS_EDITOR", "code")
	t.Setenv("TRE_OUTPUT_ALL", "true")
	t.Setenv("TRE_OUTPUT_LIMIT", "3")

	cfg, err := config.Load(config.LoadOptions{ConfigFile: path})
	require.NoError(t, err)

	assert.Equal(t, "code", cfg.Alias.Editor)
	assert.True(t, cfg.Output.All)
	assert.Equal(t, 3, cfg.Output.Limit)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing required file", func(t *testing.T) {
		_, err := config.Load(config.LoadOptions{ConfigFile: filepath.Join(t.TempDir(), "nope.toml"), Required: true})
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	})

	t.Run("malformed toml", func(t *testing.T) {
		path := writeConfig(t, "[output\ncolor = ")
		_, err := config.Load(config.LoadOptions{ConfigFile: path})
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	})

	t.Run("invalid color choice", func(t *testing.T) {
		path := writeConfig(t, "[output]\ncolor = \"rainbow\"\n")
		_, err := config.Load(config.LoadOptions{ConfigFile: path})
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
	})

	t.Run("negative limit", func(t *testing.T) {
		path := writeConfig(t, "[output]\nlimit = -1\n")
		_, err := config.Load(config.LoadOptions{ConfigFile: path})
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
	})
}

func TestConfigTOML(t *testing.T) {
	cfg := &config.Config{
		Output: config.Output{Color: "always", Limit: 1},
		Alias:  config.Alias{Editor: "nvim"},
	}

	data, err := cfg.TOML()
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "[output]")
	assert.Contains(t, out, "color = 'always'")
	assert.Contains(t, out, "limit = 1")
	assert.Contains(t, out, "[alias]")
	assert.Contains(t, out, "editor = 'nvim'")

	roundTrip := writeConfig(t, out)
	loaded, err := config.Load(config.LoadOptions{ConfigFile: roundTrip, Required: true})
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestResolveEnvironment(t *testing.T) {
	vars := func(m map[string]string) func(string) (string, bool) {
		return func(k string) (string, bool) {
			v, ok := m[k]
			return v, ok
		}
	}

	tests := []struct {
		name     string
		platform types.Platform
		env      map[string]string
		want     config.Environment
	}{
		{
			name:     "posix",
			platform: types.PlatformPOSIX,
			env:      map[string]string{"USER": "ada", "TMPDIR": "/var/tmp"},
			want:     config.Environment{User: "ada", TempDir: "/tmp"},
		},
		{
			name:     "posix without USER",
			platform: types.PlatformPOSIX,
			env:      map[string]string{},
			want:     config.Environment{User: "", TempDir: "/tmp"},
		},
		{
			name:     "windows",
			platform: types.PlatformWindows,
			env:      map[string]string{"USERNAME": "ada", "TEMP": `C:\Temp`, "HOME": `C:\Users\ada`},
			want:     config.Environment{User: "ada", TempDir: `C:\Temp`},
		},
		{
			name:     "windows falls back to HOME",
			platform: types.PlatformWindows,
			env:      map[string]string{"HOME": `C:\Users\ada`},
			want:     config.Environment{User: "", TempDir: `C:\Users\ada`},
		},
		{
			name:     "windows keeps an empty TEMP",
			platform: types.PlatformWindows,
			env:      map[string]string{"TEMP": "", "HOME": `C:\Users\ada`},
			want:     config.Environment{User: "", TempDir: ""},
		},
		{
			name:     "windows falls back to working directory",
			platform: types.PlatformWindows,
			env:      map[string]string{},
			want:     config.Environment{User: "", TempDir: "."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, config.ResolveEnvironment(tt.platform, vars(tt.env)))
		})
	}
}
