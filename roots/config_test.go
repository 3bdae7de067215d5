package roots

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/resfs/errors"
	"github.com/jmgilman/go/resfs/platform/billy"
)

const sampleConfig = `
defaults:
  lib0-textures: ../../Libs/Lib0/Textures/
  meshes: Models/
overrides:
  textures: /srv/assets/textures/
  lib0-textures: /srv/lib0/
`

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte(sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "../../Libs/Lib0/Textures/", cfg.Defaults["lib0-textures"])
	assert.Equal(t, "Models/", cfg.Defaults[Meshes])
	assert.Equal(t, "/srv/assets/textures/", cfg.Overrides[Textures])
}

func TestParseConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"malformed", "defaults: [unterminated"},
		{"wrong shape", "defaults: just-a-string"},
		{"absolute override", "overrides:\n  absolute: /x\n"},
		{"absolute default", "defaults:\n  absolute: /x\n"},
		{"empty name", "defaults:\n  \"\": /x\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.yaml))
			require.Error(t, err)
			assert.Equal(t, errors.CodeInvalidConfig, errors.GetCode(err))
		})
	}
}

func TestConfig_Apply(t *testing.T) {
	cfg, err := ParseConfig([]byte(sampleConfig))
	require.NoError(t, err)

	table := New()
	require.NoError(t, cfg.Apply(table))

	got, err := table.FixPath("a.png", Textures)
	require.NoError(t, err)
	assert.Equal(t, "/srv/assets/textures/a.png", got)

	got, err = table.FixPath("cube.bin", Meshes)
	require.NoError(t, err)
	assert.Equal(t, "Models/cube.bin", got)

	got, err = table.FixPath("a.png", "lib0-textures")
	require.NoError(t, err)
	assert.Equal(t, "/srv/lib0/a.png", got)

	table.ClearModifiedRootPaths()
	got, err = table.FixPath("a.png", "lib0-textures")
	require.NoError(t, err)
	assert.Equal(t, "../../Libs/Lib0/Textures/a.png", got)
}

func TestConfig_ApplyUnknownOverride(t *testing.T) {
	cfg := &Config{
		Defaults: map[Category]string{
			"lib0-textures": "Libs/Lib0/Textures/",
			Meshes:          "Models/",
		},
		Overrides: map[Category]string{
			Textures:         "/srv/textures/",
			"not-registered": "/x",
		},
	}

	table := New()
	before := table.Snapshot()

	err := cfg.Apply(table)
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidConfig, errors.GetCode(err))

	assert.Equal(t, before, table.Snapshot(), "a rejected config leaves the table untouched")
	assert.False(t, table.IsRegistered("lib0-textures"))
	assert.False(t, table.IsModified(Textures))
}

func TestConfig_ApplyOverrideOfNewDefault(t *testing.T) {
	cfg := &Config{
		Defaults:  map[Category]string{"lib1-meshes": "Libs/Lib1/Meshes/"},
		Overrides: map[Category]string{"lib1-meshes": "/packs/lib1/"},
	}

	table := New()
	require.NoError(t, cfg.Apply(table))

	got, err := table.FixPath("cube.bin", "lib1-meshes")
	require.NoError(t, err)
	assert.Equal(t, "/packs/lib1/cube.bin", got)
}

func TestConfigFromTable_RoundTrip(t *testing.T) {
	table := New()
	require.NoError(t, table.Register("fonts-extra", "ExtraFonts/"))
	require.NoError(t, table.SetRootPath(GPUConfig, "/etc/gpu/"))

	data, err := ConfigFromTable(table).Marshal()
	require.NoError(t, err)

	cfg, err := ParseConfig(data)
	require.NoError(t, err)
	assert.Equal(t, map[Category]string{"fonts-extra": "ExtraFonts/"}, cfg.Defaults)
	assert.Equal(t, map[Category]string{GPUConfig: "/etc/gpu/"}, cfg.Overrides)

	restored := New()
	require.NoError(t, cfg.Apply(restored))
	assert.Equal(t, table.Snapshot(), restored.Snapshot())
}

func TestLoadConfig(t *testing.T) {
	fsys := billy.NewMemory(billy.WithWorkingDir("/game"))
	f, err := fsys.OpenFile("roots.yaml", os.O_CREATE|os.O_WRONLY, 0o644)
	require.NoError(t, err)
	_, err = f.Write([]byte(sampleConfig))
	require.NoError(t, err)
	require.NoError(t, f.Close())

	cfg, err := LoadConfig(fsys, "roots.yaml")
	require.NoError(t, err)
	assert.Len(t, cfg.Overrides, 2)

	_, err = LoadConfig(fsys, "missing.yaml")
	require.Error(t, err)
	assert.Equal(t, errors.CodeNotFound, errors.GetCode(err))
}
