package game

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigFromEnv(t *testing.T) {
	t.Setenv(EnvSeed, "1234")
	t.Setenv(EnvWidth, "20")
	t.Setenv(EnvHeight, "12")
	t.Setenv(EnvWorldFile, "")
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvLogFile, "tuskwalk.log")
	t.Setenv(EnvTraceSample, "0.5")

	cfg, err := ConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, Config{
		Seed:        1234,
		Width:       20,
		Height:      12,
		LogLevel:    "debug",
		LogFile:     "tuskwalk.log",
		TraceSample: 0.5,
	}, cfg)
}

func TestConfigFromEnvErrors(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"bad seed", EnvSeed, "abc"},
		{"bad width", EnvWidth, "wide"},
		{"negative height", EnvHeight, "-3"},
		{"bad trace sample", EnvTraceSample, "half"},
		{"trace sample above one", EnvTraceSample, "1.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvSeed, "")
			t.Setenv(EnvWidth, "")
			t.Setenv(EnvHeight, "")
			t.Setenv(EnvTraceSample, "")
			t.Setenv(tt.key, tt.value)

			_, err := ConfigFromEnv()
			assert.Error(t, err)
		})
	}
}

func TestResolveSeed(t *testing.T) {
	assert.Equal(t, int64(99), Config{Seed: 99}.ResolveSeed())
	assert.NotZero(t, Config{}.ResolveSeed())

	a, seed := Config{Seed: 5}.NewRand()
	b, _ := Config{Seed: 5}.NewRand()
	assert.Equal(t, int64(5), seed)
	assert.Equal(t, a.Int63(), b.Int63())
}

func TestLoadWorldOverrides(t *testing.T) {
	cfg, registry, err := Config{Width: 20, Height: 12}.LoadWorld()
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.SizeX)
	assert.Equal(t, 12, cfg.SizeZ)
	assert.NotNil(t, registry.GetByID("water_cube"))
}

func TestLoadWorldFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lake.yaml")
	content := `
grid: {width: 6, height: 5}
tiles: {base: grass, liquid: water, lining: dirt}
lineShore: true
prefabs:
  - {id: grass_cube, kind: cube, cubeType: grass, glyph: ".", color: "#00AA00"}
  - {id: water_cube, kind: cube, cubeType: water, glyph: "~", color: "#0000AA"}
zones:
  - {name: lake, prefabs: [water_cube], minSources: 1, maxSources: 1, minSpread: 2, maxSpread: 2, cube: true}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, registry, err := Config{WorldFile: path}.LoadWorld()
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.SizeX)
	assert.Len(t, cfg.Zones, 1)
	assert.Equal(t, 2, registry.Count())

	_, _, err = Config{WorldFile: filepath.Join(t.TempDir(), "missing.yaml")}.LoadWorld()
	assert.Error(t, err)
}
