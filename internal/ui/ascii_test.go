package ui

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/tuskwalk/internal/gamedata"
	"github.com/samdwyer/tuskwalk/internal/world"
)

func TestRenderASCII(t *testing.T) {
	w, err := world.New(world.DefaultConfig(4, 3), rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	_, err = w.Generate(context.Background())
	require.NoError(t, err)
	_, err = w.Replace(world.GridCoordinates{X: 0, Z: 0}, world.Water)
	require.NoError(t, err)
	_, err = w.Occupy(world.GridCoordinates{X: 3, Z: 2}, "bush")
	require.NoError(t, err)

	marks := map[world.GridCoordinates]rune{{X: 1, Z: 1}: 'E'}
	got := RenderASCII(w, gamedata.MustLoadPrefabRegistry(), marks)
	want := "...*\n" +
		".E..\n" +
		"~...\n"
	assert.Equal(t, want, got)
}
