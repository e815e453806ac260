package entity

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/samdwyer/tuskwalk/internal/world"
)

// newWorld generates an all-grass world with no zones.
func newWorld(t *testing.T, sizeX, sizeZ int) *world.World {
	t.Helper()
	w, err := world.New(world.DefaultConfig(sizeX, sizeZ), rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	_, err = w.Generate(context.Background())
	require.NoError(t, err)
	return w
}

func cubeAt(t *testing.T, w *world.World, x, z int) *world.Cube {
	t.Helper()
	c, ok := w.At(world.GridCoordinates{X: x, Z: z})
	require.True(t, ok, "At(%d,%d) not found", x, z)
	return c
}

func occupy(t *testing.T, w *world.World, x, z int) {
	t.Helper()
	_, err := w.Occupy(world.GridCoordinates{X: x, Z: z}, "tree_oak")
	require.NoError(t, err)
}
