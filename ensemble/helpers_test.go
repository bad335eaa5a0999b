package ensemble_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/isingmc/lattice"
)

func mustGrid(t *testing.T, rows, cols int) *lattice.Grid {
	t.Helper()
	g, err := lattice.New(rows, cols)
	require.NoError(t, err)
	return g
}
