package main

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tomz197/circles/internal/config"
	"github.com/tomz197/circles/internal/geom"
	"github.com/tomz197/circles/internal/input"
)

func TestRunQuery(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, runQuery([]string{"0", "0", "5", "10", "0", "5"}, false, geom.DefaultSolver, &out))
	require.Equal(t, "1 point: (5, 0)\n", out.String())

	out.Reset()
	require.NoError(t, runQuery([]string{"0", "0", "1", "5", "0"}, true, geom.DefaultSolver, &out))
	require.Equal(t, "no intersection\n", out.String())

	out.Reset()
	require.NoError(t, runQuery([]string{"-1", "0", "1", "1", "0"}, false, geom.DefaultSolver, &out))
	require.Equal(t, "1 point: (0, 0)\n", out.String())

	err := runQuery([]string{"0", "0", "2", "0", "0"}, false, geom.DefaultSolver, &out)
	require.ErrorIs(t, err, geom.ErrCoincident)

	err = runQuery([]string{"0", "0"}, false, geom.DefaultSolver, &out)
	require.ErrorIs(t, err, input.ErrArgCount)
}

func TestResolveEpsilon(t *testing.T) {
	t.Setenv(config.EnvEpsilon, "")

	eps, err := resolveEpsilon(0)
	require.NoError(t, err)
	require.Equal(t, geom.DefaultEpsilon, eps)

	t.Setenv(config.EnvEpsilon, "1e-7")
	eps, err = resolveEpsilon(0)
	require.NoError(t, err)
	require.Equal(t, 1e-7, eps)

	eps, err = resolveEpsilon(1e-3)
	require.NoError(t, err)
	require.Equal(t, 1e-3, eps)

	for _, bad := range []float64{-1e-9, math.NaN(), math.Inf(1)} {
		_, err = resolveEpsilon(bad)
		require.ErrorContains(t, err, "must be positive and finite", "flag %v", bad)
	}
}
