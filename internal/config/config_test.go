package config

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tomz197/circles/internal/geom"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("CIRCLES_TEST_STR", "value")
	require.Equal(t, "value", GetEnv("CIRCLES_TEST_STR", "fallback"))
	require.Equal(t, "fallback", GetEnv("CIRCLES_TEST_UNSET", "fallback"))

	t.Setenv("CIRCLES_TEST_EMPTY", "")
	require.Equal(t, "", GetEnv("CIRCLES_TEST_EMPTY", "fallback"))
}

func TestGetEnvTyped(t *testing.T) {
	t.Setenv("CIRCLES_TEST_FLOAT", "1e-6")
	t.Setenv("CIRCLES_TEST_INT", "8")
	t.Setenv("CIRCLES_TEST_BAD", "nope")

	require.Equal(t, 1e-6, GetEnvFloat("CIRCLES_TEST_FLOAT", 1))
	require.Equal(t, 2.5, GetEnvFloat("CIRCLES_TEST_BAD", 2.5))
	require.Equal(t, 2.5, GetEnvFloat("CIRCLES_TEST_UNSET", 2.5))

	require.Equal(t, 8, GetEnvInt("CIRCLES_TEST_INT", 1))
	require.Equal(t, 3, GetEnvInt("CIRCLES_TEST_BAD", 3))
	require.Equal(t, 3, GetEnvInt("CIRCLES_TEST_UNSET", 3))
}

func TestEpsilon(t *testing.T) {
	t.Setenv(EnvEpsilon, "1e-6")
	require.Equal(t, 1e-6, Epsilon())

	t.Setenv(EnvEpsilon, "-1")
	require.Equal(t, geom.DefaultEpsilon, Epsilon())

	t.Setenv(EnvEpsilon, "garbage")
	require.Equal(t, geom.DefaultEpsilon, Epsilon())

	for _, v := range []string{"NaN", "Inf", "+Inf", "-Inf"} {
		t.Setenv(EnvEpsilon, v)
		require.Equal(t, geom.DefaultEpsilon, Epsilon(), "value %q", v)
	}
}
