package sentineltest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sentinelmark/sentinel"
)

func TestNewRegistry(t *testing.T) {
	t.Parallel()

	t.Run("IsolatedFromDefaultRegistry", func(t *testing.T) {
		t.Parallel()

		registry := NewRegistry(t)

		s, err := registry.Obtain("Missing", nil)
		require.NoError(t, err)
		require.Equal(t, Namespace, s.Namespace())
		require.Equal(t, 1, registry.Len())

		other := NewRegistry(t)
		require.Equal(t, 0, other.Len())

		fromOther, err := other.Obtain("Missing", nil)
		require.NoError(t, err)
		require.NotSame(t, s, fromOther)
	})

	t.Run("FixedNamespaceOverridable", func(t *testing.T) {
		t.Parallel()

		registry := NewRegistry(t)

		s, err := registry.Obtain("Missing", &sentinel.ObtainOpts{Namespace: "elsewhere"})
		require.NoError(t, err)
		require.Equal(t, "elsewhere", s.Namespace())
	})
}

func TestLogger(t *testing.T) {
	t.Parallel()

	logger := Logger(t)
	logger.Debug("sentineltest logger output", "key", "value")
}
