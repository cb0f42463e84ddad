package sentinel_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sentinelmark/sentinel"
	"github.com/sentinelmark/sentinel/sentineltest"
)

func TestMain(m *testing.M) {
	sentineltest.WrapTestMain(m)
}

// Package-var declaration is the primary use case for New; it must work at
// init time, before any test has run.
var notGiven = sentinel.New("NotGiven", nil)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("DeclarationSiteIdentity", func(t *testing.T) {
		t.Parallel()

		again, err := sentinel.Obtain("NotGiven", nil)
		require.NoError(t, err)
		require.Same(t, notGiven, again)
		require.Equal(t, "<NotGiven>", notGiven.String())
	})

	t.Run("PanicsOnEmptyName", func(t *testing.T) {
		t.Parallel()

		require.PanicsWithError(t, "sentinel: name is empty", func() {
			sentinel.New("", nil)
		})
	})
}

func TestCallerNamespace(t *testing.T) {
	t.Parallel()

	// CallerNamespace invoked directly and namespace inference inside Obtain
	// walk the same stack filter, so both must land on this package.
	namespace := sentinel.CallerNamespace()
	require.NotEmpty(t, namespace)

	s := sentinel.New("CallerScoped", nil)
	require.Equal(t, namespace, s.Namespace())

	require.Equal(t, namespace, notGiven.Namespace())
}

func TestExplicitNamespaceBypassesResolver(t *testing.T) {
	t.Parallel()

	elsewhere, err := sentinel.Obtain("CallerScoped", &sentinel.ObtainOpts{Namespace: "i.dont.exist"})
	require.NoError(t, err)

	local := sentinel.New("CallerScoped", nil)
	require.NotSame(t, local, elsewhere)
	require.Equal(t, "i.dont.exist", elsewhere.Namespace())
}

func TestEqualityMatchesIdentity(t *testing.T) {
	t.Parallel()

	a := sentinel.New("EqualityA", nil)
	b := sentinel.New("EqualityB", nil)

	require.True(t, a == sentinel.New("EqualityA", nil))
	require.False(t, a == b)
	require.False(t, a == nil)

	// Sentinels never compare equal to ordinary values, their names, or
	// their display forms.
	require.NotEqual(t, any("EqualityA"), any(a))
	require.NotEqual(t, any("<EqualityA>"), any(a))
}
