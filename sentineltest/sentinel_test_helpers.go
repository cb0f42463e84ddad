// Package sentineltest contains test utilities for code working with
// sentinels. Most tests shouldn't touch DefaultRegistry, which is shared
// process-wide state: NewRegistry hands out an isolated registry per test
// instead.
package sentineltest

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"testing"

	"go.uber.org/goleak"

	"github.com/sentinelmark/sentinel"
)

// Namespace is the fixed namespace assigned by registries from NewRegistry.
const Namespace = "sentineltest"

// NewRegistry returns an empty registry isolated from DefaultRegistry. Its
// namespace resolver is pinned to Namespace, so tests exercise deterministic
// keys regardless of which package calls Obtain, and creations are logged
// through tb.
func NewRegistry(tb testing.TB) *sentinel.Registry {
	tb.Helper()

	return sentinel.NewRegistry(&sentinel.Config{
		Logger:   Logger(tb),
		Resolver: sentinel.FixedNamespace(Namespace),
	})
}

// Logger returns a debug-level slog.Logger that writes through tb.Log,
// keeping log output attached to the test that produced it under parallel
// runs.
func Logger(tb testing.TB) *slog.Logger {
	tb.Helper()

	return slog.New(slog.NewTextHandler(&testWriter{tb: tb}, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

type testWriter struct {
	tb testing.TB
}

func (w *testWriter) Write(p []byte) (int, error) {
	w.tb.Helper()
	w.tb.Log(strings.TrimSuffix(string(p), "\n"))
	return len(p), nil
}

// WrapTestMain runs a package's tests and checks for leaked goroutines on a
// successful run. Use from TestMain:
//
//	func TestMain(m *testing.M) {
//		sentineltest.WrapTestMain(m)
//	}
//
// Packages with known benign background goroutines (e.g. database/sql's
// connection opener) pass goleak ignore options.
func WrapTestMain(m *testing.M, opts ...goleak.Option) {
	status := m.Run()

	if status == 0 {
		if err := goleak.Find(opts...); err != nil {
			fmt.Fprintf(os.Stderr, "goleak: errors on successful test run: %v\n", err)
			status = 1
		}
	}

	os.Exit(status)
}
