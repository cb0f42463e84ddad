package sentinel

import (
	"log/slog"
	"strings"
)

// Sentinel is a unique placeholder value. Sentinels are always handled as
// *Sentinel: the pointer is the identity, so == reports true if and only if
// both sides are the same registered object. The pointer is comparable and
// stable for the life of the process, which also makes sentinels usable as
// map keys and lets external tooling treat each one as its own narrow type.
//
// All fields are fixed at creation. A Sentinel is never mutated afterward,
// even when a later Obtain for the same key passes different options.
type Sentinel struct {
	name      string
	namespace string
	display   string
	truthy    bool
}

// Name returns the sentinel's name, unique within its namespace.
func (s *Sentinel) Name() string { return s.name }

// Namespace returns the scope the sentinel was defined in.
func (s *Sentinel) Namespace() string { return s.namespace }

// Key returns the registry key identifying this sentinel.
func (s *Sentinel) Key() Key { return Key{Namespace: s.namespace, Name: s.name} }

// String returns the sentinel's display form: the explicit display passed at
// creation, or "<" + the portion of the name after its last dot + ">". Other
// tooling (loggers, documentation generators, consoles) relies on this being
// exactly what was configured.
func (s *Sentinel) String() string { return s.display }

// IsTruthy reports how the sentinel behaves in a boolean context. Code that
// branches on a sentinel-or-value should consult this rather than comparing
// against nil, so a sentinel configured as falsy reads as false even though
// it's a distinct non-nil object.
func (s *Sentinel) IsTruthy() bool { return s.truthy }

// Recipe returns the sentinel's reconstruction recipe, the exact external
// representation used across serialization boundaries.
func (s *Sentinel) Recipe() Recipe {
	return Recipe{
		Name:      s.name,
		Display:   s.display,
		Truthy:    s.truthy,
		Namespace: s.namespace,
	}
}

// LogValue implements slog.LogValuer so sentinels render by display form in
// structured logs.
func (s *Sentinel) LogValue() slog.Value { return slog.StringValue(s.display) }

// defaultDisplay derives the display form for names without an explicit one.
// Dotted names keep only their last component: "Outer.Inner" renders as
// "<Inner>".
func defaultDisplay(name string) string {
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return "<" + name + ">"
}
