package sentinel

import "golang.org/x/text/cases"

// Key identifies a sentinel within a registry. Using a struct as the map key
// rather than a joined string means no separator character needs to be
// reserved, so namespaces and names may contain any characters at all without
// risk of two distinct keys colliding.
type Key struct {
	Namespace string
	Name      string
}

// IsZero reports whether the key is incomplete.
func (k Key) IsZero() bool { return k.Namespace == "" || k.Name == "" }

// String returns a human-readable "namespace/name" form for diagnostics. It
// is not the registry's internal representation and is not collision-safe.
func (k Key) String() string { return k.Namespace + "/" + k.Name }

// Normalizer canonicalizes keys before lookup and insertion. A registry
// configured with a Normalizer applies it to every Obtain, so keys that
// normalize to the same value share one sentinel.
type Normalizer func(Key) Key

var foldCaser = cases.Fold()

// FoldKeys is a Normalizer that Unicode case-folds both key components,
// making sentinel lookup case-insensitive.
func FoldKeys(k Key) Key {
	k.Namespace = foldCaser.String(k.Namespace)
	k.Name = foldCaser.String(k.Name)
	return k
}
