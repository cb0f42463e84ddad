// Package sentinel provides unique placeholder values ("sentinels") that are
// distinguishable from nil, from every ordinary value, and from each other.
// Typical uses are default-argument markers, "not found" return markers, and
// missing-data markers in places where nil is a legitimate value in its own
// right.
//
// Sentinels are obtained from a registry keyed by (namespace, name).
// Obtaining the same key any number of times returns the exact same *Sentinel
// pointer, so identity comparison with == is both cheap and correct:
//
//	var NotGiven = sentinel.New("NotGiven", nil)
//
//	func Fetch(key string, fallback any) any {
//		if fallback == NotGiven {
//			// caller supplied no fallback
//		}
//		...
//	}
//
// The namespace defaults to the import path of the calling package, so two
// packages can both declare a "NotGiven" sentinel without colliding. Pass an
// explicit ObtainOpts.Namespace to override.
//
// DefaultRegistry holds process-wide state: it starts empty, is populated
// lazily, and entries are never removed or mutated. Code that wants isolation
// (tests in particular) should construct its own Registry with NewRegistry,
// or use the helpers in the sentineltest package.
//
// A sentinel survives serialization by way of its Recipe, a small value
// carrying (name, display, truthy, namespace). Decoding a recipe through
// Registry.FromRecipe returns the pre-existing canonical object when the key
// is already registered, which makes encode/decode round trips
// identity-preserving within a process.
package sentinel
