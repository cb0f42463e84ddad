package sentinel

import "github.com/sentinelmark/sentinel/internal/callsite"

// NamespaceResolver yields the namespace for a sentinel when the Obtain call
// didn't supply one explicitly. It's invoked once per Obtain, before the
// registry lookup. An empty return value means the namespace couldn't be
// determined and FallbackNamespace should be used.
//
// Injecting the resolver (rather than having the registry reach into the
// runtime directly) keeps registries testable: production registries use
// CallerNamespace, tests typically use FixedNamespace.
type NamespaceResolver func() string

// FallbackNamespace is the namespace assigned when none was given and the
// resolver couldn't determine one. It names this package's own scope.
const FallbackNamespace = "github.com/sentinelmark/sentinel"

// CallerNamespace is a NamespaceResolver that returns the import path of the
// nearest calling package outside this module, mirroring "the module that
// defined the sentinel". Returns "" when no such frame can be found (e.g.
// calls originating inside the runtime).
func CallerNamespace() string {
	return callsite.CallerPackage()
}

// FixedNamespace returns a resolver pinned to the given namespace.
func FixedNamespace(namespace string) NamespaceResolver {
	return func() string { return namespace }
}
