package sentinel

import (
	"log/slog"
	"sort"
	"sync"
)

// Config customizes a Registry. Every field is optional; the zero value (or
// a nil *Config) produces a registry with no logging, no key normalization,
// and the constant fallback namespace for unqualified names.
type Config struct {
	// Logger is a structured logger that receives a debug line for each
	// sentinel creation. If nil, nothing is logged.
	Logger *slog.Logger

	// Normalizer canonicalizes keys before lookup and insertion, e.g.
	// FoldKeys for case-insensitive registries. If nil, keys are used as-is.
	Normalizer Normalizer

	// Resolver supplies the namespace for Obtain calls that don't pass one
	// explicitly. If nil, or when the resolver returns an empty string,
	// FallbackNamespace is used.
	Resolver NamespaceResolver
}

// Registry maps (namespace, name) keys to canonical sentinels. Entries are
// created lazily on first Obtain and never removed or replaced, so the
// pointer returned for a key is stable for the registry's lifetime.
//
// A Registry is safe for concurrent use.
type Registry struct {
	logger     *slog.Logger
	normalizer Normalizer
	resolver   NamespaceResolver

	mu        sync.Mutex
	sentinels map[Key]*Sentinel
}

// NewRegistry initializes an empty registry. A nil config is equivalent to
// the zero Config.
func NewRegistry(config *Config) *Registry {
	if config == nil {
		config = &Config{}
	}
	return &Registry{
		logger:     config.Logger,
		normalizer: config.Normalizer,
		resolver:   config.Resolver,
		sentinels:  make(map[Key]*Sentinel),
	}
}

// ObtainOpts are optional parameters for obtaining a sentinel. The zero
// value (or a nil *ObtainOpts) selects the defaults. Options are only
// honored on the Obtain call that first creates a key's sentinel; on every
// later call for the same key the original sentinel is returned untouched.
type ObtainOpts struct {
	// Display overrides the rendered representation. Defaults to "<" + the
	// portion of the name after its last dot + ">".
	Display string

	// Falsy makes the sentinel report false from IsTruthy. Sentinels are
	// truthy by default.
	Falsy bool

	// Namespace overrides namespace resolution. Defaults to the registry's
	// resolver (the calling package's import path for DefaultRegistry),
	// falling back to FallbackNamespace.
	Namespace string
}

// Obtain returns the canonical sentinel for (namespace, name), creating it
// if this is the first request for that key. Creation is atomic with respect
// to lookup: concurrent Obtain calls for an unregistered key all return the
// same single object.
//
// Returns an error of type *InvalidNameError if name is empty.
func (r *Registry) Obtain(name string, opts *ObtainOpts) (*Sentinel, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if opts == nil {
		opts = &ObtainOpts{}
	}

	// Resolve outside the lock; a caller-inspecting resolver walks the stack
	// and has no business holding up other Obtains.
	namespace := opts.Namespace
	if namespace == "" && r.resolver != nil {
		namespace = r.resolver()
	}
	if namespace == "" {
		namespace = FallbackNamespace
	}

	key := Key{Namespace: namespace, Name: name}
	if r.normalizer != nil {
		key = r.normalizer(key)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.sentinels[key]; ok {
		return existing, nil
	}

	display := opts.Display
	if display == "" {
		display = defaultDisplay(key.Name)
	}

	s := &Sentinel{
		name:      key.Name,
		namespace: key.Namespace,
		display:   display,
		truthy:    !opts.Falsy,
	}
	r.sentinels[key] = s

	if r.logger != nil {
		r.logger.Debug("sentinel created",
			slog.String("namespace", key.Namespace),
			slog.String("name", key.Name),
			slog.String("display", display),
			slog.Bool("truthy", s.truthy))
	}

	return s, nil
}

// FromRecipe obtains the sentinel described by a reconstruction recipe. When
// the recipe's key is already registered the pre-existing object is returned
// and the recipe's display/truthy values are ignored, which is what makes
// deserialization identity-preserving within a process. In a registry that
// has never seen the key (a fresh process), an equivalent sentinel is
// created from the recipe's values.
func (r *Registry) FromRecipe(recipe Recipe) (*Sentinel, error) {
	return r.Obtain(recipe.Name, &ObtainOpts{
		Display:   recipe.Display,
		Falsy:     !recipe.Truthy,
		Namespace: recipe.Namespace,
	})
}

// Len returns the number of registered sentinels.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sentinels)
}

// Keys returns a snapshot of all registered keys in lexicographic order,
// for diagnostics and introspection.
func (r *Registry) Keys() []Key {
	r.mu.Lock()
	keys := make([]Key, 0, len(r.sentinels))
	for k := range r.sentinels {
		keys = append(keys, k)
	}
	r.mu.Unlock()

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Namespace == keys[j].Namespace {
			return keys[i].Name < keys[j].Name
		}
		return keys[i].Namespace < keys[j].Namespace
	})
	return keys
}

// DefaultRegistry is the process-wide registry backing the package-level
// Obtain and New. It starts empty and resolves unqualified namespaces from
// the calling package's import path.
var DefaultRegistry = NewRegistry(&Config{Resolver: CallerNamespace})

// Obtain returns the canonical sentinel for name from DefaultRegistry. See
// Registry.Obtain.
func Obtain(name string, opts *ObtainOpts) (*Sentinel, error) {
	return DefaultRegistry.Obtain(name, opts)
}

// New is like Obtain but panics on error, which is almost always what's
// wanted at a package-var declaration site:
//
//	var Missing = sentinel.New("Missing", nil)
//
// A sentinel declared with hardcoded arguments can only fail from an invalid
// name, and that's a bug worth failing loudly over at startup. Use Obtain
// when the name comes from somewhere dynamic.
func New(name string, opts *ObtainOpts) *Sentinel {
	s, err := Obtain(name, opts)
	if err != nil {
		panic(err)
	}
	return s
}
