// Package callsite infers the package import path of a caller by walking
// the stack. It backs the default namespace resolution of sentinels, where
// an unqualified name is scoped to the package that requested it.
package callsite

import (
	"reflect"
	"runtime"
	"strings"
)

type marker struct{}

// modulePrefix is the import path of the module root, derived from this
// package's own path via reflection so it survives forks and renames.
var modulePrefix = strings.TrimSuffix(reflect.TypeOf(marker{}).PkgPath(), "/internal/callsite")

// CallerPackage returns the import path of the nearest calling package
// outside this module, or "" when none can be found. Frames belonging to the
// module root package, to internal packages, and to the runtime and testing
// machinery are skipped, so the result is the package that actually asked
// for a sentinel no matter how many layers of this module sit in between.
func CallerPackage() string {
	var pcs [32]uintptr
	n := runtime.Callers(2, pcs[:])

	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if pkg := packageOf(frame.Function); !skipPackage(pkg) {
			return pkg
		}
		if !more {
			return ""
		}
	}
}

func skipPackage(pkg string) bool {
	switch {
	case pkg == "", pkg == "runtime", pkg == "testing":
		return true
	case pkg == modulePrefix:
		return true
	case strings.HasPrefix(pkg, modulePrefix+"/internal/"):
		return true
	}
	return false
}

// packageOf extracts the package import path from a fully qualified function
// name like "example.com/mod/pkg.(*Type).Method" or "main.main".
func packageOf(function string) string {
	if function == "" {
		return ""
	}

	// The package path is everything up to the first dot after the last
	// slash. Method receivers and anonymous function suffixes all come after
	// that dot.
	start := strings.LastIndex(function, "/") + 1
	dot := strings.Index(function[start:], ".")
	if dot < 0 {
		return ""
	}
	return function[:start+dot]
}
