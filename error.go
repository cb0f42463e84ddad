package sentinel

import "fmt"

// InvalidNameError is returned when a sentinel name is empty or otherwise
// unusable as part of a registry key. It's the only error kind produced by
// the registry itself; all other Obtain inputs have usable defaults.
type InvalidNameError struct {
	// Name is the rejected name, possibly empty.
	Name string
}

func (e *InvalidNameError) Error() string {
	if e.Name == "" {
		return "sentinel: name is empty"
	}
	return fmt.Sprintf("sentinel: invalid name %q", e.Name)
}

// validateName rejects names that can't form a registry key.
func validateName(name string) error {
	if name == "" {
		return &InvalidNameError{Name: name}
	}
	return nil
}
