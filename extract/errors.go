package extract

import "fmt"

// NotFoundError indicates that a reference source could not be located.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("reference source not found: %s", e.Path)
}

// ConfigurationError indicates that no usable extraction backend is
// available in the current environment.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("extraction not configured: %s", e.Reason)
}
