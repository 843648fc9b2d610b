package render

import "fmt"

// RenderError indicates an internal layout failure within a single
// fallback tier. The chain catches it and tries the next tier.
type RenderError struct {
	Tier   string
	Reason string
	Err    error
}

func (e *RenderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s renderer failed: %s: %v", e.Tier, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s renderer failed: %s", e.Tier, e.Reason)
}

func (e *RenderError) Unwrap() error { return e.Err }
