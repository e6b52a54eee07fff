package linattack

import "fmt"

// SBoxIndexError represents an error when an S-box index outside [0, 7] is
// requested.
type SBoxIndexError int

// Error returns a formatted error message describing the invalid index.
func (e SBoxIndexError) Error() string {
	return fmt.Sprintf("linattack: invalid S-box index %d, must be between 0 and 7", int(e))
}
