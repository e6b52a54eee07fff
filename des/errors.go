package des

import "fmt"

// KeySizeError represents an error when a DES key is not exactly 8 bytes
// (64 bits).
type KeySizeError int

// Error returns a formatted error message describing the invalid key size.
func (e KeySizeError) Error() string {
	return fmt.Sprintf("des: invalid key size %d, must be 8 bytes", int(e))
}

// RoundCountError represents an error when a round-parameterised operation
// is asked for a round count outside [1, 16].
type RoundCountError int

// Error returns a formatted error message describing the invalid round count.
func (e RoundCountError) Error() string {
	return fmt.Sprintf("des: invalid round count %d, must be between 1 and 16", int(e))
}
