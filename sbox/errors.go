package sbox

import "fmt"

// InfeasibleError represents a sample-size estimate that cannot be
// computed because the supplied bias is zero: the characteristic carries
// no signal and no finite number of pairs will recover it. Callers must
// propagate or surface this rather than treating it as a finite estimate.
type InfeasibleError struct {
	bias float64
}

// Error returns a formatted error message explaining the zero-bias case.
func (e InfeasibleError) Error() string {
	return fmt.Sprintf("sbox: sample size is infeasible for bias %v (characteristic carries no signal)", e.bias)
}
