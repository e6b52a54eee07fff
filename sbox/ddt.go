// Package sbox builds and ranks the statistical tables that drive
// differential and linear cryptanalysis of a DES S-box: the Difference
// Distribution Table (DDT), the Linear Approximation Table (LAT), ranking
// helpers over both, and the Piling-Up lemma with its sample-size
// estimator.
package sbox

import "github.com/krystools/descryptanalysis/tables"

// DDT is a 64x16 Difference Distribution Table for one S-box: DDT[dx][dy]
// counts how many of the 64 inputs x satisfy S(x) xor S(x xor dx) == dy.
type DDT [64][16]int

// BuildDDT constructs the full DDT for an S-box by brute force over all 64
// inputs and 64 input differences.
func BuildDDT(s tables.SBox) DDT {
	var ddt DDT
	for dx := 0; dx < 64; dx++ {
		for x := 0; x < 64; x++ {
			dy := s.Lookup(x) ^ s.Lookup(x^dx)
			ddt[dx][dy]++
		}
	}
	return ddt
}

// RowSum returns the sum of DDT[dx][*], which must equal 64 for every dx.
func (d DDT) RowSum(dx int) int {
	sum := 0
	for _, v := range d[dx] {
		sum += v
	}
	return sum
}

// MaxOffTrivial returns the largest entry in the table excluding the dx=0
// row, i.e. the strongest non-trivial differential for this S-box.
func (d DDT) MaxOffTrivial() int {
	max := 0
	for dx := 1; dx < 64; dx++ {
		for _, v := range d[dx] {
			if v > max {
				max = v
			}
		}
	}
	return max
}
