package sbox

import (
	"math"

	"github.com/krystools/descryptanalysis/bitops"
	"github.com/krystools/descryptanalysis/tables"
)

// LAT is a 64x16 Linear Approximation Table for one S-box, centred on 32:
// LAT[alpha][beta] = count(parity(x & alpha) == parity(S(x) & beta)) - 32,
// a signed value in [-32, +32].
type LAT [64][16]int

// BuildLAT constructs the full LAT for an S-box by brute force over all 64
// inputs, input masks alpha and output masks beta.
func BuildLAT(s tables.SBox) LAT {
	var lat LAT
	for alpha := 0; alpha < 64; alpha++ {
		for beta := 0; beta < 16; beta++ {
			count := 0
			for x := 0; x < 64; x++ {
				y := s.Lookup(x)
				if bitops.Parity(uint64(x&alpha)) == bitops.Parity(uint64(y&beta)) {
					count++
				}
			}
			lat[alpha][beta] = count - 32
		}
	}
	return lat
}

// Bias returns |LAT[alpha][beta]| / 64, the probabilistic bias of the
// linear approximation.
func (l LAT) Bias(alpha, beta int) float64 {
	return math.Abs(float64(l[alpha][beta])) / 64
}

// MaxAbs returns the largest |LAT[alpha][beta]| over the table, excluding
// the trivial entry LAT[0][0] = 32, i.e. the strongest non-trivial linear
// approximation for this S-box.
func (l LAT) MaxAbs() int {
	max := 0
	for alpha, row := range l {
		for beta, v := range row {
			if alpha == 0 && beta == 0 {
				continue
			}
			if v < 0 {
				v = -v
			}
			if v > max {
				max = v
			}
		}
	}
	return max
}
