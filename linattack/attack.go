// Package linattack implements Matsui's Algorithm 2 last-round linear key
// recovery against a round-reduced DES oracle: for each S-box's strongest
// linear mask, count how often the approximation's parity equation holds
// under each of the 64 subkey guesses, and recover the guess whose counter
// deviates furthest from N/2.
package linattack

import (
	"math"

	"github.com/krystools/descryptanalysis/bitops"
	"github.com/krystools/descryptanalysis/des"
	"github.com/krystools/descryptanalysis/prng"
	"github.com/krystools/descryptanalysis/sbox"
	"github.com/krystools/descryptanalysis/tables"
)

// Result is the outcome of the linear attack against one S-box's 6-bit
// last-round subkey slice.
type Result struct {
	SBoxIndex int
	Guess     int
	Alpha     int
	Beta      int
	LATValue  int
	Deviation float64
	// Sign is sign(T_guess - N/2) * sign(LAT[Alpha][Beta]). It discloses a
	// parity bit of the outer-round key material even though ranking only
	// uses |T_g - N/2|.
	Sign     int
	Counters [64]int
	N        int
}

// AttackSBox runs the linear attack against a single S-box, choosing its
// mask via sbox.BestLATMask.
func AttackSBox(oracle des.Oracle, sboxIndex int, n int, rng *prng.Source) (Result, error) {
	if sboxIndex < 0 || sboxIndex > 7 {
		return Result{}, SBoxIndexError(sboxIndex)
	}
	results, err := AttackAll(oracle, n, rng)
	if err != nil {
		return Result{}, err
	}
	return results[sboxIndex], nil
}

// AttackAll runs the linear attack against all eight S-boxes, reusing the
// same N (plaintext, ciphertext) pairs for every S-box: each S-box is
// attacked independently, so one shared pass over the pairs suffices.
func AttackAll(oracle des.Oracle, n int, rng *prng.Source) ([8]Result, error) {
	var masks [8]sbox.ApproxEntry
	for i := 0; i < 8; i++ {
		lat := sbox.BuildLAT(tables.SBoxes[i])
		masks[i] = sbox.BestLATMask(lat)
	}

	var counters [8][64]int

	for pairIdx := 0; pairIdx < n; pairIdx++ {
		p := rng.Block()
		c := oracle(p)

		_, lRounds, err := des.InvertFinalRound(c)
		if err != nil {
			return [8]Result{}, err
		}
		expanded, err := des.ExpandRightHalf(lRounds)
		if err != nil {
			return [8]Result{}, err
		}

		for i := 0; i < 8; i++ {
			slice := int(bitops.BitsToInt(expanded[i*6 : i*6+6]))
			alpha, beta := masks[i].Alpha, masks[i].Beta

			for g := 0; g < 64; g++ {
				u := slice ^ g
				a := bitops.Parity(uint64(u & alpha))
				y := tables.SBoxes[i].Lookup(u)
				b := bitops.Parity(uint64(y & beta))
				if a == b {
					counters[i][g]++
				}
			}
		}
	}

	var results [8]Result
	for i := 0; i < 8; i++ {
		guess, deviation := bestGuess(counters[i], n)

		tSign := signOf(float64(counters[i][guess]) - float64(n)/2)
		latSign := signOf(float64(masks[i].LAT))

		results[i] = Result{
			SBoxIndex: i,
			Guess:     guess,
			Alpha:     masks[i].Alpha,
			Beta:      masks[i].Beta,
			LATValue:  masks[i].LAT,
			Deviation: deviation,
			Sign:      tSign * latSign,
			Counters:  counters[i],
			N:         n,
		}
	}
	return results, nil
}

// bestGuess picks the guess maximising |T_g - N/2|, ties broken by the
// smaller guess value.
func bestGuess(counters [64]int, n int) (guess int, deviation float64) {
	half := float64(n) / 2
	bestDev := -1.0
	best := 0
	for g, c := range counters {
		dev := math.Abs(float64(c) - half)
		if dev > bestDev {
			bestDev = dev
			best = g
		}
	}
	return best, bestDev
}

func signOf(x float64) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
