package diffattack

import (
	"encoding/binary"

	"github.com/krystools/descryptanalysis/bitops"
	"github.com/krystools/descryptanalysis/des"
	"github.com/krystools/descryptanalysis/prng"
	"github.com/krystools/descryptanalysis/tables"
)

// Result is the outcome of attacking one S-box's 6-bit last-round subkey
// slice: the recovered guess (or NoSignal if every counter stayed at
// zero), and the full 64-entry counter table for inspection.
type Result struct {
	SBoxIndex int
	Guess     int
	Counters  [64]int
	NoSignal  bool
}

// AttackSBox runs the differential last-round key-recovery attack against
// a single S-box: it draws n random plaintext pairs with input difference
// ch.DeltaL0||ch.DeltaR0 from rng, queries oracle for their ciphertexts,
// and scores all 64 guesses of the S-box's 6-bit subkey slice.
func AttackSBox(oracle des.Oracle, ch Characteristic, sboxIndex int, n int, rng *prng.Source) (Result, error) {
	if sboxIndex < 0 || sboxIndex > 7 {
		return Result{}, SBoxIndexError(sboxIndex)
	}
	results, err := AttackAll(oracle, ch, n, rng)
	if err != nil {
		return Result{}, err
	}
	return results[sboxIndex], nil
}

// AttackAll runs the differential attack against all eight S-boxes at
// once, reusing the same N plaintext/ciphertext pairs for every S-box:
// each pair's last-round S-box inputs are independent per S-box, so
// amortising pair collection across all eight targets avoids redrawing N
// pairs eight times over.
func AttackAll(oracle des.Oracle, ch Characteristic, n int, rng *prng.Source) ([8]Result, error) {
	diff := (uint64(ch.DeltaL0) << 32) | uint64(ch.DeltaR0)

	var counters [8][64]int

	for pairIdx := 0; pairIdx < n; pairIdx++ {
		p := rng.Block()
		pPrime := xorBlock(p, diff)

		c := oracle(p)
		cPrime := oracle(pPrime)

		expanded, err := lastRoundExpansion(c)
		if err != nil {
			return [8]Result{}, err
		}
		expandedPrime, err := lastRoundExpansion(cPrime)
		if err != nil {
			return [8]Result{}, err
		}

		for i := 0; i < 8; i++ {
			u := int(bitops.BitsToInt(expanded[i*6 : i*6+6]))
			uPrime := int(bitops.BitsToInt(expandedPrime[i*6 : i*6+6]))
			expected := ch.ExpectedOutputDiff[i]

			for g := 0; g < 64; g++ {
				y := tables.SBoxes[i].Lookup(u ^ g)
				yPrime := tables.SBoxes[i].Lookup(uPrime ^ g)
				if (y ^ yPrime) == expected {
					counters[i][g]++
				}
			}
		}
	}

	var results [8]Result
	for i := 0; i < 8; i++ {
		guess, noSignal := bestGuess(counters[i])
		results[i] = Result{SBoxIndex: i, Guess: guess, Counters: counters[i], NoSignal: noSignal}
	}
	return results, nil
}

// lastRoundExpansion recovers R_{rounds-1} (= L_rounds) from a ciphertext
// and expands it through E, ready for 6-bit slicing per S-box.
func lastRoundExpansion(c des.Block) (bitops.Bits, error) {
	_, lRounds, err := des.InvertFinalRound(c)
	if err != nil {
		return nil, err
	}
	return des.ExpandRightHalf(lRounds)
}

func xorBlock(b des.Block, diff uint64) des.Block {
	v := binary.BigEndian.Uint64(b[:])
	var out des.Block
	binary.BigEndian.PutUint64(out[:], v^diff)
	return out
}

// bestGuess picks the guess with the highest counter, ties broken by the
// smaller guess value. If every counter is zero, it reports no signal
// rather than an arbitrary guess.
func bestGuess(counters [64]int) (guess int, noSignal bool) {
	max := -1
	best := -1
	for g, c := range counters {
		if c > max {
			max = c
			best = g
		}
	}
	if max == 0 {
		return -1, true
	}
	return best, false
}
