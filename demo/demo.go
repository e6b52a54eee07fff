// Package demo composes the DES core, the S-box statistics and the two
// attack drivers into the human-facing demonstration sequence behind the
// CLI: a DES self-test, DDT/LAT analysis, and the differential and linear
// attack walkthroughs. It is an external collaborator, not part of the
// core: every function here writes progress to an io.Writer reporting
// sink and never returns a value the core itself would compute silently.
package demo

import (
	"fmt"
	"io"

	"github.com/krystools/descryptanalysis/bitops"
	"github.com/krystools/descryptanalysis/des"
	"github.com/krystools/descryptanalysis/diffattack"
	"github.com/krystools/descryptanalysis/linattack"
	"github.com/krystools/descryptanalysis/prng"
	"github.com/krystools/descryptanalysis/sbox"
	"github.com/krystools/descryptanalysis/tables"
)

// DemoSeed is the fixed seed used throughout the demo, so every run against
// the bundled key and pairs is reproducible.
const DemoSeed = 42

// DemoRounds is the round count the bundled attack characteristics target;
// a requested round count other than this is clamped back to it with a
// warning, since the demo carries no characteristic for any other depth.
const DemoRounds = 4

type vector struct {
	key, plaintext, ciphertext string
}

var fixedVectors = []vector{
	{"133457799BBCDFF1", "0123456789ABCDEF", "85E813540F0AB405"},
	{"0E329232EA6D0D73", "8787878787878787", "0000000000000000"},
	{"0000000000000000", "0000000000000000", "8CA64DE9C1B123A7"},
}

// RunDESTests round-trips DES against the fixed test vectors and reports
// pass/fail for each. It returns true only if every vector's encryption
// and decryption both matched.
func RunDESTests(w io.Writer) bool {
	fmt.Fprintln(w, "=== DES self-test ===")

	allPassed := true
	for i, tv := range fixedVectors {
		keyBlock, err := des.BlockFromHex(tv.key)
		if err != nil {
			fmt.Fprintf(w, "test %d: invalid key %q: %v\n", i+1, tv.key, err)
			allPassed = false
			continue
		}
		pt, err := des.BlockFromHex(tv.plaintext)
		if err != nil {
			fmt.Fprintf(w, "test %d: invalid plaintext %q: %v\n", i+1, tv.plaintext, err)
			allPassed = false
			continue
		}

		cipher, err := des.NewCipher(keyBlock[:])
		if err != nil {
			fmt.Fprintf(w, "test %d: %v\n", i+1, err)
			allPassed = false
			continue
		}

		ct := cipher.Encrypt(pt)
		back := cipher.Decrypt(ct)

		encryptOK := ct.Hex() == tv.ciphertext
		decryptOK := back == pt
		status := "PASS"
		if !encryptOK || !decryptOK {
			status = "FAIL"
			allPassed = false
		}

		fmt.Fprintf(w, "test %d: %s  key=%s  plaintext=%s  ciphertext=%s  expected=%s\n",
			i+1, status, tv.key, tv.plaintext, ct.Hex(), tv.ciphertext)
	}
	return allPassed
}

// RunDDTAnalysis builds the DDT for each of the eight S-boxes and reports
// the five strongest non-trivial differentials, plus whether any S-box's
// maximum off-trivial entry reaches 16 (the largest off-trivial entry
// found in any of the DES S-boxes).
func RunDDTAnalysis(w io.Writer) {
	fmt.Fprintln(w, "=== DDT analysis ===")

	hitSixteen := false
	for i, s := range tables.SBoxes {
		ddt := sbox.BuildDDT(s)
		if ddt.MaxOffTrivial() == 16 {
			hitSixteen = true
		}

		fmt.Fprintf(w, "S%d: max off-trivial count = %d\n", i+1, ddt.MaxOffTrivial())
		for _, entry := range sbox.FindBestDifferentials(ddt, 5) {
			fmt.Fprintf(w, "  dx=%02d dy=%02d count=%2d p=%.4f\n", entry.DeltaX, entry.DeltaY, entry.Count, entry.Prob)
		}
	}
	fmt.Fprintf(w, "at least one S-box attains the maximum of 16: %v\n", hitSixteen)
}

// RunLATAnalysis builds the LAT for each of the eight S-boxes, reports the
// five strongest non-trivial approximations and each S-box's best mask,
// and demonstrates the Piling-Up lemma and sample-size estimate for a
// representative 3-round characteristic.
func RunLATAnalysis(w io.Writer) {
	fmt.Fprintln(w, "=== LAT analysis ===")

	for i, s := range tables.SBoxes {
		lat := sbox.BuildLAT(s)
		best := sbox.BestLATMask(lat)
		fmt.Fprintf(w, "S%d: best mask alpha=%d beta=%d LAT=%+d bias=%.4f\n", i+1, best.Alpha, best.Beta, best.LAT, lat.Bias(best.Alpha, best.Beta))
		for _, entry := range sbox.FindBestApproximations(lat, 5) {
			fmt.Fprintf(w, "  alpha=%02d beta=%02d LAT=%+3d bias=%.4f\n", entry.Alpha, entry.Beta, entry.LAT, entry.Bias)
		}
	}

	lat5 := sbox.BuildLAT(tables.SBoxes[4])
	best5 := sbox.BestLATMask(lat5)
	fmt.Fprintf(w, "S5 signature: alpha=%d beta=%d LAT=%+d\n", best5.Alpha, best5.Beta, best5.LAT)

	fmt.Fprintln(w, "--- Piling-Up lemma ---")
	eps := 20.0 / 64
	combined := sbox.PilingUp([]float64{eps, eps, eps})
	fmt.Fprintf(w, "3 rounds at bias %.4f combine to %.6f\n", eps, combined)

	n, err := sbox.EstimateRequiredPairs(combined)
	if err != nil {
		fmt.Fprintf(w, "sample size: %v\n", err)
	} else {
		fmt.Fprintf(w, "estimated pairs needed (~95%%): %d\n", n)
	}

	fmt.Fprintln(w, "informational: full 16-round DES, Matsui's bias ~1.19e-7, N ~2^43")
}

// ClampRounds enforces that the bundled demo characteristics are 4-round:
// a requested round count other than DemoRounds is honored by being forced
// back to DemoRounds, with warned reporting that to the caller so the CLI
// can print a warning.
func ClampRounds(requested int) (actual int, warned bool) {
	if requested == DemoRounds {
		return DemoRounds, false
	}
	return DemoRounds, true
}

// RunDifferentialAttackDemo runs the differential attack against a
// round-reduced oracle keyed deterministically from DemoSeed, reporting
// each S-box's recovered guess and whether it matches the true key slice.
func RunDifferentialAttackDemo(w io.Writer, requestedRounds int) {
	fmt.Fprintln(w, "=== differential attack demo ===")

	rounds, warned := ClampRounds(requestedRounds)
	if warned {
		fmt.Fprintf(w, "warning: requested %d rounds, demo characteristic is %d-round; using %d\n", requestedRounds, rounds, rounds)
	}
	fmt.Fprintln(w, "note: full 16-round DES needs roughly 2^47 pairs for this style of attack")

	key := prng.DeriveKey(DemoSeed)
	cipher, err := des.NewCipher(key)
	if err != nil {
		fmt.Fprintf(w, "error: %v\n", err)
		return
	}
	oracle := cipher.RoundOracle(rounds)

	const n = 500
	results, err := diffattack.AttackAll(oracle, diffattack.FourRound, n, prng.New(DemoSeed))
	if err != nil {
		fmt.Fprintf(w, "error: %v\n", err)
		return
	}

	for i, res := range results {
		trueSlice := int(bitops.BitsToInt(cipher.Subkey(rounds - 1)[i*6 : i*6+6]))
		if res.NoSignal {
			fmt.Fprintf(w, "S%d: no signal\n", i+1)
			continue
		}
		match := res.Guess == trueSlice
		fmt.Fprintf(w, "S%d: guess=%d true=%d match=%v\n", i+1, res.Guess, trueSlice, match)
	}
}

// RunLinearAttackDemo runs the linear attack against a round-reduced
// oracle keyed deterministically from DemoSeed, reporting each S-box's
// recovered guess, its sign, and whether it matches the true key slice.
func RunLinearAttackDemo(w io.Writer, requestedRounds int) {
	fmt.Fprintln(w, "=== linear attack demo ===")

	rounds, warned := ClampRounds(requestedRounds)
	if warned {
		fmt.Fprintf(w, "warning: requested %d rounds, demo characteristic is %d-round; using %d\n", requestedRounds, rounds, rounds)
	}
	fmt.Fprintln(w, "note: full 16-round DES needs roughly 2^43 pairs for this style of attack")

	key := prng.DeriveKey(DemoSeed)
	cipher, err := des.NewCipher(key)
	if err != nil {
		fmt.Fprintf(w, "error: %v\n", err)
		return
	}
	oracle := cipher.RoundOracle(rounds)

	const n = 1000
	results, err := linattack.AttackAll(oracle, n, prng.New(DemoSeed))
	if err != nil {
		fmt.Fprintf(w, "error: %v\n", err)
		return
	}

	matches := 0
	for i, res := range results {
		trueSlice := int(bitops.BitsToInt(cipher.Subkey(rounds - 1)[i*6 : i*6+6]))
		match := res.Guess == trueSlice
		if match {
			matches++
		}
		fmt.Fprintf(w, "S%d: guess=%d true=%d match=%v sign=%+d deviation=%.1f\n", i+1, res.Guess, trueSlice, match, res.Sign, res.Deviation)
	}
	fmt.Fprintf(w, "recovered %d/8 slices\n", matches)
}

// RunAll runs every phase in sequence: DES self-test, DDT analysis,
// differential attack, LAT analysis, linear attack. It aborts after the
// DES self-test if any fixed vector fails, since there is no point
// analysing or attacking a cipher the self-test couldn't confirm.
func RunAll(w io.Writer, requestedRounds int) {
	if requestedRounds >= des.Rounds {
		fmt.Fprintln(w, "warning: full 16-round DES is impractical for these demo attacks (needs ~2^43-2^47 pairs)")
	}

	if !RunDESTests(w) {
		fmt.Fprintln(w, "DES self-test failed; aborting before analysis phases")
		return
	}

	RunDDTAnalysis(w)
	RunDifferentialAttackDemo(w, requestedRounds)
	RunLATAnalysis(w)
	RunLinearAttackDemo(w, requestedRounds)
}
