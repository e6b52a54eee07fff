package sbox

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krystools/descryptanalysis/tables"
)

// TestDDTProperties checks the structural invariants of a DES S-box's DDT:
// every row sums to 64, every entry is even, and the strongest non-trivial
// differential never exceeds 16.
func TestDDTProperties(t *testing.T) {
	for i, s := range tables.SBoxes {
		ddt := BuildDDT(s)

		for dx := 0; dx < 64; dx++ {
			assert.Equalf(t, 64, ddt.RowSum(dx), "S%d row %d does not sum to 64", i+1, dx)
			for _, v := range ddt[dx] {
				assert.Zerof(t, v%2, "S%d row %d has an odd entry", i+1, dx)
			}
		}

		assert.Equal(t, 64, ddt[0][0])
		for dy := 1; dy < 16; dy++ {
			assert.Zero(t, ddt[0][dy])
		}

		assert.LessOrEqualf(t, ddt.MaxOffTrivial(), 16, "S%d max off-trivial DDT entry exceeds 16", i+1)
	}
}

// TestDDTAtLeastOneSBoxHitsSixteen checks that at least one S-box attains
// the maximum possible differential count of 16.
func TestDDTAtLeastOneSBoxHitsSixteen(t *testing.T) {
	hit := false
	for _, s := range tables.SBoxes {
		if BuildDDT(s).MaxOffTrivial() == 16 {
			hit = true
			break
		}
	}
	assert.True(t, hit)
}

// TestLATProperties checks the structural invariants of a DES S-box's LAT:
// the trivial mask entry is 32, every other entry touching a zero mask is
// zero, and no non-trivial entry exceeds 20 in magnitude.
func TestLATProperties(t *testing.T) {
	for i, s := range tables.SBoxes {
		lat := BuildLAT(s)

		assert.Equal(t, 32, lat[0][0])
		for alpha := 1; alpha < 64; alpha++ {
			assert.Zerof(t, lat[alpha][0], "S%d LAT[%d][0] must be 0", i+1, alpha)
		}
		for beta := 1; beta < 16; beta++ {
			assert.Zerof(t, lat[0][beta], "S%d LAT[0][%d] must be 0", i+1, beta)
		}

		assert.LessOrEqualf(t, lat.MaxAbs(), 20, "S%d max |LAT| exceeds 20", i+1)
	}
}

// TestLATSignatureS5 checks that S5's best linear mask is exactly (16, 15)
// with |LAT| = 20, the well-known strongest approximation for that S-box.
func TestLATSignatureS5(t *testing.T) {
	lat := BuildLAT(tables.SBoxes[4])
	best := BestLATMask(lat)

	assert.Equal(t, 16, best.Alpha)
	assert.Equal(t, 15, best.Beta)
	assert.Equal(t, 20, abs(best.LAT))
}

func TestFindBestDifferentialsOrdering(t *testing.T) {
	ddt := BuildDDT(tables.SBoxes[0])
	best := FindBestDifferentials(ddt, 5)
	require.Len(t, best, 5)
	for i := 1; i < len(best); i++ {
		assert.GreaterOrEqual(t, best[i-1].Count, best[i].Count)
		assert.NotZero(t, best[i].DeltaX)
	}
}

func TestFindBestApproximationsOrdering(t *testing.T) {
	lat := BuildLAT(tables.SBoxes[0])
	best := FindBestApproximations(lat, 5)
	require.Len(t, best, 5)
	for i := 1; i < len(best); i++ {
		assert.GreaterOrEqual(t, abs(best[i-1].LAT), abs(best[i].LAT))
		assert.NotZero(t, best[i].Alpha)
		assert.NotZero(t, best[i].Beta)
	}
}

// TestDDTStableAcrossBuilds rebuilds the DDT for every S-box twice and
// diffs the full 64x16 matrices in one assertion with go-cmp, guarding
// against any non-determinism in the brute-force construction.
func TestDDTStableAcrossBuilds(t *testing.T) {
	for i, s := range tables.SBoxes {
		a := BuildDDT(s)
		b := BuildDDT(s)
		if diff := cmp.Diff(a, b); diff != "" {
			t.Errorf("S%d DDT not stable across builds:\n%s", i+1, diff)
		}
	}
}

// TestLATStableAcrossBuilds is the LAT analogue of TestDDTStableAcrossBuilds.
func TestLATStableAcrossBuilds(t *testing.T) {
	for i, s := range tables.SBoxes {
		a := BuildLAT(s)
		b := BuildLAT(s)
		if diff := cmp.Diff(a, b); diff != "" {
			t.Errorf("S%d LAT not stable across builds:\n%s", i+1, diff)
		}
	}
}

func TestPilingUp(t *testing.T) {
	eps := 20.0 / 64
	got := PilingUp([]float64{eps, eps, eps})
	want := 4 * eps * eps * eps
	assert.InDelta(t, want, got, 1e-12)
}

func TestEstimateRequiredPairs(t *testing.T) {
	n, err := EstimateRequiredPairs(20.0 / 64)
	require.NoError(t, err)
	assert.Greater(t, n, 0)

	_, err = EstimateRequiredPairs(0)
	assert.Error(t, err)
	assert.IsType(t, InfeasibleError{}, err)
}
