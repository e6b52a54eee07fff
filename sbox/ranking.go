package sbox

import "sort"

// DiffEntry is one ranked row of a DDT: an input difference dx, output
// difference dy, the count of inputs producing it, and the implied
// probability count/64.
type DiffEntry struct {
	DeltaX int
	DeltaY int
	Count  int
	Prob   float64
}

// FindBestDifferentials returns the n strongest non-trivial differentials
// (dx != 0) of ddt, sorted by count descending, ties broken by (dx, dy)
// ascending.
func FindBestDifferentials(ddt DDT, n int) []DiffEntry {
	entries := make([]DiffEntry, 0, 64*16)
	for dx := 1; dx < 64; dx++ {
		for dy := 0; dy < 16; dy++ {
			count := ddt[dx][dy]
			entries = append(entries, DiffEntry{
				DeltaX: dx,
				DeltaY: dy,
				Count:  count,
				Prob:   float64(count) / 64,
			})
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		if entries[i].DeltaX != entries[j].DeltaX {
			return entries[i].DeltaX < entries[j].DeltaX
		}
		return entries[i].DeltaY < entries[j].DeltaY
	})

	if n > len(entries) {
		n = len(entries)
	}
	return entries[:n]
}

// ApproxEntry is one ranked row of a LAT: an input mask alpha, output mask
// beta, the signed LAT value, and the implied bias.
type ApproxEntry struct {
	Alpha int
	Beta  int
	LAT   int
	Bias  float64
}

// FindBestApproximations returns the n strongest non-trivial linear
// approximations (alpha != 0, beta != 0) of lat, sorted by |LAT|
// descending, ties broken by (alpha, beta) ascending.
func FindBestApproximations(lat LAT, n int) []ApproxEntry {
	entries := make([]ApproxEntry, 0, 63*15)
	for alpha := 1; alpha < 64; alpha++ {
		for beta := 1; beta < 16; beta++ {
			v := lat[alpha][beta]
			entries = append(entries, ApproxEntry{
				Alpha: alpha,
				Beta:  beta,
				LAT:   v,
				Bias:  lat.Bias(alpha, beta),
			})
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		ai, aj := abs(entries[i].LAT), abs(entries[j].LAT)
		if ai != aj {
			return ai > aj
		}
		if entries[i].Alpha != entries[j].Alpha {
			return entries[i].Alpha < entries[j].Alpha
		}
		return entries[i].Beta < entries[j].Beta
	})

	if n > len(entries) {
		n = len(entries)
	}
	return entries[:n]
}

// BestLATMask returns the single (alpha, beta) pair maximising |LAT|,
// ties broken by (alpha, beta) ascending.
func BestLATMask(lat LAT) ApproxEntry {
	best := FindBestApproximations(lat, 1)
	return best[0]
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
