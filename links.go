package textarrays

// Entry is one slot of the Psi or Phi array. The slot at the boundary of the
// suffix order has no value and Defined is false there.
type Entry struct {
	Value   int
	Defined bool
}

func defined(v int) Entry { return Entry{Value: v, Defined: true} }

// psi[i] is the rank of the suffix one text position to the right of the
// suffix at rank i.
func buildPsi(suffixArray, rank []int) []Entry {
	n := len(suffixArray)
	psi := make([]Entry, n)
	for i, p := range suffixArray {
		if p+1 < n {
			psi[i] = defined(rank[p+1])
		}
	}
	return psi
}

// phi[j] is the text position of the suffix ranked right before suffix j.
func buildPhi(suffixArray, rank []int) []Entry {
	phi := make([]Entry, len(suffixArray))
	for j, r := range rank {
		if r > 0 {
			phi[j] = defined(suffixArray[r-1])
		}
	}
	return phi
}
