package textarrays

import "github.com/viniciusth/rmq"

// Builds the LCP array by comparing every pair of adjacent suffixes directly.
// lcp[0] is 0 since the first suffix has no predecessor.
func buildLCPNaive(suffixArray []int, text Symbols) []int {
	lcp := make([]int, len(suffixArray))
	for i := 1; i < len(suffixArray); i++ {
		lcp[i] = commonPrefix(text, suffixArray[i-1], suffixArray[i])
	}
	return lcp
}

// Kasai's algorithm for building the LCP array in O(n) time.
func buildLCPKasai(suffixArray, rank []int, text Symbols) []int {
	lcp := make([]int, len(suffixArray))
	l := 0
	for i := range suffixArray {
		if rank[i] == 0 {
			l = 0
			continue
		}
		j := suffixArray[rank[i]-1]
		for i+l < len(text) && j+l < len(text) && text[i+l] == text[j+l] {
			l++
		}
		lcp[rank[i]] = l
		if l > 0 {
			l--
		}
	}
	return lcp
}

// commonPrefix scans text[i:] and text[j:] until they differ or one of them
// ends, as if an extra terminator followed the text.
func commonPrefix(text Symbols, i, j int) int {
	l := 0
	for i+l < len(text) && j+l < len(text) && text[i+l] == text[j+l] {
		l++
	}
	return l
}

func buildPLCP(rank, lcp []int) []int {
	plcp := make([]int, len(rank))
	for j, r := range rank {
		plcp[j] = lcp[r]
	}
	return plcp
}

// lceIndex answers longest common extension queries between two text
// positions with a range minimum query over the LCP array.
type lceIndex struct {
	n      int
	rank   []int
	lcp    []int
	lcpRMQ *rmq.RMQHybridNaive[int]
}

func newLCEIndex(rank, lcp []int) *lceIndex {
	return &lceIndex{
		n:      len(rank),
		rank:   rank,
		lcp:    lcp,
		lcpRMQ: rmq.NewRMQHybridNaive(lcp),
	}
}

func (x *lceIndex) query(i, j int) int {
	if i == j {
		return x.n - i
	}
	a, b := x.rank[i], x.rank[j]
	if a > b {
		a, b = b, a
	}
	// lcp of the suffixes ranked a and b is the minimum of lcp[a+1..b]
	return x.lcp[x.lcpRMQ.Query(a+1, b)]
}
