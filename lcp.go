package suffixrank

// Kasai's algorithm for building the LCP array in O(n) time.
// lcp[i] is the length of the longest common prefix of the suffixes at suffixArray[i] and suffixArray[i+1].
func BuildLCPArray[S comparable](text []S, suffixArray, inverseSuffixArray []int) []int {
	if len(suffixArray) < 2 {
		return nil
	}

	lcp := make([]int, len(suffixArray)-1)
	l := 0
	for i := range suffixArray {
		if inverseSuffixArray[i]+1 == len(suffixArray) {
			l = 0
			continue
		}
		j := suffixArray[inverseSuffixArray[i]+1]
		for i+l < len(text) && j+l < len(text) && text[i+l] == text[j+l] {
			l++
		}
		lcp[inverseSuffixArray[i]] = l
		if l > 0 {
			l--
		}
	}

	return lcp
}

// LCP computes the LCP array of text, which must be the text r was built from.
func (r *Result) LCP(text []byte) []int {
	return BuildLCPArray(text, r.SuffixArray, r.InverseSuffixArray)
}
