package suffixrank

import (
	"bytes"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/viniciusth/rmq"
	"golang.org/x/text/unicode/norm"
)

type IndexBuilder struct {
	text          string
	useLCP        bool
	caseSensitive bool
	normalize     bool
}

func NewIndexBuilder(text string) *IndexBuilder {
	return &IndexBuilder{
		text:          text,
		useLCP:        true,
		caseSensitive: false,
		normalize:     true,
	}
}

// Skips the LCP array construction, this makes lookups O(|P| * log(|S|)) instead of O(|P| + log(|S|)).
// Saves O(|S|) memory.
func (b *IndexBuilder) SkipLCP() *IndexBuilder {
	b.useLCP = false
	return b
}

// Makes the search case sensitive.
func (b *IndexBuilder) CaseSensitive() *IndexBuilder {
	b.caseSensitive = true
	return b
}

// Skips the normalization of the text with NFC.
func (b *IndexBuilder) SkipNormalization() *IndexBuilder {
	b.normalize = false
	return b
}

func (b *IndexBuilder) Build() (*Index, error) {
	if !utf8.ValidString(b.text) {
		return nil, ErrInvalidUTF8
	}

	text := []byte(applyTransforms(b.text, b.caseSensitive, b.normalize))
	// UTF-8 uses the whole byte range except NUL.
	res, err := NewBuilder().WithAlphabetMax(maxAlphabetMax).CompactAlphabet().Build(text)
	if err != nil {
		return nil, err
	}

	idx := &Index{
		text:          text,
		suffixArray:   res.SuffixArray,
		normalize:     b.normalize,
		caseSensitive: b.caseSensitive,
	}
	if b.useLCP {
		idx.lcp = res.LCP(text)
		if len(idx.lcp) > 0 {
			idx.lcpRMQ = rmq.NewRMQHybridNaive(idx.lcp)
		}
	}
	return idx, nil
}

// Index answers substring queries over a single text through its suffix array.
// Offsets returned by its methods refer to Text(), the text after case folding and normalization.
type Index struct {
	text          []byte
	suffixArray   []int
	lcp           []int
	lcpRMQ        *rmq.RMQHybridNaive[int]
	normalize     bool
	caseSensitive bool
}

func applyTransforms(text string, caseSensitive bool, normalize bool) string {
	if !caseSensitive {
		text = strings.ToLower(text)
	}
	if normalize {
		text = norm.NFC.String(text)
	}
	return text
}

func (s *Index) Text() string {
	return string(s.text)
}

func (s *Index) SuffixArray() []int {
	return s.suffixArray
}

// Lookup returns every offset where pattern occurs, in increasing order.
func (s *Index) Lookup(pattern string) []int {
	l, r := s.find(pattern)
	if l == -1 {
		return nil
	}
	offsets := make([]int, 0, r-l+1)
	offsets = append(offsets, s.suffixArray[l:r+1]...)
	sort.Ints(offsets)
	return offsets
}

func (s *Index) Count(pattern string) int {
	l, r := s.find(pattern)
	if l == -1 {
		return 0
	}
	return r - l + 1
}

func (s *Index) Contains(pattern string) bool {
	l, _ := s.find(pattern)
	return l != -1
}

// LongestRepeated returns the offset and length of a longest substring occurring at least twice.
// The length is 0 when no symbol repeats.
func (s *Index) LongestRepeated() (offset, length int) {
	lcp := s.lcp
	if lcp == nil {
		lcp = BuildLCPArray(s.text, s.suffixArray, invert(s.suffixArray))
	}
	best := -1
	for i, v := range lcp {
		if best == -1 || v > lcp[best] {
			best = i
		}
	}
	if best == -1 || lcp[best] == 0 {
		return -1, 0
	}
	return s.suffixArray[best], lcp[best]
}

func (s *Index) find(pattern string) (int, int) {
	p := []byte(applyTransforms(pattern, s.caseSensitive, s.normalize))
	return findBoundaries(p, s.text, s.suffixArray, s.lcp, s.lcpRMQ)
}

func invert(suffixArray []int) []int {
	isa := make([]int, len(suffixArray))
	for i, p := range suffixArray {
		isa[p] = i
	}
	return isa
}

// Every rank in the returned [l, r] is a suffix with pattern as a prefix, (-1, -1) if there is none.
func findBoundaries(pattern []byte, str []byte, suffixArray, lcp []int, lcpRMQ *rmq.RMQHybridNaive[int]) (int, int) {
	bestIdx, best, n := -1, 0, len(suffixArray)

	// Extends the match of the suffix at rank i, knowing its first best bytes match.
	// Reports whether pattern <= str[suffixArray[i]:] when comparing up to len(pattern).
	expandBest := func(i int) bool {
		pos := suffixArray[i]
		for best < len(pattern) && pos+best < len(str) && pattern[best] == str[pos+best] {
			best++
		}
		bestIdx = i
		if best == len(pattern) {
			return true
		} else if pos+best == len(str) {
			// str[pos:] is a proper prefix of pattern.
			return false
		}
		return pattern[best] < str[pos+best]
	}

	// find first rank where pattern <= suffix
	l := sort.Search(n, func(i int) bool {
		if lcp != nil {
			if bestIdx == -1 || bestIdx == i {
				return expandBest(i)
			}
			lcpLen := lcp[lcpRMQ.Query(min(bestIdx, i), max(bestIdx, i)-1)]
			if lcpLen < best {
				// The suffix at i leaves the pattern exactly where it leaves the best one,
				// in the direction of its rank.
				return i > bestIdx
			}
			return expandBest(i)
		}

		// naive compare as we dont have lcp, find first l where p <= s[l:]
		suffix := str[suffixArray[i]:]
		return bytes.HasPrefix(suffix, pattern) || bytes.Compare(pattern, suffix) < 0
	})

	if l == n || !bytes.HasPrefix(str[suffixArray[l]:], pattern) {
		return -1, -1
	}

	// last rank where pattern is a prefix
	// we have T T T F F F, where pattern is a prefix now.
	// to use sort.Search we need F F F T T T, so search for the first F instead.
	r := sort.Search(n-l, func(i int) bool {
		if i == 0 {
			return false
		}
		if lcp != nil {
			return lcp[lcpRMQ.Query(l, l+i-1)] < len(pattern)
		}
		return !bytes.HasPrefix(str[suffixArray[l+i]:], pattern)
	})

	return l, l + r - 1
}
