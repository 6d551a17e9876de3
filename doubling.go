package suffixrank

// Prefix doubling over the cyclic text symbols[0..m), where symbols[m-1] is the
// unique minimum (the sentinel). After the pass for length L every position holds
// the dense rank of the length-L rotation starting there. Once L >= m the ranks are
// all distinct and, because the sentinel is unique, the rotation order equals the
// linear suffix order.
//
// Each pass sorts by the pair (rank[p], rank[p+L/2 mod m]) with two stable bucket
// sorts: the previous order shifted back by L/2 is already sorted by second half,
// so only the counting sort by first half is needed.

// cyclicSorter owns the working buffers of one build. A pass reads rank and
// writes nextRank, then the two swap. nextOrder holds the second-half order
// of the pass being run and is never read once order is rewritten.
type cyclicSorter struct {
	m int

	order, nextOrder []int
	rank, nextRank   []int
	count            []int
	classes          int
}

func sortCyclic(symbols []int, buckets int) (sa []int, isa []int) {
	m := len(symbols)
	s := &cyclicSorter{
		m:         m,
		order:     make([]int, m),
		nextOrder: make([]int, m),
		rank:      make([]int, m),
		nextRank:  make([]int, m),
		count:     make([]int, max(buckets, m)),
	}

	s.sortSymbols(symbols, buckets)
	for half := 1; half < m && s.classes < m; half <<= 1 {
		s.refine(half)
	}

	// The sentinel rotation sorts first with rank 0; drop it and rebase.
	n := m - 1
	sa = make([]int, n)
	copy(sa, s.order[1:])
	isa = make([]int, n)
	for i := range isa {
		isa[i] = s.rank[i] - 1
	}
	return sa, isa
}

func (s *cyclicSorter) add(p, d int) int {
	return (p + d) % s.m
}

func (s *cyclicSorter) sub(p, d int) int {
	return (p + s.m - d) % s.m
}

// Base step: counting sort of single symbols, then dense ranks.
func (s *cyclicSorter) sortSymbols(symbols []int, buckets int) {
	count := s.count[:buckets]
	clear(count)
	for _, c := range symbols {
		count[c]++
	}
	exclusivePrefixSums(count)
	for p, c := range symbols {
		s.order[count[c]] = p
		count[c]++
	}

	s.rank[s.order[0]] = 0
	for i := 1; i < s.m; i++ {
		cur, prev := s.order[i], s.order[i-1]
		s.rank[cur] = s.rank[prev]
		if symbols[cur] != symbols[prev] {
			s.rank[cur]++
		}
	}
	s.classes = s.rank[s.order[s.m-1]] + 1
}

// One doubling pass from length 2*half's halves.
func (s *cyclicSorter) refine(half int) {
	// Sorted by second half: p+half runs through the current order.
	for i, p := range s.order {
		s.nextOrder[i] = s.sub(p, half)
	}

	// Stable counting sort by first half. Ranks are dense, so classes buckets suffice.
	count := s.count[:s.classes]
	clear(count)
	for _, r := range s.rank {
		count[r]++
	}
	exclusivePrefixSums(count)
	for _, p := range s.nextOrder {
		r := s.rank[p]
		s.order[count[r]] = p
		count[r]++
	}

	// The pairs arrive sorted, so a pair differs from its predecessor
	// iff either half is strictly greater.
	s.nextRank[s.order[0]] = 0
	for i := 1; i < s.m; i++ {
		cur, prev := s.order[i], s.order[i-1]
		s.nextRank[cur] = s.nextRank[prev]
		if s.rank[prev] < s.rank[cur] || s.rank[s.add(prev, half)] < s.rank[s.add(cur, half)] {
			s.nextRank[cur]++
		}
	}
	s.rank, s.nextRank = s.nextRank, s.rank
	s.classes = s.rank[s.order[s.m-1]] + 1
}

// Turns counts into bucket start offsets in place.
func exclusivePrefixSums(count []int) {
	sum := 0
	for i, c := range count {
		count[i] = sum
		sum += c
	}
}
