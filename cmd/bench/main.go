package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/viniciusth/suffixrank"
)

type variant struct {
	name string
	run  func(text []byte, patterns []string)
}

var variants = map[string]variant{
	"default": {name: "default", run: func(text []byte, _ []string) { mustBuild(suffixrank.NewBuilder().WithAlphabetMax(255), text) }},
	"compact": {name: "compact", run: func(text []byte, _ []string) {
		mustBuild(suffixrank.NewBuilder().WithAlphabetMax(255).CompactAlphabet(), text)
	}},
	"lcp": {name: "lcp", run: func(text []byte, _ []string) {
		res := mustBuild(suffixrank.NewBuilder().WithAlphabetMax(255), text)
		_ = res.LCP(text)
	}},
	"index": {name: "index", run: func(text []byte, patterns []string) {
		idx, err := suffixrank.NewIndexBuilder(string(text)).CaseSensitive().SkipNormalization().Build()
		if err != nil {
			panic(err)
		}
		for _, p := range patterns {
			_ = idx.Count(p)
		}
	}},
}

func mustBuild(b *suffixrank.SuffixArrayBuilder, text []byte) *suffixrank.Result {
	res, err := b.Build(text)
	if err != nil {
		panic(err)
	}
	return res
}

type memMonitor struct {
	maxAlloc uint64
	stop     chan struct{}
	done     chan struct{}
}

func newMemMonitor() *memMonitor {
	mm := &memMonitor{stop: make(chan struct{}), done: make(chan struct{})}
	go func() {
		defer close(mm.done)
		for {
			var m runtime.MemStats
			runtime.ReadMemStats(&m)
			if m.Alloc > mm.maxAlloc {
				mm.maxAlloc = m.Alloc
			}
			select {
			case <-mm.stop:
				return
			default:
				time.Sleep(10 * time.Millisecond)
			}
		}
	}()
	return mm
}

func (mm *memMonitor) Stop() uint64 {
	close(mm.stop)
	<-mm.done
	return mm.maxAlloc
}

func measure(v variant, text []byte, patterns []string) (time.Duration, uint64) {
	runtime.GC()
	mm := newMemMonitor()
	start := time.Now()
	v.run(text, patterns)
	dur := time.Since(start)
	return dur, mm.Stop()
}

func randomText(r *rand.Rand, n, alphabet int) []byte {
	text := make([]byte, n)
	for i := range text {
		text[i] = byte(r.Intn(alphabet) + 'a')
	}
	return text
}

func runBenchmark(v variant, N, A, P, Q, runs int) {
	for run := 0; run < runs; run++ {
		r := rand.New(rand.NewSource(int64(run)))
		text := randomText(r, N, A)
		patterns := make([]string, Q)
		for i := range patterns {
			start := r.Intn(N - P + 1)
			patterns[i] = string(text[start : start+P])
		}
		dur, peak := measure(v, text, patterns)
		fmt.Printf("%s,%d,%d,%d,%d,%.0f,%d\n", v.name, N, A, P, Q, float64(dur.Nanoseconds()), peak)
	}
}

func main() {
	variantName := flag.String("variant", "", "Variant to benchmark")
	n := flag.Int("n", 0, "Text length N")
	a := flag.Int("a", 4, "Alphabet size A, symbols start at 'a'")
	p := flag.Int("p", 8, "Pattern length P")
	q := flag.Int("q", 0, "Number of queries Q, index variant only")
	runs := flag.Int("runs", 3, "Number of runs for averaging")
	cpuprofile := flag.String("cpuprofile", "", "Write CPU profile to file")
	flag.Parse()

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "could not create CPU profile: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "could not start CPU profile: %v\n", err)
			os.Exit(1)
		}
		defer pprof.StopCPUProfile()
	}

	if *variantName == "" || *n <= 0 || *a <= 0 || *a > 'z'-'a'+1 || *p <= 0 || *p > *n || *q < 0 {
		fmt.Println("Usage: go run main.go -variant=<variant> -n=<N> [-a=<A>] [-p=<P>] [-q=<Q>] [-runs=<runs>]")
		fmt.Println("Available variants: default, compact, lcp, index")
		os.Exit(1)
	}

	v, ok := variants[*variantName]
	if !ok {
		fmt.Println("Invalid variant:", *variantName)
		os.Exit(1)
	}

	runBenchmark(v, *n, *a, *p, *q, *runs)
}
