package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	strconv "github.com/dsnet/golib/unitconv"
	"github.com/viniciusth/textarrays"
)

type variant struct {
	name   string
	config func(*textarrays.Builder) *textarrays.Builder
}

var variants = map[string]variant{
	"naive":          {name: "naive", config: func(b *textarrays.Builder) *textarrays.Builder { return b }},
	"kasai":          {name: "kasai", config: func(b *textarrays.Builder) *textarrays.Builder { return b.UseKasai() }},
	"naive_sentinel": {name: "naive_sentinel", config: func(b *textarrays.Builder) *textarrays.Builder { return b.AppendSentinel() }},
	"kasai_sentinel": {name: "kasai_sentinel", config: func(b *textarrays.Builder) *textarrays.Builder { return b.UseKasai().AppendSentinel() }},
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

func getCurrentAlloc() uint64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m.Alloc
}

func measureBuild(text string, config func(*textarrays.Builder) *textarrays.Builder) (time.Duration, uint64, uint64, error) {
	runtime.GC()
	mm := newMemMonitor()
	start := time.Now()
	set, err := config(textarrays.NewBuilder(text)).Build()
	dur := time.Since(start)
	peak := mm.Stop()
	if err != nil {
		return 0, 0, 0, err
	}
	runtime.GC()
	alloc := getCurrentAlloc()
	runtime.KeepAlive(set)
	return dur, peak, alloc, nil
}

func formatBytes(n uint64) string {
	return strconv.FormatPrefix(float64(n), strconv.Base1024, 2) + "B"
}

func runBenchmark(v variant, n, sigma, runs int) error {
	for run := 0; run < runs; run++ {
		r := rand.New(rand.NewSource(int64(run)))
		text := make([]byte, n)
		for i := range text {
			text[i] = byte(r.Intn(sigma) + 'a')
		}
		bt, bp, ba, err := measureBuild(string(text), v.config)
		if err != nil {
			return err
		}
		fmt.Printf("%s,%d,%d,%.0f,%s,%s\n",
			v.name, n, sigma, float64(bt.Nanoseconds()), formatBytes(bp), formatBytes(ba))
	}
	return nil
}

func main() {
	variantName := flag.String("variant", "", "Variant to benchmark")
	size := flag.String("n", "", "Text length, SI prefixes allowed (e.g. 2k)")
	sigma := flag.Int("sigma", 4, "Alphabet size, at most 26")
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

	n := 0
	if nf, err := strconv.ParsePrefix(*size, strconv.AutoParse); err == nil {
		n = int(nf)
	}
	if *variantName == "" || n <= 0 || *sigma <= 0 || *sigma > 26 || *runs <= 0 {
		fmt.Println("Usage: go run main.go -variant=<variant> -n=<N> [-sigma=<sigma>] [-runs=<runs>]")
		fmt.Println("Available variants:", variants)
		os.Exit(1)
	}

	v, ok := variants[*variantName]
	if !ok {
		fmt.Println("Invalid variant:", *variantName)
		os.Exit(1)
	}

	if err := runBenchmark(v, n, *sigma, *runs); err != nil {
		fmt.Fprintf(os.Stderr, "benchmark failed: %v\n", err)
		os.Exit(1)
	}
}
