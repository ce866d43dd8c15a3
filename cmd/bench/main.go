// Command bench measures zonefile parsing throughput on synthetic zones.
package main

import (
	"flag"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jroosing/zonejson/internal/helpers"
	"github.com/jroosing/zonejson/internal/zonefile"
)

func main() {
	var (
		records     = flag.Int("records", 1000, "Resource records per synthetic zone")
		iterations  = flag.Int("iterations", 2000, "Total number of parses")
		concurrency = flag.Int("concurrency", 8, "Number of concurrent workers")
		lenient     = flag.Bool("lenient", false, "Use lenient parsing")
	)
	flag.Parse()

	nRecords := helpers.ClampInt(*records, 1, 1_000_000)
	total := helpers.ClampInt(*iterations, 1, 10_000_000)
	conc := helpers.ClampInt(*concurrency, 1, 1024)

	text := syntheticZone(nRecords)

	parse := zonefile.Parse
	if *lenient {
		parse = zonefile.ParseLenient
	}

	per := total / conc
	rem := total % conc

	lat := make([]float64, 0, total)
	var latMu sync.Mutex

	t0 := time.Now()
	var wg sync.WaitGroup
	for i := 0; i < conc; i++ {
		n := per
		if i < rem {
			n++
		}
		if n <= 0 {
			continue
		}
		wg.Add(1)
		go func(num int) {
			defer wg.Done()
			local := make([]float64, 0, num)
			for j := 0; j < num; j++ {
				start := time.Now()
				if _, err := parse(text); err != nil {
					continue
				}
				local = append(local, float64(time.Since(start).Microseconds())/1000.0)
			}
			latMu.Lock()
			lat = append(lat, local...)
			latMu.Unlock()
		}(n)
	}
	wg.Wait()
	elapsed := time.Since(t0).Seconds()

	if len(lat) == 0 {
		fmt.Printf("no successful parses\n")
		return
	}
	sort.Float64s(lat)
	p50 := percentile(lat, 50)
	p95 := percentile(lat, 95)
	p99 := percentile(lat, 99)
	pps := float64(len(lat)) / elapsed
	rps := pps * float64(nRecords)

	fmt.Printf("records=%d iterations=%d concurrency=%d lenient=%v\n", nRecords, len(lat), conc, *lenient)
	fmt.Printf("elapsed_s=%.3f parses_per_s=%.1f records_per_s=%.0f\n", elapsed, pps, rps)
	fmt.Printf("latency_ms p50=%.3f p95=%.3f p99=%.3f min=%.3f max=%.3f\n", p50, p95, p99, lat[0], lat[len(lat)-1])
}

func percentile(sorted []float64, p int) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 100 {
		return sorted[len(sorted)-1]
	}
	idx := int(float64(len(sorted))*float64(p)/100.0) - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}

// syntheticZone builds a zone of n records cycling through the common types,
// with parenthesized groups and comments mixed in to exercise the full
// pipeline.
func syntheticZone(n int) string {
	var b strings.Builder
	b.WriteString("$ORIGIN bench.example.\n")
	b.WriteString("$TTL 3600\n")
	b.WriteString("@ IN SOA ns1.bench.example. admin.bench.example. (\n")
	b.WriteString("  2026010101 ; serial\n")
	b.WriteString("  7200 3600 1209600 3600 )\n")

	for i := 0; i < n; i++ {
		switch i % 5 {
		case 0:
			fmt.Fprintf(&b, "host%d IN A 192.0.2.%d\n", i, i%254+1)
		case 1:
			fmt.Fprintf(&b, "host%d IN AAAA 2001:db8::%x\n", i, i%65535+1)
		case 2:
			fmt.Fprintf(&b, "alias%d IN CNAME host%d.bench.example. ; alias\n", i, i-2)
		case 3:
			fmt.Fprintf(&b, "mail%d IN MX %d mx%d.bench.example.\n", i, i%100, i)
		case 4:
			fmt.Fprintf(&b, "txt%d IN TXT \"synthetic record %d\"\n", i, i)
		}
	}
	return b.String()
}
