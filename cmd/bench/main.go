// Command bench loads this package's B-tree, google/btree, and Pebble with
// the same key space and measures load, point-lookup, and mixed-workload
// latency plus live-heap footprint. Results stream to a CSV; the degree
// sweep is charted to a PNG.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

var (
	scale     = flag.Int("scale", 1000000, "Number of keys loaded into each structure.")
	resultDir = flag.String("results", "results", "Directory for CSV and chart output.")
)

func main() {
	flag.Parse()

	if err := os.MkdirAll(*resultDir, 0o755); err != nil {
		log.Fatal(err)
	}
	f, err := os.Create(filepath.Join(*resultDir, "bench.csv"))
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	w := csv.NewWriter(f)
	w.Write([]string{"Structure", "Config", "TestType", "LatencyNs", "MemMB", "HeapObjects"})

	degrees := []int{8, 32, 128}

	var sweep []degreePoint
	for _, d := range degrees {
		res := runSuite(w, "btree", strconv.Itoa(d), newTreeStore(d), *scale)
		sweep = append(sweep, degreePoint{degree: d, insertNs: res.insertNs, lookupNs: res.lookupNs})
		runSuite(w, "google-btree", strconv.Itoa(d), newGoogleStore(d), *scale)
	}

	ps, err := openPebbleStore(filepath.Join(*resultDir, "pebble-bench"))
	if err != nil {
		log.Fatal(err)
	}
	runSuite(w, "pebble", "-", ps, *scale)

	w.Flush()
	if err := w.Error(); err != nil {
		log.Fatal(err)
	}
	if err := writeLatencyChart(sweep, filepath.Join(*resultDir, "latency.png")); err != nil {
		log.Fatal(err)
	}
	fmt.Println("Benchmark complete. Data ready for analysis.")
}

type suiteResult struct {
	insertNs int64
	lookupNs int64
}

func runSuite(w *csv.Writer, name, conf string, s store, n int) suiteResult {
	fmt.Printf("Testing %s (config %s)\n", name, conf)
	defer s.Close()

	vals := newValuePool(64)

	// 1. Pure insert (initial load).
	start := time.Now()
	for k := 0; k < n; k++ {
		if err := s.Insert(int64(k), vals.get()); err != nil {
			log.Fatalf("%s: insert %d: %v", name, k, err)
		}
	}
	insertNs := time.Since(start).Nanoseconds() / int64(n)

	// Sample memory right after load, before the mixed workloads churn it.
	stats := liveHeap()
	record(w, result{name, conf, "Footprint_SteadyState", insertNs, stats.allocMB, stats.heapObjects})

	// 2. Pure point lookup over every loaded key.
	start = time.Now()
	for k := 0; k < n; k++ {
		if _, err := s.Get(int64(k)); err != nil {
			log.Fatalf("%s: get %d: %v", name, k, err)
		}
	}
	lookupNs := time.Since(start).Nanoseconds() / int64(n)
	record(w, result{name, conf, "Lookup_Point", lookupNs, liveHeap().allocMB, 0})

	// 3. Mixed workloads.
	for _, wl := range []workload{oltp, olap, churn} {
		start = time.Now()
		executeWorkload(s, wl, n/2, vals)
		record(w, result{name, conf, string(wl), time.Since(start).Nanoseconds() / int64(n/2), liveHeap().allocMB, 0})
	}

	return suiteResult{insertNs: insertNs, lookupNs: lookupNs}
}
