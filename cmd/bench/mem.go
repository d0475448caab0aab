package main

import (
	"encoding/csv"
	"runtime"
	"strconv"
)

type result struct {
	name      string
	config    string
	operation string
	latencyNs int64
	memMB     uint64
	objects   uint64
}

type heapStats struct {
	allocMB     uint64
	heapObjects uint64
}

// liveHeap forces a GC first so the numbers reflect live data, not garbage.
func liveHeap() heapStats {
	var m runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&m)
	return heapStats{
		allocMB:     m.Alloc / 1024 / 1024,
		heapObjects: m.HeapObjects,
	}
}

func record(w *csv.Writer, r result) {
	w.Write([]string{
		r.name,
		r.config,
		r.operation,
		strconv.FormatInt(r.latencyNs, 10),
		strconv.FormatUint(r.memMB, 10),
		strconv.FormatUint(r.objects, 10),
	})
}
