package main

import (
	"math/rand"

	"github.com/go-faker/faker/v4"
)

type workload string

const (
	oltp  workload = "Workload_OLTP"  // 90% lookup / 10% insert
	olap  workload = "Workload_OLAP"  // 10% lookup / 90% insert
	churn workload = "Workload_Churn" // 50% insert / 50% delete
)

// valuePool hands out faker-generated payloads round-robin so value
// generation stays off the measured path.
type valuePool struct {
	vals [][]byte
	pos  int
}

func newValuePool(n int) *valuePool {
	p := &valuePool{vals: make([][]byte, n)}
	for i := range p.vals {
		p.vals[i] = []byte(faker.Word())
	}
	return p
}

func (p *valuePool) get() []byte {
	v := p.vals[p.pos%len(p.vals)]
	p.pos++
	return v
}

// executeWorkload runs a mixed distribution of ops against s.
func executeWorkload(s store, wl workload, ops int, vals *valuePool) {
	for i := 0; i < ops; i++ {
		choice := rand.Intn(100)
		key := int64(rand.Intn(ops))

		switch wl {
		case oltp:
			if choice < 90 {
				s.Get(key)
			} else {
				s.Insert(key, vals.get())
			}
		case olap:
			if choice < 10 {
				s.Get(key)
			} else {
				s.Insert(key, vals.get())
			}
		case churn:
			if choice < 50 {
				s.Insert(key, vals.get())
			} else {
				s.Delete(key)
			}
		}
	}
}
