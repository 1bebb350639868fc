// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool runs block-row loops over an image plane on a fixed
// set of goroutines.
//
// A plane of height h has h/8 block rows, and the rows are independent: each
// one touches only its own 8 scanlines. A Pool hands rows to its workers
// either as contiguous spans (ForSpans, for uniform per-row cost) or one row
// at a time from a shared counter (ForEachRow, when rows vary in cost).
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	for _, plane := range planes {
//	    pool.ForSpans(plane.height/8, func(start, end int) {
//	        for by := start; by < end; by++ {
//	            transposeBlockRow(plane, by)
//	        }
//	    })
//	}
//
// A nil or closed *Pool runs everything on the calling goroutine. A panic in
// a row function is re-raised on the goroutine that called ForSpans or
// ForEachRow once every worker has finished its share.
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool owns a fixed set of worker goroutines, spawned by New and stopped by
// Close.
type Pool struct {
	workers int
	tasks   chan task
	stop    sync.Once
	closed  atomic.Bool
}

// task is one worker's share of a call. With span set it covers block rows
// [start, end); otherwise it claims rows from next until end is reached.
type task struct {
	span       func(start, end int)
	row        func(by int)
	start, end int
	next       *atomic.Int64
	call       *call
}

// call tracks the tasks of one ForSpans or ForEachRow invocation.
type call struct {
	wg       sync.WaitGroup
	panicked atomic.Pointer[rowPanic]
}

type rowPanic struct{ value any }

func (t task) run() {
	defer t.call.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			t.call.panicked.CompareAndSwap(nil, &rowPanic{r})
		}
	}()
	if t.span != nil {
		t.span(t.start, t.end)
		return
	}
	for {
		by := int(t.next.Add(1)) - 1
		if by >= t.end {
			return
		}
		t.row(by)
	}
}

// wait blocks until all tasks are done and re-raises the first panic.
func (c *call) wait() {
	c.wg.Wait()
	if p := c.panicked.Load(); p != nil {
		panic(p.value)
	}
}

// New starts a pool of n workers, or GOMAXPROCS workers if n <= 0.
func New(n int) *Pool {
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		workers: n,
		tasks:   make(chan task, n),
	}
	for range n {
		go func() {
			for t := range p.tasks {
				t.run()
			}
		}()
	}
	return p
}

// NumWorkers returns the number of workers, or 1 for a nil pool.
func (p *Pool) NumWorkers() int {
	if p == nil {
		return 1
	}
	return p.workers
}

// Close stops the workers after queued tasks finish. It is safe to call
// more than once and on a nil pool. Later calls on a closed pool run on the
// calling goroutine.
func (p *Pool) Close() {
	if p == nil {
		return
	}
	p.stop.Do(func() {
		p.closed.Store(true)
		close(p.tasks)
	})
}

// share returns how many workers a loop over rows block rows should use; 1
// means run inline.
func (p *Pool) share(rows int) int {
	if p == nil || p.closed.Load() {
		return 1
	}
	return min(p.workers, rows)
}

// rowSpan splits rows block rows into k contiguous spans whose lengths
// differ by at most one, and returns the bounds of span i.
func rowSpan(rows, k, i int) (start, end int) {
	base, extra := rows/k, rows%k
	start = i*base + min(i, extra)
	end = start + base
	if i < extra {
		end++
	}
	return start, end
}

// ForSpans calls fn with disjoint spans [start, end) that together cover
// block rows [0, rows), one span per worker, and returns when all spans are
// done.
func (p *Pool) ForSpans(rows int, fn func(start, end int)) {
	if rows <= 0 {
		return
	}
	k := p.share(rows)
	if k == 1 {
		fn(0, rows)
		return
	}

	c := new(call)
	c.wg.Add(k)
	for i := range k {
		start, end := rowSpan(rows, k, i)
		p.tasks <- task{span: fn, start: start, end: end, call: c}
	}
	c.wait()
}

// ForEachRow calls fn once for every block row in [0, rows). Workers claim
// rows one at a time, so a slow row does not hold up a whole span. It
// returns when every row is done.
func (p *Pool) ForEachRow(rows int, fn func(by int)) {
	if rows <= 0 {
		return
	}
	k := p.share(rows)
	if k == 1 {
		for by := range rows {
			fn(by)
		}
		return
	}

	c := new(call)
	var next atomic.Int64
	c.wg.Add(k)
	for range k {
		p.tasks <- task{row: fn, end: rows, next: &next, call: c}
	}
	c.wait()
}
