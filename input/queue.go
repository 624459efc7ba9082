// Copyright 2024 The gamewindow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// based on https://github.com/fyne-io/fyne/blob/master/internal/async/queue_canvasobject.go

package input

import (
	"sync"
	"sync/atomic"
)

// Queue is a lock-free FIFO freelist-based event queue.
// It must be initialized using [Queue.Init] before use.
type Queue struct {
	head atomic.Pointer[node]
	tail atomic.Pointer[node]
	len  atomic.Uint64
}

// Init initializes the queue.
func (q *Queue) Init() {
	head := &node{}
	q.head.Store(head)
	q.tail.Store(head)
}

type node struct {
	next atomic.Pointer[node]
	v    Event
}

var nodePool = sync.Pool{
	New: func() any { return &node{} },
}

// Next removes and returns the next event in the queue.
// It returns nil if the queue is empty.
func (q *Queue) Next() Event {
	var first, last, firstnext *node
	for {
		first = q.head.Load()
		last = q.tail.Load()
		firstnext = first.next.Load()
		if first == q.head.Load() {
			if first == last {
				if firstnext == nil {
					return nil
				}

				q.tail.CompareAndSwap(last, firstnext)
			} else {
				v := firstnext.v
				if q.head.CompareAndSwap(first, firstnext) {
					q.len.Add(^uint64(0))
					nodePool.Put(first)
					return v
				}
			}
		}
	}
}

// Push adds an event to the end of the queue.
func (q *Queue) Push(ev Event) {
	i := nodePool.Get().(*node)
	i.next.Store(nil)
	i.v = ev

	var last, lastnext *node
	for {
		last = q.tail.Load()
		lastnext = last.next.Load()
		if q.tail.Load() == last {
			if lastnext == nil {
				if last.next.CompareAndSwap(lastnext, i) {
					q.tail.CompareAndSwap(last, i)
					q.len.Add(1)
					return
				}
			} else {
				q.tail.CompareAndSwap(last, lastnext)
			}
		}
	}
}

// Len returns the length of the queue.
func (q *Queue) Len() uint64 {
	return q.len.Load()
}
