// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"sync"
	"sync/atomic"
)

// Queue is a lock-free FIFO freelist-based event queue.
// A host goroutine may [Queue.Send] events while the UI
// goroutine drains them with [Queue.NextEvent].
// It must be initialized using [Queue.Init] before use.
type Queue struct {
	head atomic.Pointer[queueEvent]
	tail atomic.Pointer[queueEvent]
	len  atomic.Uint64
}

// Init initializes the queue.
func (q *Queue) Init() {
	head := &queueEvent{}
	q.head.Store(head)
	q.tail.Store(head)
}

type queueEvent struct {
	next atomic.Pointer[queueEvent]
	v    Event
}

var queueEventPool = sync.Pool{
	New: func() any { return &queueEvent{} },
}

// NextEvent removes and returns the next event in the queue.
// It returns nil if the queue is empty.
func (q *Queue) NextEvent() Event {
	for {
		first := q.head.Load()
		last := q.tail.Load()
		firstnext := first.next.Load()
		if first != q.head.Load() {
			continue
		}
		if first == last {
			if firstnext == nil {
				return nil
			}
			q.tail.CompareAndSwap(last, firstnext)
			continue
		}
		v := firstnext.v
		if q.head.CompareAndSwap(first, firstnext) {
			q.len.Add(^uint64(0))
			first.v = nil
			queueEventPool.Put(first)
			return v
		}
	}
}

// Send adds an event to the end of the queue.
func (q *Queue) Send(ev Event) {
	i := queueEventPool.Get().(*queueEvent)
	i.next.Store(nil)
	i.v = ev

	for {
		last := q.tail.Load()
		lastnext := last.next.Load()
		if q.tail.Load() != last {
			continue
		}
		if lastnext != nil {
			q.tail.CompareAndSwap(last, lastnext)
			continue
		}
		if last.next.CompareAndSwap(nil, i) {
			q.tail.CompareAndSwap(last, i)
			q.len.Add(1)
			return
		}
	}
}

// Len returns the length of the queue.
func (q *Queue) Len() uint64 {
	return q.len.Load()
}
