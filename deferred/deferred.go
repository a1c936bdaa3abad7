// This file is part of Shmem800.
//
// Shmem800 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Shmem800 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Shmem800.  If not, see <https://www.gnu.org/licenses/>.

package deferred

import (
	"container/list"
	"fmt"
	"strings"
	"sync"
)

// Event is a single callback waiting to be triggered.
type Event struct {
	queue *Queue

	// short description of the event
	label string

	// the frame on which the event is triggered
	trigger uint64

	payload func()

	// the element of the queue's list holding the event. nil once the event
	// has been triggered or dropped
	elem *list.Element
}

func (ev *Event) String() string {
	label := strings.TrimSpace(ev.label)
	if label == "" {
		label = "[unlabelled event]"
	}
	return fmt.Sprintf("%s -> frame %d", label, ev.trigger)
}

// Trigger returns the frame on which the event will be triggered.
func (ev *Event) Trigger() uint64 {
	return ev.trigger
}

// Drop removes the event from the queue without running the callback.
// Returns false if the event has already been triggered or dropped.
func (ev *Event) Drop() bool {
	q := ev.queue
	q.crit.Lock()
	defer q.crit.Unlock()

	if ev.elem == nil {
		return false
	}
	q.events.Remove(ev.elem)
	ev.elem = nil
	return true
}

// Queue of Events ordered by time of scheduling. It is safe to use a Queue
// from more than one goroutine.
type Queue struct {
	crit   sync.Mutex
	events list.List

	// the frame count given to the most recent call to Advance()
	frame uint64
}

// NewQueue is the preferred method of initialisation for the Queue type.
func NewQueue() *Queue {
	return &Queue{}
}

// Schedule a callback to be run delay frames after the current frame. A
// delay of zero means the event will be triggered on the next call to
// Advance().
func (q *Queue) Schedule(delay uint64, label string, payload func()) *Event {
	q.crit.Lock()
	defer q.crit.Unlock()

	ev := &Event{
		queue:   q,
		label:   label,
		trigger: q.frame + delay,
		payload: payload,
	}
	ev.elem = q.events.PushBack(ev)

	return ev
}

// Advance triggers every event whose trigger frame is less than or equal to
// frame and removes them from the queue. The remaining events keep their
// relative order. Returns the number of events triggered.
//
// Callbacks are run after the queue has been updated and may themselves
// call Schedule().
func (q *Queue) Advance(frame uint64) int {
	q.crit.Lock()

	q.frame = frame

	var due []*Event

	e := q.events.Front()
	for e != nil {
		n := e.Next()
		ev := e.Value.(*Event)
		if ev.trigger <= frame {
			q.events.Remove(e)
			ev.elem = nil
			due = append(due, ev)
		}
		e = n
	}

	q.crit.Unlock()

	for _, ev := range due {
		if ev.payload != nil {
			ev.payload()
		}
	}

	return len(due)
}

// Frame returns the frame count given to the most recent call to Advance().
func (q *Queue) Frame() uint64 {
	q.crit.Lock()
	defer q.crit.Unlock()
	return q.frame
}

// Len returns the number of events waiting to be triggered.
func (q *Queue) Len() int {
	q.crit.Lock()
	defer q.crit.Unlock()
	return q.events.Len()
}

// Clear removes all events without running them.
func (q *Queue) Clear() {
	q.crit.Lock()
	defer q.crit.Unlock()
	for e := q.events.Front(); e != nil; e = e.Next() {
		e.Value.(*Event).elem = nil
	}
	q.events.Init()
}

func (q *Queue) String() string {
	q.crit.Lock()
	defer q.crit.Unlock()

	s := strings.Builder{}
	for e := q.events.Front(); e != nil; e = e.Next() {
		s.WriteString(e.Value.(*Event).String())
		s.WriteString("\n")
	}
	return s.String()
}
