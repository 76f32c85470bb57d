// Package eventlog records the ordered sequence of locations a player
// visits and the command chosen at each one, for auditing and for
// deterministic replay checks.
package eventlog

import "strings"

// Event is an immutable record of a location at the moment it became
// current. NextCommand is the command chosen leading away from it; it
// stays empty on the tail event.
type Event struct {
	ID          int
	Description string
	NextCommand string

	next *Event
}

// NewEvent creates an event for the given location id and description.
func NewEvent(id int, description string) *Event {
	return &Event{ID: id, Description: description}
}

// Next returns the event that followed this one, or nil at the tail.
func (e *Event) Next() *Event {
	return e.next
}

// List is an append-only singly linked sequence of events. Append is
// O(1) through the tail reference; the only other access pattern is a
// full forward traversal, so no indexing or removal is supported.
type List struct {
	first *Event
	last  *Event
	count int
}

// New returns an empty event list.
func New() *List {
	return &List{}
}

// AddEvent appends e at the tail. precedingCommand is the command that
// led to e; it is recorded on the previous tail as its outgoing
// command. The first event carries no preceding command.
func (l *List) AddEvent(e *Event, precedingCommand string) {
	if l.first == nil {
		l.first = e
		l.last = e
		l.count = 1
		return
	}
	l.last.NextCommand = precedingCommand
	l.last.next = e
	l.last = e
	l.count++
}

// First returns the head event, or nil if the list is empty.
func (l *List) First() *Event {
	return l.first
}

// Last returns the tail event, or nil if the list is empty.
func (l *List) Last() *Event {
	return l.last
}

// Len returns the number of recorded events.
func (l *List) Len() int {
	return l.count
}

// IDLog returns the location ids of all events in order, including
// repeats for locations visited more than once.
func (l *List) IDLog() []int {
	ids := make([]int, 0, l.count)
	for e := l.first; e != nil; e = e.next {
		ids = append(ids, e.ID)
	}
	return ids
}

// String renders each event's description and the command taken from
// it, in order, for human inspection.
func (l *List) String() string {
	var b strings.Builder
	for e := l.first; e != nil; e = e.next {
		b.WriteString(e.Description)
		b.WriteString("\n")
		if e != l.last {
			b.WriteString("You choose: " + e.NextCommand + "\n")
		}
	}
	return b.String()
}
