// Package schedule models the wedding-day timeline as an ordered map keyed
// by a stable event id, so edits and reorders never shift another event's
// identity.
package schedule

import (
	"slices"

	"planner/internal/domain/entity"

	"github.com/elliotchance/orderedmap/v3"
	"github.com/google/uuid"
)

// List is an ordered set of schedule events. It is not safe for concurrent use.
type List struct {
	events *orderedmap.OrderedMap[string, entity.ScheduleEvent]
}

// NewList builds a list from events in their given order. Events without an
// id get a generated one; a duplicate id gets a fresh one too.
func NewList(events []entity.ScheduleEvent) *List {
	l := &List{events: orderedmap.NewOrderedMapWithCapacity[string, entity.ScheduleEvent](len(events))}
	for _, e := range events {
		l.Add(e)
	}

	return l
}

// Add appends e and returns its id.
func (l *List) Add(e entity.ScheduleEvent) string {
	if e.ID == "" || l.events.Has(e.ID) {
		e.ID = uuid.NewString()
	}
	if e.Status == "" {
		e.Status = entity.EventPending
	}
	l.events.Set(e.ID, e)

	return e.ID
}

// Get returns the event with id.
func (l *List) Get(id string) (entity.ScheduleEvent, bool) {
	return l.events.Get(id)
}

// Update replaces the event with id in place. The id of e is ignored.
func (l *List) Update(id string, e entity.ScheduleEvent) bool {
	if !l.events.Has(id) {
		return false
	}
	e.ID = id
	if e.Status == "" {
		e.Status = entity.EventPending
	}
	l.events.Set(id, e)

	return true
}

// Remove deletes the event with id.
func (l *List) Remove(id string) bool {
	return l.events.Delete(id)
}

// SetStatus sets the status of the event with id. Any valid status is
// accepted regardless of the current one.
func (l *List) SetStatus(id string, status entity.EventStatus) bool {
	e, ok := l.events.Get(id)
	if !ok || !status.IsValid() {
		return false
	}
	e.Status = status
	l.events.Set(id, e)

	return true
}

// Move puts the event with id at position index, clamped to the list bounds.
func (l *List) Move(id string, index int) bool {
	e, ok := l.events.Get(id)
	if !ok {
		return false
	}

	keys := slices.Collect(l.events.Keys())
	from := slices.Index(keys, id)
	keys = slices.Delete(keys, from, from+1)
	index = min(max(index, 0), len(keys))
	keys = slices.Insert(keys, index, id)

	rebuilt := orderedmap.NewOrderedMapWithCapacity[string, entity.ScheduleEvent](len(keys))
	for _, k := range keys {
		if k == id {
			rebuilt.Set(k, e)

			continue
		}
		v, _ := l.events.Get(k)
		rebuilt.Set(k, v)
	}
	l.events = rebuilt

	return true
}

// Events returns the events in order.
func (l *List) Events() []entity.ScheduleEvent {
	return slices.Collect(l.events.Values())
}

// Len returns the number of events.
func (l *List) Len() int {
	return l.events.Len()
}
