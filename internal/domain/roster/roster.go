// Package roster keeps the local copy of the guest list that a page or a
// CLI session works against between remote reads.
package roster

import (
	"slices"
	"sync"
	"time"

	"planner/internal/domain/entity"
)

// Roster is an ordered, concurrency-safe guest collection. Guests removed
// locally stay hidden from every later Replace or Merge.
type Roster struct {
	mu     sync.RWMutex
	guests []entity.Guest
	index  map[string]int
	hidden map[string]struct{}
}

// New returns an empty roster.
func New() *Roster {
	return &Roster{index: map[string]int{}, hidden: map[string]struct{}{}}
}

// Replace swaps the whole collection for guests, keeping their order.
func (r *Roster) Replace(guests []entity.Guest) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.guests = slices.DeleteFunc(slices.Clone(guests), r.isHidden)
	r.reindex()
}

// Merge appends guests not yet present and overwrites the ones that are.
func (r *Roster) Merge(guests []entity.Guest) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, g := range guests {
		if r.isHidden(g) {
			continue
		}
		if i, ok := r.index[g.ID]; ok {
			r.guests[i] = g

			continue
		}
		r.index[g.ID] = len(r.guests)
		r.guests = append(r.guests, g)
	}
}

// Snapshot returns a copy of the collection.
func (r *Roster) Snapshot() []entity.Guest {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.guests)
}

// Len returns the number of guests held.
func (r *Roster) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.guests)
}

// Get returns the guest with id.
func (r *Roster) Get(id string) (entity.Guest, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id]
	if !ok {
		return entity.Guest{}, false
	}

	return r.guests[i], true
}

// Remove drops the guest with id from the local copy only and keeps it out of
// later reloads. It reports whether the guest was held.
func (r *Roster) Remove(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[id]
	if !ok {
		return false
	}
	r.hidden[id] = struct{}{}
	r.guests = slices.Delete(r.guests, i, i+1)
	r.reindex()

	return true
}

// Dispatch is the local effect of one guest's invitation send.
type Dispatch struct {
	GuestID     string
	SentAt      time.Time
	Provisional bool
}

// ApplyInvitations marks exactly the dispatched guests as invited. Guests
// missing from the roster are skipped and their ids returned.
func (r *Roster) ApplyInvitations(dispatches []Dispatch) (missing []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, d := range dispatches {
		i, ok := r.index[d.GuestID]
		if !ok {
			missing = append(missing, d.GuestID)

			continue
		}
		sentAt := d.SentAt
		g := &r.guests[i]
		g.Invited = true
		g.InvitationSentAt = &sentAt
		g.Provisional = d.Provisional
	}

	return missing
}

func (r *Roster) isHidden(g entity.Guest) bool {
	_, ok := r.hidden[g.ID]

	return ok
}

func (r *Roster) reindex() {
	r.index = make(map[string]int, len(r.guests))
	for i, g := range r.guests {
		r.index[g.ID] = i
	}
}
