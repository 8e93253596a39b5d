package roster

import (
	"sync"
	"testing"
	"time"

	"planner/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoster_ApplyInvitations_TouchesOnlyDispatchedGuests(t *testing.T) {
	r := New()
	r.Replace([]entity.Guest{
		{ID: "a", Name: "Anna"},
		{ID: "b", Name: "Ben"},
		{ID: "c", Name: "Cleo"},
		{ID: "d", Name: "Dan"},
	})

	sentAt := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	missing := r.ApplyInvitations([]Dispatch{
		{GuestID: "a", SentAt: sentAt},
		{GuestID: "b", SentAt: sentAt},
		{GuestID: "c", SentAt: sentAt},
	})
	assert.Empty(t, missing)

	for _, id := range []string{"a", "b", "c"} {
		g, ok := r.Get(id)
		require.True(t, ok)
		assert.True(t, g.Invited, id)
		require.NotNil(t, g.InvitationSentAt)
		assert.Equal(t, sentAt, *g.InvitationSentAt)
	}

	d, ok := r.Get("d")
	require.True(t, ok)
	assert.False(t, d.Invited)
	assert.Nil(t, d.InvitationSentAt)
}

func TestRoster_ApplyInvitations_ReportsMissing(t *testing.T) {
	r := New()
	r.Replace([]entity.Guest{{ID: "a"}})

	missing := r.ApplyInvitations([]Dispatch{{GuestID: "a", Provisional: true}, {GuestID: "zz"}})

	assert.Equal(t, []string{"zz"}, missing)
	g, _ := r.Get("a")
	assert.True(t, g.Provisional)
}

func TestRoster_SnapshotIsACopy(t *testing.T) {
	r := New()
	r.Replace([]entity.Guest{{ID: "a", Name: "Anna"}})

	snap := r.Snapshot()
	snap[0].Name = "changed"

	g, _ := r.Get("a")
	assert.Equal(t, "Anna", g.Name)
}

func TestRoster_RemoveAndMerge(t *testing.T) {
	r := New()
	r.Replace([]entity.Guest{{ID: "a"}, {ID: "b"}, {ID: "c"}})

	assert.True(t, r.Remove("b"))
	assert.False(t, r.Remove("b"))

	r.Merge([]entity.Guest{{ID: "c", Name: "Cleo"}, {ID: "e", Name: "Eve"}})

	snap := r.Snapshot()
	require.Len(t, snap, 3)
	assert.Equal(t, "a", snap[0].ID)
	assert.Equal(t, "Cleo", snap[1].Name)
	assert.Equal(t, "e", snap[2].ID)

	g, ok := r.Get("c")
	require.True(t, ok)
	assert.Equal(t, "Cleo", g.Name)
}

func TestRoster_RemovedGuestStaysOutOfReloads(t *testing.T) {
	r := New()
	r.Replace([]entity.Guest{{ID: "a"}, {ID: "b"}, {ID: "c"}})
	require.True(t, r.Remove("b"))

	r.Replace([]entity.Guest{{ID: "a"}, {ID: "b", Name: "Back"}, {ID: "c"}})
	r.Merge([]entity.Guest{{ID: "b"}})

	assert.Equal(t, 2, r.Len())
	_, ok := r.Get("b")
	assert.False(t, ok)
}

func TestRoster_ConcurrentAccess(t *testing.T) {
	r := New()
	r.Replace([]entity.Guest{{ID: "a"}, {ID: "b"}})

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			r.ApplyInvitations([]Dispatch{{GuestID: "a", SentAt: time.Now()}})
		}()
		go func() {
			defer wg.Done()
			_ = r.Snapshot()
		}()
	}
	wg.Wait()

	g, _ := r.Get("a")
	assert.True(t, g.Invited)
	assert.Equal(t, 2, r.Len())
}
