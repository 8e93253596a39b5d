package impl

import (
	"context"
	"testing"
	"time"

	"planner/internal/domain/entity"
	domainerrors "planner/internal/domain/errors"
	"planner/internal/domain/view"
	mockRepo "planner/internal/mocks/repository"
	mockService "planner/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestGuestService(t *testing.T) (*guestService, *mockRepo.MockGuestRepository, *mockService.MockQRCodeService) {
	t.Helper()

	repo := mockRepo.NewMockGuestRepository(t)
	qr := mockService.NewMockQRCodeService(t)
	svc := NewGuestService(repo, qr, newTestLogger()).(*guestService)

	return svc, repo, qr
}

func fourGuests() []entity.Guest {
	return []entity.Guest{
		{ID: "g1", Name: "John Doe", RSVPStatus: entity.RSVPAccepted},
		{ID: "g2", Name: "Jane Roe"},
		{ID: "g3", Name: "Max Moe", RSVPStatus: entity.RSVPDeclined},
		{ID: "g4", Name: "Untouched Guest"},
	}
}

func TestGuestService_ListGuests(t *testing.T) {
	svc, repo, _ := newTestGuestService(t)
	ctx := context.Background()
	repo.On("ListAll", ctx).Return(fourGuests(), nil).Once()

	out, err := svc.ListGuests(ctx, view.GuestFilter{Search: "JOHN"})

	require.NoError(t, err)
	require.Len(t, out.Guests, 1)
	assert.Equal(t, "g1", out.Guests[0].ID)
	assert.Equal(t, 4, out.Stats.Total)
	assert.Equal(t, 4, svc.roster.Len())
}

func TestGuestService_ListGuests_InvalidFilter(t *testing.T) {
	svc, _, _ := newTestGuestService(t)

	_, err := svc.ListGuests(context.Background(), view.GuestFilter{Status: "bogus"})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidStatus)
}

func TestGuestService_SendInvitations_AggregateMarksProvisional(t *testing.T) {
	svc, repo, _ := newTestGuestService(t)
	ctx := context.Background()
	stamp := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return stamp }
	svc.roster.Replace(fourGuests())

	ids := []string{"g1", "g2", "g3"}
	repo.On("SendInvitations", ctx, ids).Return(&entity.InvitationBatchResult{Sent: 3}, nil).Once()

	report, err := svc.SendInvitations(ctx, ids)

	require.NoError(t, err)
	assert.True(t, report.Provisional)
	assert.Equal(t, 3, report.Requested)
	assert.Equal(t, ids, report.Sent)
	assert.Empty(t, report.Failed)

	for _, g := range svc.roster.Snapshot() {
		if g.ID == "g4" {
			assert.False(t, g.Invited)
			assert.Nil(t, g.InvitationSentAt)
			assert.False(t, g.Provisional)

			continue
		}
		assert.True(t, g.Invited, g.ID)
		assert.True(t, g.Provisional, g.ID)
		require.NotNil(t, g.InvitationSentAt)
		assert.Equal(t, stamp, *g.InvitationSentAt)
	}
}

func TestGuestService_SendInvitations_PerGuestOutcomes(t *testing.T) {
	svc, repo, _ := newTestGuestService(t)
	ctx := context.Background()
	svc.roster.Replace(fourGuests())
	serverTime := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

	repo.On("SendInvitations", ctx, []string{"g1", "g2", "g3"}).Return(&entity.InvitationBatchResult{
		Sent:   1,
		Failed: 1,
		Results: []entity.InvitationOutcome{
			{GuestID: "g1", Success: true, InvitationSentAt: &serverTime},
			{GuestID: "g2", Success: false, Error: "chat not found"},
		},
	}, nil).Once()

	report, err := svc.SendInvitations(ctx, []string{"g1", "g2", "g3", "g1", " "})

	require.NoError(t, err)
	assert.False(t, report.Provisional)
	assert.Equal(t, []string{"g1"}, report.Sent)
	require.Len(t, report.Failed, 2)
	assert.Equal(t, "chat not found", report.Failed[0].Reason)
	assert.Equal(t, "g3", report.Failed[1].GuestID)

	g1, _ := svc.roster.Get("g1")
	assert.True(t, g1.Invited)
	assert.False(t, g1.Provisional)
	assert.Equal(t, serverTime, *g1.InvitationSentAt)

	for _, id := range []string{"g2", "g3", "g4"} {
		g, _ := svc.roster.Get(id)
		assert.False(t, g.Invited, id)
	}
}

func TestGuestService_SendInvitations_EmptySelection(t *testing.T) {
	svc, _, _ := newTestGuestService(t)

	_, err := svc.SendInvitations(context.Background(), nil)

	assert.ErrorIs(t, err, domainerrors.ErrNoGuestsSelected)
}

func TestGuestService_SendInvitations_ErrorLeavesRosterUntouched(t *testing.T) {
	svc, repo, _ := newTestGuestService(t)
	svc.roster.Replace(fourGuests())
	repo.On("SendInvitations", mock.Anything, mock.Anything).Return(nil, domainerrors.NewNetworkError(assert.AnError)).Once()

	_, err := svc.SendInvitations(context.Background(), []string{"g1"})

	require.Error(t, err)
	for _, g := range svc.roster.Snapshot() {
		assert.False(t, g.Invited)
	}
}

func TestGuestService_AddGuests(t *testing.T) {
	svc, repo, _ := newTestGuestService(t)
	ctx := context.Background()

	expected := []entity.NewGuest{{Name: "Ana", Email: "ana@example.com", TelegramUsername: "ana_planner"}}
	created := []entity.Guest{{ID: "g9", Name: "Ana"}}
	repo.On("Create", ctx, expected).Return(created, nil).Once()

	out, err := svc.AddGuests(ctx, []entity.NewGuest{{Name: " Ana ", Email: "ana@example.com", TelegramUsername: "@ana_planner"}})

	require.NoError(t, err)
	assert.Equal(t, created, out)
	_, ok := svc.roster.Get("g9")
	assert.True(t, ok)
}

func TestGuestService_AddGuests_ValidationIndexesFields(t *testing.T) {
	svc, _, _ := newTestGuestService(t)

	_, err := svc.AddGuests(context.Background(), []entity.NewGuest{
		{Name: "Fine"},
		{Name: "", Email: "invalid-email", Phone: "123"},
	})

	apiErr, ok := domainerrors.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, domainerrors.KindValidation, apiErr.Kind)
	require.Len(t, apiErr.Errors, 3)
	for _, fe := range apiErr.Errors {
		assert.Contains(t, fe.Field, "guests[1].")
	}
}

func TestGuestService_RemoveGuest_StaysRemovedAfterReload(t *testing.T) {
	svc, repo, _ := newTestGuestService(t)
	ctx := context.Background()
	repo.On("ListAll", ctx).Return(fourGuests(), nil).Twice()

	_, err := svc.ListGuests(ctx, view.GuestFilter{})
	require.NoError(t, err)

	require.NoError(t, svc.RemoveGuest(ctx, "g2"))

	out, err := svc.ListGuests(ctx, view.GuestFilter{})
	require.NoError(t, err)
	ids := make([]string, 0, len(out.Guests))
	for _, g := range out.Guests {
		ids = append(ids, g.ID)
	}
	assert.Equal(t, []string{"g1", "g3", "g4"}, ids)
	assert.Equal(t, 3, out.Stats.Total)
}

func TestGuestService_RemoveGuest_UnknownGuest(t *testing.T) {
	svc, repo, _ := newTestGuestService(t)
	ctx := context.Background()
	repo.On("ListAll", ctx).Return(fourGuests(), nil).Once()

	err := svc.RemoveGuest(ctx, "g9")

	assert.ErrorIs(t, err, domainerrors.ErrGuestNotFound)
	assert.Equal(t, 4, svc.roster.Len())
}

func TestGuestService_InvitationQR(t *testing.T) {
	svc, repo, qr := newTestGuestService(t)
	ctx := context.Background()
	guests := fourGuests()
	guests[0].RSVPToken = "rsvp-g1"

	repo.On("ListAll", ctx).Return(guests, nil).Once()
	qr.On("GenerateRSVPQR", "rsvp-g1").Return([]byte{0x89, 'P', 'N', 'G'}, nil).Once()

	png, err := svc.InvitationQR(ctx, "g1")
	require.NoError(t, err)
	assert.NotEmpty(t, png)

	_, err = svc.InvitationQR(ctx, "g2")
	assert.ErrorIs(t, err, domainerrors.ErrRSVPTokenMissing)
}

func TestGuestService_InvitationQR_Unknown(t *testing.T) {
	svc, repo, _ := newTestGuestService(t)
	repo.On("ListAll", mock.Anything).Return(fourGuests(), nil).Once()

	_, err := svc.InvitationQR(context.Background(), "nope")

	assert.ErrorIs(t, err, domainerrors.ErrGuestNotFound)
}
