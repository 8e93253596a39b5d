package main

import (
	"bytes"
	"context"
	"net/http"
	"testing"
	"time"

	"planner/internal/domain/entity"
	domainerrors "planner/internal/domain/errors"
	"planner/internal/domain/view"
	"planner/internal/errors"
	mockusecase "planner/internal/mocks/usecase"
	"planner/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type cliFixture struct {
	cli           *cli
	out           *bytes.Buffer
	auth          *mockusecase.MockAuthUsecase
	guests        *mockusecase.MockGuestUsecase
	wedding       *mockusecase.MockWeddingUsecase
	schedule      *mockusecase.MockScheduleUsecase
	gifts         *mockusecase.MockGiftUsecase
	gallery       *mockusecase.MockGalleryUsecase
	notifications *mockusecase.MockNotificationUsecase
	rsvp          *mockusecase.MockRSVPUsecase
}

func newCLIFixture(t *testing.T) *cliFixture {
	t.Helper()

	f := &cliFixture{
		out:           &bytes.Buffer{},
		auth:          mockusecase.NewMockAuthUsecase(t),
		guests:        mockusecase.NewMockGuestUsecase(t),
		wedding:       mockusecase.NewMockWeddingUsecase(t),
		schedule:      mockusecase.NewMockScheduleUsecase(t),
		gifts:         mockusecase.NewMockGiftUsecase(t),
		gallery:       mockusecase.NewMockGalleryUsecase(t),
		notifications: mockusecase.NewMockNotificationUsecase(t),
		rsvp:          mockusecase.NewMockRSVPUsecase(t),
	}
	f.cli = &cli{
		deps: cliDeps{
			Auth:          f.auth,
			Guests:        f.guests,
			Wedding:       f.wedding,
			Schedule:      f.schedule,
			Gifts:         f.gifts,
			Gallery:       f.gallery,
			Notifications: f.notifications,
			RSVP:          f.rsvp,
		},
		out:          f.out,
		now:          func() time.Time { return time.Date(2027, 6, 2, 12, 0, 0, 0, time.UTC) },
		readPassword: func() (string, error) { return "prompted", nil },
	}

	return f
}

func TestDescribeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "unauthorized",
			err:  errors.WithStack(domainerrors.NewUnauthorizedError("", "/auth/sign-in")),
			want: "session expired, run `plannerctl login`",
		},
		{
			name: "validation lists fields",
			err: domainerrors.NewValidationError(
				domainerrors.FieldError{Field: "time", Message: "must be a time in HH:MM format"},
			),
			want: "Error: Input validation failed\n  time must be a time in HH:MM format",
		},
		{
			name: "http error",
			err:  domainerrors.NewHTTPError(http.StatusConflict, "Guest already exists", nil),
			want: "Error: Guest already exists",
		},
		{
			name: "app error with details",
			err:  domainerrors.ErrNotFound.WithDetails("RSVP link is invalid or expired"),
			want: "Error: Resource not found (RSVP link is invalid or expired)",
		},
		{
			name: "plain error",
			err:  errors.New("boom"),
			want: "Error: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, describeError(tt.err))
		})
	}
}

func TestSplitAction(t *testing.T) {
	action, rest := splitAction([]string{"add", "-time", "10:00"}, "list")
	assert.Equal(t, "add", action)
	assert.Equal(t, []string{"-time", "10:00"}, rest)

	action, rest = splitAction([]string{"-unread"}, "")
	assert.Equal(t, "", action)
	assert.Equal(t, []string{"-unread"}, rest)

	action, rest = splitAction(nil, "list")
	assert.Equal(t, "list", action)
	assert.Empty(t, rest)
}

func TestCLI_UnknownCommand(t *testing.T) {
	f := newCLIFixture(t)

	err := f.cli.dispatch(context.Background(), "dance", nil)
	assert.Error(t, err)
	assert.False(t, isCommand("dance"))
	assert.True(t, isCommand("countdown"))
}

func TestCLI_LoginPromptsForPassword(t *testing.T) {
	f := newCLIFixture(t)
	f.auth.On("Login", mock.Anything, entity.Credentials{Login: "ana", Password: "prompted"}).
		Return(&usecase.LoginOutput{User: &entity.User{Name: "Ana", Email: "ana@example.com"}, Redirect: "/dashboard"}, nil)

	require.NoError(t, f.cli.dispatch(context.Background(), "login", []string{"-login", "ana"}))
	assert.Equal(t, "Signed in as Ana <ana@example.com>\n", f.out.String())
}

func TestCLI_WhoamiWithoutSession(t *testing.T) {
	f := newCLIFixture(t)
	f.auth.On("LoadSession", mock.Anything).Return(&usecase.SessionState{
		Reason:   usecase.ReasonNoToken,
		Redirect: "/auth/sign-in",
	}, nil)

	err := f.cli.dispatch(context.Background(), "whoami", nil)
	require.Error(t, err)
	assert.True(t, domainerrors.IsUnauthorized(err))
}

func TestCLI_GuestsPassesFilter(t *testing.T) {
	f := newCLIFixture(t)
	want := view.GuestFilter{Search: "ana", Status: view.StatusAccepted, Sent: view.SentYes}
	f.guests.On("ListGuests", mock.Anything, want).Return(&view.GuestView{
		Guests: []entity.Guest{{ID: "g1", Name: "Ana", Invited: true, RSVPStatus: entity.RSVPAccepted, TelegramUsername: "ana_tg"}},
		Stats:  view.GuestStats{Total: 3, Accepted: 1, ExpectedAttendees: 1},
	}, nil)

	err := f.cli.dispatch(context.Background(), "guests", []string{"-search", "ana", "-status", "accepted", "-sent", "sent"})
	require.NoError(t, err)
	assert.Contains(t, f.out.String(), "@ana_tg")
	assert.Contains(t, f.out.String(), "3 guests, 1 accepted")
}

func TestCLI_InviteReportsFailures(t *testing.T) {
	f := newCLIFixture(t)
	f.guests.On("SendInvitations", mock.Anything, []string{"g1", "g2"}).Return(&usecase.BulkSendReport{
		Requested: 2,
		Sent:      []string{"g1"},
		Failed:    []usecase.SendFailure{{GuestID: "g2", Reason: "no contact"}},
	}, nil)

	require.NoError(t, f.cli.dispatch(context.Background(), "invite", []string{"g1", "g2"}))
	assert.Contains(t, f.out.String(), "Sent 1 of 2 invitations")
	assert.Contains(t, f.out.String(), "g2: no contact")
}

func TestCLI_Schedule(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		setup   func(f *cliFixture)
		want    string
		wantErr bool
	}{
		{
			name: "add",
			args: []string{"add", "-time", "15:00", "-event", "Ceremony"},
			setup: func(f *cliFixture) {
				f.schedule.On("AddEvent", mock.Anything, entity.ScheduleEvent{Time: "15:00", Event: "Ceremony"}).
					Return(&entity.ScheduleEvent{ID: "e1", Time: "15:00", Event: "Ceremony"}, nil)
			},
			want: "Added 15:00 Ceremony (e1)\n",
		},
		{
			name: "status",
			args: []string{"status", "e1", "confirmed"},
			setup: func(f *cliFixture) {
				f.schedule.On("SetEventStatus", mock.Anything, "e1", entity.EventConfirmed).
					Return(&entity.ScheduleEvent{ID: "e1", Event: "Ceremony", Status: entity.EventConfirmed}, nil)
			},
			want: "Ceremony is now confirmed\n",
		},
		{
			name:    "move needs a number",
			args:    []string{"move", "e1", "first"},
			setup:   func(*cliFixture) {},
			wantErr: true,
		},
		{
			name:    "rm needs an id",
			args:    []string{"rm"},
			setup:   func(*cliFixture) {},
			wantErr: true,
		},
		{
			name:    "unknown action",
			args:    []string{"shuffle"},
			setup:   func(*cliFixture) {},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCLIFixture(t)
			tt.setup(f)

			err := f.cli.dispatch(context.Background(), "schedule", tt.args)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, f.out.String())
		})
	}
}

func TestCLI_NotificationsUnreadFilter(t *testing.T) {
	f := newCLIFixture(t)
	f.notifications.On("ListNotifications", mock.Anything, view.NotificationFilter{Read: view.ReadUnread}).
		Return(&view.NotificationView{
			Notifications: []entity.Notification{{
				ID:        "n1",
				Type:      entity.NotificationRSVP,
				Title:     "Ana replied",
				CreatedAt: time.Date(2027, 6, 2, 11, 30, 0, 0, time.UTC),
			}},
			Unread: 4,
		}, nil)

	require.NoError(t, f.cli.dispatch(context.Background(), "notifications", []string{"-unread"}))
	assert.Contains(t, f.out.String(), "Ana replied")
	assert.Contains(t, f.out.String(), "30m0s ago")
	assert.Contains(t, f.out.String(), "4 unread")
}

func TestCLI_GalleryUpload(t *testing.T) {
	f := newCLIFixture(t)
	f.gallery.On("UploadFromBucket", mock.Anything, "file:///photos", "day1/").
		Return([]string{"https://cdn/1.jpg", "https://cdn/2.jpg"}, nil)

	require.NoError(t, f.cli.dispatch(context.Background(), "gallery", []string{"upload", "file:///photos", "day1/"}))
	assert.Equal(t, "Uploaded 2 images\n", f.out.String())
}

func TestCLI_RSVPSubmit(t *testing.T) {
	f := newCLIFixture(t)
	f.rsvp.On("Submit", mock.Anything, "tok", &entity.RSVPSubmission{Status: entity.RSVPAccepted, GuestCount: 2, PlusOne: true}).
		Return(&entity.RSVPInvitation{
			GuestName:    "Ana",
			WeddingTitle: "Ana & Ben",
			WeddingDate:  time.Date(2027, 6, 12, 0, 0, 0, 0, time.UTC),
			Venue:        "Old Mill",
			RSVPStatus:   entity.RSVPAccepted,
		}, nil)

	err := f.cli.dispatch(context.Background(), "rsvp", []string{"tok", "-status", "accepted", "-plus-one", "-guests", "2"})
	require.NoError(t, err)
	assert.Contains(t, f.out.String(), "Saturday, June 12, 2027 at Old Mill")
	assert.Contains(t, f.out.String(), "Reply: accepted")
}

func TestCLI_Countdown(t *testing.T) {
	tests := []struct {
		days int
		want string
	}{
		{days: 10, want: "10 days until Ana & Ben\n"},
		{days: 1, want: "1 day until Ana & Ben\n"},
		{days: 0, want: "Ana & Ben is today\n"},
		{days: -3, want: "Ana & Ben was 3 days ago\n"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			f := newCLIFixture(t)
			f.wedding.On("Countdown", mock.Anything, f.cli.now()).
				Return(&usecase.Countdown{Title: "Ana & Ben", Days: tt.days}, nil)

			require.NoError(t, f.cli.dispatch(context.Background(), "countdown", nil))
			assert.Equal(t, tt.want, f.out.String())
		})
	}
}
