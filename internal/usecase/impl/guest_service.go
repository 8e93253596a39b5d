package impl

import (
	"context"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"time"

	deliverycontext "planner/internal/delivery/context"
	"planner/internal/domain/entity"
	domainerrors "planner/internal/domain/errors"
	"planner/internal/domain/repository"
	"planner/internal/domain/roster"
	"planner/internal/domain/service"
	"planner/internal/domain/validation"
	"planner/internal/domain/view"
	"planner/internal/errors"
	"planner/internal/usecase"
)

const reasonNotReported = "not reported by server"

type guestService struct {
	guestRepo repository.GuestRepository
	qrCode    service.QRCodeService
	roster    *roster.Roster
	logger    *slog.Logger
	now       func() time.Time
}

// NewGuestService is the constructor for guestService.
func NewGuestService(
	guestRepo repository.GuestRepository,
	qrCode service.QRCodeService,
	logger *slog.Logger,
) usecase.GuestUsecase {
	return &guestService{
		guestRepo: guestRepo,
		qrCode:    qrCode,
		roster:    roster.New(),
		logger:    logger,
		now:       time.Now,
	}
}

func (s *guestService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// ListGuests reloads the roster from the API and returns the filtered view.
func (s *guestService) ListGuests(ctx context.Context, filter view.GuestFilter) (*view.GuestView, error) {
	if !filter.Status.IsValid() || !filter.Sent.IsValid() {
		return nil, domainerrors.ErrInvalidStatus
	}

	if err := s.reload(ctx); err != nil {
		return nil, err
	}

	out := view.BuildGuestView(s.roster.Snapshot(), filter)

	return &out, nil
}

func (s *guestService) reload(ctx context.Context) error {
	guests, err := s.guestRepo.ListAll(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to list guests")
	}
	s.roster.Replace(guests)

	return nil
}

// AddGuests validates every guest before a single bulk create.
func (s *guestService) AddGuests(ctx context.Context, guests []entity.NewGuest) ([]entity.Guest, error) {
	if len(guests) == 0 {
		return nil, domainerrors.NewValidationError(domainerrors.FieldError{Field: "guests", Message: "is required"})
	}

	guests = slices.Clone(guests)
	var fields []domainerrors.FieldError
	for i := range guests {
		g := &guests[i]
		g.Name = strings.TrimSpace(g.Name)
		g.Email = strings.TrimSpace(g.Email)
		g.Phone = strings.TrimSpace(g.Phone)
		g.TelegramUsername = strings.TrimPrefix(strings.TrimSpace(g.TelegramUsername), "@")

		if err := validation.Struct(g); err != nil {
			apiErr, ok := domainerrors.AsAPIError(err)
			if !ok {
				return nil, err
			}
			for _, fe := range apiErr.Errors {
				fe.Field = "guests[" + strconv.Itoa(i) + "]." + fe.Field
				fields = append(fields, fe)
			}
		}
	}
	if len(fields) > 0 {
		return nil, domainerrors.NewValidationError(fields...)
	}

	created, err := s.guestRepo.Create(ctx, guests)
	if err != nil {
		return nil, errors.Wrap(err, "failed to add guests")
	}
	s.roster.Merge(created)
	s.log(ctx).Info("Guests added", slog.Int("count", len(created)))

	return created, nil
}

// SendInvitations sends every id in one call. Guests are only marked invited
// for ids the server confirmed; an aggregate-only answer marks all ids provisional.
func (s *guestService) SendInvitations(ctx context.Context, ids []string) (*usecase.BulkSendReport, error) {
	ids = dedupe(ids)
	if len(ids) == 0 {
		return nil, domainerrors.ErrNoGuestsSelected
	}

	result, err := s.guestRepo.SendInvitations(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to send invitations")
	}

	report := &usecase.BulkSendReport{
		Requested: len(ids),
		Sent:      []string{},
		Failed:    []usecase.SendFailure{},
	}
	now := s.now()
	var dispatches []roster.Dispatch

	if result == nil || len(result.Results) == 0 {
		report.Provisional = true
		for _, id := range ids {
			dispatches = append(dispatches, roster.Dispatch{GuestID: id, SentAt: now, Provisional: true})
			report.Sent = append(report.Sent, id)
		}
	} else {
		outcomes := make(map[string]entity.InvitationOutcome, len(result.Results))
		for _, o := range result.Results {
			outcomes[o.GuestID] = o
		}
		for _, id := range ids {
			o, ok := outcomes[id]
			switch {
			case !ok:
				report.Failed = append(report.Failed, usecase.SendFailure{GuestID: id, Reason: reasonNotReported})
			case !o.Success:
				report.Failed = append(report.Failed, usecase.SendFailure{GuestID: id, Reason: o.Error})
			default:
				d := roster.Dispatch{GuestID: id, SentAt: now, Provisional: true}
				if o.InvitationSentAt != nil {
					d.SentAt = *o.InvitationSentAt
					d.Provisional = false
				}
				dispatches = append(dispatches, d)
				report.Sent = append(report.Sent, id)
			}
		}
	}

	if missing := s.roster.ApplyInvitations(dispatches); len(missing) > 0 {
		s.log(ctx).Debug("Sent invitations for guests not loaded locally", slog.Any("guestIDs", missing))
	}

	s.log(ctx).Info("Invitations sent",
		slog.Int("requested", report.Requested),
		slog.Int("sent", len(report.Sent)),
		slog.Int("failed", len(report.Failed)),
		slog.Bool("provisional", report.Provisional),
	)

	return report, nil
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	return out
}

// RemoveGuest hides a guest from this roster. The guest is kept on the server
// and stays hidden across reloads.
func (s *guestService) RemoveGuest(ctx context.Context, id string) error {
	if _, ok := s.roster.Get(id); !ok {
		if err := s.reload(ctx); err != nil {
			return err
		}
	}
	if !s.roster.Remove(id) {
		return domainerrors.ErrGuestNotFound
	}
	s.log(ctx).Info("Guest removed locally", slog.String("guestID", id))

	return nil
}

// InvitationQR renders the RSVP link of a guest, reloading the roster once when the guest is unknown.
func (s *guestService) InvitationQR(ctx context.Context, id string) ([]byte, error) {
	guest, ok := s.roster.Get(id)
	if !ok {
		if err := s.reload(ctx); err != nil {
			return nil, err
		}
		if guest, ok = s.roster.Get(id); !ok {
			return nil, domainerrors.ErrGuestNotFound
		}
	}
	if guest.RSVPToken == "" {
		return nil, domainerrors.ErrRSVPTokenMissing
	}

	png, err := s.qrCode.GenerateRSVPQR(guest.RSVPToken)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render RSVP QR code")
	}

	return png, nil
}
