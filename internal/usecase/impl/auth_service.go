package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"planner/config"
	deliverycontext "planner/internal/delivery/context"
	"planner/internal/domain/entity"
	domainerrors "planner/internal/domain/errors"
	"planner/internal/domain/repository"
	"planner/internal/domain/service"
	"planner/internal/domain/validation"
	"planner/internal/errors"
	"planner/internal/usecase"
)

type authService struct {
	sessions    usecase.SessionProvider
	authRepo    repository.AuthRepository
	inspector   service.TokenInspector
	logger      *slog.Logger
	profileTTL  time.Duration
	signInRoute string
	homeRoute   string
	now         func() time.Time
}

// NewAuthService is the constructor for authService.
func NewAuthService(
	sessions usecase.SessionProvider,
	authRepo repository.AuthRepository,
	inspector service.TokenInspector,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		sessions:    sessions,
		authRepo:    authRepo,
		inspector:   inspector,
		logger:      logger,
		profileTTL:  cfg.Session.ProfileTTL,
		signInRoute: cfg.Session.SignInRoute,
		homeRoute:   cfg.Session.HomeRoute,
		now:         time.Now,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *authService) unauthenticated(reason usecase.UnauthenticatedReason) *usecase.SessionState {
	return &usecase.SessionState{
		Reason:   reason,
		Redirect: srv.signInRoute,
	}
}

// LoadSession resolves the signed-in user. A cached profile younger than the
// freshness window is served without asking the API.
func (srv *authService) LoadSession(ctx context.Context) (*usecase.SessionState, error) {
	cached, err := srv.sessions.Cached(ctx)
	if errors.Is(err, repository.ErrSessionNotFound) {
		return srv.unauthenticated(usecase.ReasonNoToken), nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to read session cache")
	}
	if cached.Token == "" {
		return srv.unauthenticated(usecase.ReasonNoToken), nil
	}

	now := srv.now()
	info, err := srv.inspector.Inspect(cached.Token)
	if err != nil || info.Expired(now) {
		srv.log(ctx).Info("Cached token expired or unreadable, clearing session", slog.Any("error", err))
		if err := srv.sessions.Invalidate(ctx); err != nil {
			return nil, errors.Wrap(err, "failed to clear expired session")
		}

		return srv.unauthenticated(usecase.ReasonExpired), nil
	}

	if cached.Profile != nil && !cached.ProfileCachedAt.IsZero() && now.Sub(cached.ProfileCachedAt) < srv.profileTTL {
		return &usecase.SessionState{
			Authenticated: true,
			User:          cached.Profile,
			FromCache:     true,
		}, nil
	}

	user, err := srv.authRepo.Me(ctx)
	if err != nil {
		if domainerrors.KindOf(err) == domainerrors.KindNetwork {
			srv.log(ctx).Warn("Profile refresh failed, API unreachable", slog.Any("error", err))

			return srv.unauthenticated(usecase.ReasonUnreachable), nil
		}

		srv.log(ctx).Info("Profile refresh rejected, clearing session", slog.Any("error", err))
		if invErr := srv.sessions.Invalidate(ctx); invErr != nil {
			return nil, errors.Wrap(invErr, "failed to clear rejected session")
		}

		return srv.unauthenticated(usecase.ReasonRejected), nil
	}

	if err := srv.sessions.StoreProfile(ctx, user); err != nil {
		srv.log(ctx).Warn("Failed to cache profile", slog.Any("error", err))
	}

	return &usecase.SessionState{
		Authenticated: true,
		User:          user,
	}, nil
}

// Login signs in with an email or username and stores the session.
func (srv *authService) Login(ctx context.Context, creds entity.Credentials) (*usecase.LoginOutput, error) {
	creds.Login = strings.TrimSpace(creds.Login)
	if creds.Login == "" || creds.Password == "" {
		return nil, domainerrors.ErrInvalidCredentials
	}
	if strings.Contains(creds.Login, "@") && !validation.ValidateEmail(creds.Login) {
		return nil, domainerrors.NewValidationError(domainerrors.FieldError{Field: "login", Message: "must be a valid email address"})
	}

	result, err := srv.authRepo.Login(ctx, creds)
	if err != nil {
		srv.log(ctx).Info("Login failed", slog.String("login", creds.Login), slog.Any("error", err))

		return nil, errors.Wrap(err, "login failed")
	}

	return srv.establish(ctx, result)
}

// Register validates the form client-side, creates the account and stores the session.
func (srv *authService) Register(ctx context.Context, reg entity.Registration) (*usecase.LoginOutput, error) {
	reg.Email = strings.TrimSpace(reg.Email)
	reg.Username = strings.TrimSpace(reg.Username)
	reg.TelegramUsername = strings.TrimPrefix(strings.TrimSpace(reg.TelegramUsername), "@")
	if err := validation.Struct(reg); err != nil {
		return nil, err
	}

	result, err := srv.authRepo.Register(ctx, reg)
	if err != nil {
		return nil, errors.Wrap(err, "registration failed")
	}

	return srv.establish(ctx, result)
}

func (srv *authService) establish(ctx context.Context, result *entity.AuthResult) (*usecase.LoginOutput, error) {
	if result == nil || result.Token == "" {
		return nil, domainerrors.NewDecodeError(0, errors.New("auth response carried no token"))
	}

	if err := srv.sessions.Store(ctx, result.Token, result.User); err != nil {
		return nil, errors.Wrap(err, "failed to store session")
	}
	if result.User != nil {
		srv.log(ctx).Info("Signed in", slog.String("userID", result.User.ID))
	}

	return &usecase.LoginOutput{
		User:     result.User,
		Redirect: srv.homeRoute,
	}, nil
}

// Logout tells the API when a token is held, then clears the cache whatever the answer.
func (srv *authService) Logout(ctx context.Context) (string, error) {
	if _, ok := srv.sessions.Token(ctx); ok {
		if err := srv.authRepo.Logout(ctx); err != nil {
			srv.log(ctx).Warn("Remote logout failed", slog.Any("error", err))
		}
	}

	if err := srv.sessions.Invalidate(ctx); err != nil {
		return "", errors.Wrap(err, "failed to clear session")
	}

	return srv.signInRoute, nil
}
