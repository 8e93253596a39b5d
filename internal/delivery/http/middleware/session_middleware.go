package middleware

import (
	deliverycontext "planner/internal/delivery/context"
	domainerrors "planner/internal/domain/errors"
	"planner/internal/usecase"

	"github.com/labstack/echo/v4"
)

// SessionMiddleware gates the dashboard routes on a live session.
type SessionMiddleware struct {
	auth usecase.AuthUsecase
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(auth usecase.AuthUsecase) *SessionMiddleware {
	return &SessionMiddleware{auth: auth}
}

// RequireSession resolves the session once per request and stores the user on the context.
func (m *SessionMiddleware) RequireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		state, err := m.auth.LoadSession(c.Request().Context())
		if err != nil {
			return err
		}
		if !state.Authenticated {
			return domainerrors.NewUnauthorizedError(reasonMessage(state.Reason), state.Redirect)
		}
		deliverycontext.SetUser(c, state.User)

		return next(c)
	}
}

func reasonMessage(reason usecase.UnauthenticatedReason) string {
	switch reason {
	case usecase.ReasonNoToken:
		return domainerrors.ErrNotAuthenticated.Message()
	case usecase.ReasonUnreachable:
		return "Unable to verify your session, please sign in again"
	}

	return ""
}
