package errors_test

import (
	"fmt"
	"net/http"
	"testing"

	domainerrors "planner/internal/domain/errors"
	"planner/internal/errors"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestWrap_KeepsDomainErrorMatchable(t *testing.T) {
	err := errors.Wrap(domainerrors.ErrGuestNotFound, "failed to remove guest")

	assert.True(t, errors.Is(err, domainerrors.ErrGuestNotFound))
	assert.Contains(t, err.Error(), "failed to remove guest")
	assert.Nil(t, errors.Wrap(nil, "ignored"))
}

func TestAsType(t *testing.T) {
	apiErr := domainerrors.NewHTTPError(http.StatusNotFound, "gone", nil)
	wrapped := errors.Wrapf(errors.WithStack(apiErr), "load %s", "wedding")

	got, ok := errors.AsType[*domainerrors.APIError](wrapped)
	if assert.True(t, ok) {
		assert.Same(t, apiErr, got)
	}

	_, ok = errors.AsType[*domainerrors.APIError](errors.New("plain"))
	assert.False(t, ok)
}

func TestErrorf_CarriesStack(t *testing.T) {
	err := errors.Errorf("bad page %d", 3)

	assert.Equal(t, "bad page 3", err.Error())
	assert.Contains(t, fmt.Sprintf("%+v", err), "TestErrorf_CarriesStack")

	_, hasStack := err.(interface{ StackTrace() pkgerrors.StackTrace })
	assert.True(t, hasStack)
}
