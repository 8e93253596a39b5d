package impl

import (
	"context"
	"net/http"
	"testing"
	"time"

	"planner/internal/domain/entity"
	domainerrors "planner/internal/domain/errors"
	mockRepo "planner/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestWeddingService_GetWedding_NotFound(t *testing.T) {
	repo := mockRepo.NewMockWeddingRepository(t)
	svc := NewWeddingService(repo, newTestLogger())
	repo.On("Get", mock.Anything).Return(nil, domainerrors.NewHTTPError(http.StatusNotFound, "", nil)).Once()

	_, err := svc.GetWedding(context.Background())

	assert.ErrorIs(t, err, domainerrors.ErrWeddingNotFound)
}

func TestWeddingService_SetupWedding(t *testing.T) {
	date := time.Date(2027, 6, 12, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		input      *entity.Wedding
		wantFields []string
	}{
		{
			name:  "valid wedding",
			input: &entity.Wedding{Title: "  Ana & Ben  ", Date: date, Venue: "Old Mill", PrimaryColor: "#ff8800"},
		},
		{
			name:       "missing title and date",
			input:      &entity.Wedding{},
			wantFields: []string{"title", "date"},
		},
		{
			name:       "bad color",
			input:      &entity.Wedding{Title: "Ana & Ben", Date: date, PrimaryColor: "orange"},
			wantFields: []string{"primaryColor"},
		},
		{
			name:       "nil wedding",
			wantFields: []string{"wedding"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mockRepo.NewMockWeddingRepository(t)
			svc := NewWeddingService(repo, newTestLogger())
			if tt.wantFields == nil {
				repo.On("Create", mock.Anything, mock.MatchedBy(func(w *entity.Wedding) bool {
					return w.Title == "Ana & Ben"
				})).Return(&entity.Wedding{ID: "w1", Title: "Ana & Ben", Date: date}, nil).Once()
			}

			created, err := svc.SetupWedding(context.Background(), tt.input)

			if tt.wantFields == nil {
				require.NoError(t, err)
				assert.Equal(t, "w1", created.ID)

				return
			}
			apiErr, ok := domainerrors.AsAPIError(err)
			require.True(t, ok)
			assert.Equal(t, domainerrors.KindValidation, apiErr.Kind)
			fields := make([]string, 0, len(apiErr.Errors))
			for _, f := range apiErr.Errors {
				fields = append(fields, f.Field)
			}
			assert.ElementsMatch(t, tt.wantFields, fields)
		})
	}
}

func TestWeddingService_UpdateWedding_NotFound(t *testing.T) {
	repo := mockRepo.NewMockWeddingRepository(t)
	svc := NewWeddingService(repo, newTestLogger())
	repo.On("Update", mock.Anything, mock.Anything).Return(nil, domainerrors.NewHTTPError(http.StatusNotFound, "", nil)).Once()

	_, err := svc.UpdateWedding(context.Background(), &entity.Wedding{Title: "T", Date: time.Now()})

	assert.ErrorIs(t, err, domainerrors.ErrWeddingNotFound)
}

func TestWeddingService_Countdown(t *testing.T) {
	repo := mockRepo.NewMockWeddingRepository(t)
	svc := NewWeddingService(repo, newTestLogger())
	date := time.Date(2027, 6, 12, 15, 0, 0, 0, time.UTC)
	repo.On("Get", mock.Anything).Return(&entity.Wedding{Title: "Ana & Ben", Date: date}, nil).Once()

	countdown, err := svc.Countdown(context.Background(), time.Date(2027, 6, 2, 23, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	assert.Equal(t, "Ana & Ben", countdown.Title)
	assert.Equal(t, 10, countdown.Days)
}
