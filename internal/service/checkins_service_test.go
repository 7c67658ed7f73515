package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/ascent/internal/error_values"
	"github.com/limbo/ascent/internal/service"
	"github.com/limbo/ascent/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type checkinsRepoMock struct {
	state mockState
	last  *entity.Checkin
}

func (crmock *checkinsRepoMock) Upsert(ctx context.Context, c *entity.Checkin) (*entity.Checkin, error) {
	switch crmock.state {
	case stateGoalNotFoundError:
		return nil, errorvalues.ErrGoalNotFound
	case stateDBError:
		return nil, errors.New("db error")
	default:
		c.ID = 1
		c.CreatedAt = time.Now()
		crmock.last = c
		return c, nil
	}
}

func (crmock *checkinsRepoMock) GetUpcoming(ctx context.Context, uid uuid.UUID, limit int) ([]entity.Checkin, error) {
	switch crmock.state {
	case stateDBError:
		return nil, errors.New("db error")
	default:
		if crmock.last == nil {
			return []entity.Checkin{}, nil
		}
		return []entity.Checkin{*crmock.last}, nil
	}
}

func TestUpsertCheckin(t *testing.T) {
	goalsMock := &goalsRepoMock{state: stateSuccess}
	checkinsMock := &checkinsRepoMock{}
	s := service.NewCheckinsService(goalsMock, checkinsMock)
	ctx := context.Background()
	t.Run("schedules next checkin by frequency", func(t *testing.T) {
		before := time.Now()
		c, err := s.Upsert(ctx, userID, goalID, "daily")
		require.NoError(t, err)
		assert.Equal(t, entity.FrequencyDaily, c.Frequency)
		assert.WithinDuration(t, before.Add(24*time.Hour), c.NextAt, time.Minute)
	})
	t.Run("biweekly step", func(t *testing.T) {
		before := time.Now()
		c, err := s.Upsert(ctx, userID, goalID, "biweekly")
		require.NoError(t, err)
		assert.WithinDuration(t, before.Add(14*24*time.Hour), c.NextAt, time.Minute)
	})
	t.Run("invalid frequency", func(t *testing.T) {
		_, err := s.Upsert(ctx, userID, goalID, "hourly")
		assert.ErrorIs(t, err, entity.ErrInvalidFrequency)
	})
	t.Run("wrong owner", func(t *testing.T) {
		goalsMock.state = stateWrongOwner
		_, err := s.Upsert(ctx, userID, goalID, "weekly")
		assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
	})
	t.Run("goal not found", func(t *testing.T) {
		goalsMock.state = stateGoalNotFoundError
		_, err := s.Upsert(ctx, userID, goalID, "weekly")
		assert.ErrorIs(t, err, errorvalues.ErrGoalNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		goalsMock.state = stateSuccess
		checkinsMock.state = stateDBError
		_, err := s.Upsert(ctx, userID, goalID, "weekly")
		assert.Error(t, err)
		checkinsMock.state = stateSuccess
	})
}

func TestUpcomingCheckins(t *testing.T) {
	goalsMock := &goalsRepoMock{state: stateSuccess}
	checkinsMock := &checkinsRepoMock{}
	s := service.NewCheckinsService(goalsMock, checkinsMock)
	ctx := context.Background()
	t.Run("empty", func(t *testing.T) {
		checkins, err := s.Upcoming(ctx, userID)
		assert.NoError(t, err)
		assert.Empty(t, checkins)
	})
	t.Run("returns scheduled", func(t *testing.T) {
		_, err := s.Upsert(ctx, userID, goalID, "weekly")
		require.NoError(t, err)
		checkins, err := s.Upcoming(ctx, userID)
		assert.NoError(t, err)
		assert.Equal(t, 1, len(checkins))
		assert.Equal(t, goalID, checkins[0].GoalID)
	})
	t.Run("db error", func(t *testing.T) {
		checkinsMock.state = stateDBError
		_, err := s.Upcoming(ctx, userID)
		assert.Error(t, err)
	})
}
