package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/ascent/internal/error_values"
	"github.com/limbo/ascent/internal/repository"
	"github.com/limbo/ascent/pkg/entity"
)

const upcomingCheckinsLimit = 10

type CheckinsService struct {
	goalsRepo    repository.GoalsRepositoryI
	checkinsRepo repository.CheckinsRepositoryI
}

func NewCheckinsService(goalsRepo repository.GoalsRepositoryI, checkinsRepo repository.CheckinsRepositoryI) *CheckinsService {
	if goalsRepo == nil || checkinsRepo == nil {
		log.Fatal("provided nil repos to checkins service")
	}
	return &CheckinsService{
		goalsRepo:    goalsRepo,
		checkinsRepo: checkinsRepo,
	}
}

func (cs *CheckinsService) Upsert(ctx context.Context, uid, goalID uuid.UUID, frequency string) (*entity.Checkin, error) {
	freq, err := entity.ParseCheckinFrequency(frequency)
	if err != nil {
		return nil, err
	}
	goal, err := cs.goalsRepo.GetByID(ctx, goalID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrGoalNotFound) {
			return nil, err
		}
		return nil, errors.New("goals repository error: " + err.Error())
	}
	if goal.UserID != uid {
		return nil, errorvalues.ErrWrongOwner
	}
	checkin, err := cs.checkinsRepo.Upsert(ctx, &entity.Checkin{
		UserID:    uid,
		GoalID:    goalID,
		Frequency: freq,
		NextAt:    time.Now().Add(freq.Step()),
	})
	if err != nil {
		return nil, errors.New("checkins repository error: " + err.Error())
	}
	return checkin, nil
}

func (cs *CheckinsService) Upcoming(ctx context.Context, uid uuid.UUID) ([]entity.Checkin, error) {
	checkins, err := cs.checkinsRepo.GetUpcoming(ctx, uid, upcomingCheckinsLimit)
	if err != nil {
		return nil, errors.New("checkins repository error: " + err.Error())
	}
	return checkins, nil
}
