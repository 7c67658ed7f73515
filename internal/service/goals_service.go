package service

import (
	"context"
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/ascent/internal/error_values"
	"github.com/limbo/ascent/internal/repository"
	"github.com/limbo/ascent/pkg/entity"
)

type GoalsService struct {
	repo         repository.GoalsRepositoryI
	messagesRepo repository.MessagesRepositoryI
}

func NewGoalsService(goalsRepo repository.GoalsRepositoryI, messagesRepo repository.MessagesRepositoryI) *GoalsService {
	if goalsRepo == nil || messagesRepo == nil {
		log.Fatal("provided nil repos to goals service")
	}
	return &GoalsService{
		repo:         goalsRepo,
		messagesRepo: messagesRepo,
	}
}

func (gs *GoalsService) CreateGoal(ctx context.Context, uid uuid.UUID, req *CreateGoalRequest) (*entity.Goal, error) {
	err := validate.Struct(*req)
	if err != nil {
		if validationError, ok := err.(validator.ValidationErrors); ok {
			err = errors.New("validation error: ")
			for _, fieldErr := range validationError {
				err = errors.Join(err, fieldErr)
			}
			return nil, err
		}
		return nil, errors.New("validation unexpected error: " + err.Error())
	}
	dw := req.DurationWeeks
	if dw <= 0 {
		dw = SuggestDurationWeeks(req.Title)
	}
	g := entity.Goal{
		UserID:           uid,
		Title:            req.Title,
		Description:      req.Description,
		DurationWeeks:    dw,
		CheckinFrequency: entity.FrequencyWeekly,
		Status:           entity.StatusActive,
		Chunks:           GenerateChunks(req.Title, dw),
		Progress:         0,
	}
	id, err := gs.repo.Create(ctx, &g)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrOwnerNotFound):
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("goals repository error: " + err.Error())
	}
	goal, err := gs.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrGoalNotFound) {
			return nil, err
		}
		return nil, errors.New("goals repository error: " + err.Error())
	}
	return goal, nil
}

func (gs *GoalsService) GetUserGoals(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]*entity.Goal, error) {
	goals, err := gs.repo.GetByUserID(ctx, uid, pagination.Limit, pagination.Offset)
	if err != nil {
		return nil, errors.New("goals repository error: " + err.Error())
	}
	return goals, nil
}

// getOwned loads a goal and enforces ownership. Foreign goals come back as
// ErrWrongOwner, which handlers surface identically to absent ones.
func (gs *GoalsService) getOwned(ctx context.Context, goalID, userID uuid.UUID) (*entity.Goal, error) {
	goal, err := gs.repo.GetByID(ctx, goalID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrGoalNotFound) {
			return nil, err
		}
		return nil, errors.New("goals repository error: " + err.Error())
	}
	if goal.UserID != userID {
		return nil, errorvalues.ErrWrongOwner
	}
	return goal, nil
}

func (gs *GoalsService) GetGoal(ctx context.Context, goalID, userID uuid.UUID) (*entity.Goal, error) {
	return gs.getOwned(ctx, goalID, userID)
}

func (gs *GoalsService) EditGoal(ctx context.Context, goalID, userID uuid.UUID, req *EditGoalRequest) (*entity.Goal, error) {
	goal, err := gs.getOwned(ctx, goalID, userID)
	if err != nil {
		return nil, err
	}
	if req.Title != nil && *req.Title != "" {
		goal.Title = *req.Title
	}
	if req.Description != nil {
		goal.Description = *req.Description
	}
	if req.DurationWeeks != nil && *req.DurationWeeks > 0 {
		goal.DurationWeeks = *req.DurationWeeks
	}
	if req.CheckinFrequency != nil {
		freq, err := entity.ParseCheckinFrequency(*req.CheckinFrequency)
		if err != nil {
			return nil, err
		}
		goal.CheckinFrequency = freq
	}
	if req.Status != nil {
		status, err := entity.ParseGoalStatus(*req.Status)
		if err != nil {
			return nil, err
		}
		goal.Status = status
	}
	if err = gs.update(ctx, goal); err != nil {
		return nil, err
	}
	return goal, nil
}

func (gs *GoalsService) ToggleChunk(ctx context.Context, goalID, userID uuid.UUID, weekIndex int, completed bool) (*entity.Goal, error) {
	goal, err := gs.getOwned(ctx, goalID, userID)
	if err != nil {
		return nil, err
	}
	idx := -1
	for i := range goal.Chunks {
		if goal.Chunks[i].WeekIndex == weekIndex {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, errorvalues.ErrChunkNotFound
	}
	err = gs.repo.SetChunkCompleted(ctx, goalID, weekIndex, completed)
	if err != nil {
		if errors.Is(err, errorvalues.ErrChunkNotFound) {
			return nil, err
		}
		return nil, errors.New("goals repository error: " + err.Error())
	}
	goal.Chunks[idx].Completed = completed
	goal.Progress = RecalcProgress(goal.Chunks)
	err = gs.repo.SetProgress(ctx, goalID, goal.Progress)
	if err != nil {
		if errors.Is(err, errorvalues.ErrGoalNotFound) {
			return nil, err
		}
		return nil, errors.New("goals repository error: " + err.Error())
	}
	return goal, nil
}

func (gs *GoalsService) UpdateCheckinFrequency(ctx context.Context, goalID, userID uuid.UUID, frequency string) (*entity.Goal, error) {
	freq, err := entity.ParseCheckinFrequency(frequency)
	if err != nil {
		return nil, err
	}
	goal, err := gs.getOwned(ctx, goalID, userID)
	if err != nil {
		return nil, err
	}
	goal.CheckinFrequency = freq
	if err = gs.update(ctx, goal); err != nil {
		return nil, err
	}
	return goal, nil
}

func (gs *GoalsService) ArchiveGoal(ctx context.Context, goalID, userID uuid.UUID) (*entity.Goal, error) {
	return gs.setStatus(ctx, goalID, userID, entity.StatusArchived)
}

// ReactivateGoal returns a goal to active from archived or completed; no
// transition is forbidden.
func (gs *GoalsService) ReactivateGoal(ctx context.Context, goalID, userID uuid.UUID) (*entity.Goal, error) {
	return gs.setStatus(ctx, goalID, userID, entity.StatusActive)
}

// CompleteGoal is the terminal shortcut: progress is forced to 100 no
// matter how many chunks are actually done.
func (gs *GoalsService) CompleteGoal(ctx context.Context, goalID, userID uuid.UUID) (*entity.Goal, error) {
	goal, err := gs.getOwned(ctx, goalID, userID)
	if err != nil {
		return nil, err
	}
	goal.Status = entity.StatusCompleted
	goal.Progress = 100
	if err = gs.update(ctx, goal); err != nil {
		return nil, err
	}
	return goal, nil
}

func (gs *GoalsService) setStatus(ctx context.Context, goalID, userID uuid.UUID, status entity.GoalStatus) (*entity.Goal, error) {
	goal, err := gs.getOwned(ctx, goalID, userID)
	if err != nil {
		return nil, err
	}
	goal.Status = status
	if err = gs.update(ctx, goal); err != nil {
		return nil, err
	}
	return goal, nil
}

func (gs *GoalsService) update(ctx context.Context, goal *entity.Goal) error {
	err := gs.repo.Update(ctx, goal)
	if err != nil {
		if errors.Is(err, errorvalues.ErrGoalNotFound) {
			return err
		}
		return errors.New("goals repository error: " + err.Error())
	}
	return nil
}

func (gs *GoalsService) DuplicateGoal(ctx context.Context, goalID, userID uuid.UUID) (*entity.Goal, error) {
	goal, err := gs.getOwned(ctx, goalID, userID)
	if err != nil {
		return nil, err
	}
	// Suffix must still fit the 200-char title limit
	const copySuffix = " (Copy)"
	title := []rune(goal.Title)
	if limit := 200 - len([]rune(copySuffix)); len(title) > limit {
		title = title[:limit]
	}
	// Fresh breakdown, not a copy: completion state stays behind
	return gs.CreateGoal(ctx, userID, &CreateGoalRequest{
		Title:         string(title) + copySuffix,
		Description:   goal.Description,
		DurationWeeks: goal.DurationWeeks,
	})
}

func (gs *GoalsService) DeleteGoal(ctx context.Context, goalID, userID uuid.UUID) error {
	_, err := gs.getOwned(ctx, goalID, userID)
	if err != nil {
		return err
	}
	// Chat messages go first so a failed goal delete never leaves them orphaned
	err = gs.messagesRepo.DeleteByGoalAndUser(ctx, goalID, userID)
	if err != nil {
		return errors.New("messages repository error: " + err.Error())
	}
	err = gs.repo.Delete(ctx, goalID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrGoalNotFound) {
			return err
		}
		return errors.New("goals repository error: " + err.Error())
	}
	return nil
}
