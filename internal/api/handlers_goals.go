package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/ascent/internal/error_values"
	"github.com/limbo/ascent/internal/service"
	"github.com/limbo/ascent/pkg/entity"
	"github.com/limbo/ascent/pkg/httputil"
)

type CreateGoalRequest struct {
	Title         string `json:"title"`
	Description   string `json:"desc"`
	DurationWeeks int    `json:"duration_weeks"`
}

type EditGoalRequest struct {
	Title            *string `json:"title"`
	Description      *string `json:"desc"`
	DurationWeeks    *int    `json:"duration_weeks"`
	CheckinFrequency *string `json:"checkin_frequency"`
	Status           *string `json:"status"`
}

type ToggleChunkRequest struct {
	Completed bool `json:"completed"`
}

type UpdateCheckinFrequencyRequest struct {
	CheckinFrequency string `json:"checkin_frequency"`
}

type GetGoalsResponse struct {
	UserID string         `json:"uid"`
	Page   int            `json:"page"`
	Limit  int            `json:"limit"`
	Goals  []*entity.Goal `json:"goals"`
}

// writeGoalsServiceError maps goals service failures onto HTTP statuses.
// Foreign-owner failures are reported as not found so goal existence never
// leaks across users.
func writeGoalsServiceError(w http.ResponseWriter, logger *slog.Logger, action string, err error) {
	switch {
	case errors.Is(err, errorvalues.ErrGoalNotFound), errors.Is(err, errorvalues.ErrWrongOwner):
		logger.Error(action + " error: goal not found")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "goal doesn't exist", nil)
	case errors.Is(err, errorvalues.ErrChunkNotFound):
		logger.Error(action + " error: chunk not found")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "chunk with such week index doesn't exist", nil)
	case errors.Is(err, entity.ErrInvalidFrequency), errors.Is(err, entity.ErrInvalidStatus):
		logger.Error(action + " error: invalid enum value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, err.Error(), nil)
	default:
		logger.Error(action+" error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error", nil)
	}
}

func goalIDFromPath(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(r.PathValue("id"))
}

func (s *Server) CreateGoal(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("create goal error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req CreateGoalRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("create goal error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	if req.Title == "" {
		logger.Error("create goal error: empty title")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "title is required", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	goal, err := s.goalsService.CreateGoal(ctx, uid, &service.CreateGoalRequest{
		Title:         req.Title,
		Description:   req.Description,
		DurationWeeks: req.DurationWeeks,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			logger.Error("create goal error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "couldn't create goal: user doesn't exists", nil)
			return
		}
		writeGoalsServiceError(w, logger, "create goal", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, goal)
	logger.Info("goal created", slog.String("goal_id", goal.ID.String()))
}

func (s *Server) GetGoals(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get goals error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 1 || limit > 50 {
		limit = 10
	}
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	offset := (page - 1) * limit
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	goals, err := s.goalsService.GetUserGoals(ctx, uid, service.PaginationOpts{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		logger.Error("getting goals list error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting goals list", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetGoalsResponse{
		UserID: uid.String(),
		Page:   page,
		Limit:  limit,
		Goals:  goals,
	})
	logger.Info("goals provided")
}

func (s *Server) GetGoal(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get goal error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := goalIDFromPath(r)
	if err != nil {
		logger.Error("get goal error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid goal id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	goal, err := s.goalsService.GetGoal(ctx, id, uid)
	if err != nil {
		writeGoalsServiceError(w, logger, "get goal", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, goal)
	logger.Info("goal provided")
}

func (s *Server) EditGoal(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("edit goal error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := goalIDFromPath(r)
	if err != nil {
		logger.Error("edit goal error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid goal id in path value", nil)
		return
	}
	var req EditGoalRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("edit goal error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	goal, err := s.goalsService.EditGoal(ctx, id, uid, &service.EditGoalRequest{
		Title:            req.Title,
		Description:      req.Description,
		DurationWeeks:    req.DurationWeeks,
		CheckinFrequency: req.CheckinFrequency,
		Status:           req.Status,
	})
	if err != nil {
		writeGoalsServiceError(w, logger, "edit goal", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, goal)
	logger.Info("goal edited")
}

func (s *Server) DeleteGoal(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("goal deletion error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := goalIDFromPath(r)
	if err != nil {
		logger.Error("goal deletion error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid goal id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.goalsService.DeleteGoal(ctx, id, uid)
	if err != nil {
		writeGoalsServiceError(w, logger, "goal deletion", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, httputil.ConfirmationResponse{Message: "goal deleted successfully"})
	logger.Info("goal deleted")
}

func (s *Server) ToggleChunk(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("toggle chunk error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := goalIDFromPath(r)
	if err != nil {
		logger.Error("toggle chunk error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid goal id in path value", nil)
		return
	}
	weekIndex, err := strconv.Atoi(r.PathValue("weekIndex"))
	if err != nil {
		logger.Error("toggle chunk error: invalid week index in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid week index in path value", nil)
		return
	}
	var req ToggleChunkRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("toggle chunk error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	goal, err := s.goalsService.ToggleChunk(ctx, id, uid, weekIndex, req.Completed)
	if err != nil {
		writeGoalsServiceError(w, logger, "toggle chunk", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, goal)
	logger.Info("chunk toggled", slog.Int("week_index", weekIndex))
}

func (s *Server) UpdateCheckinFrequency(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("update checkin frequency error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := goalIDFromPath(r)
	if err != nil {
		logger.Error("update checkin frequency error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid goal id in path value", nil)
		return
	}
	var req UpdateCheckinFrequencyRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("update checkin frequency error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	goal, err := s.goalsService.UpdateCheckinFrequency(ctx, id, uid, req.CheckinFrequency)
	if err != nil {
		writeGoalsServiceError(w, logger, "update checkin frequency", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, goal)
	logger.Info("checkin frequency updated")
}

func (s *Server) DuplicateGoal(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("duplicate goal error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := goalIDFromPath(r)
	if err != nil {
		logger.Error("duplicate goal error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid goal id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	goal, err := s.goalsService.DuplicateGoal(ctx, id, uid)
	if err != nil {
		writeGoalsServiceError(w, logger, "duplicate goal", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, goal)
	logger.Info("goal duplicated", slog.String("goal_id", goal.ID.String()))
}

func (s *Server) ArchiveGoal(w http.ResponseWriter, r *http.Request) {
	s.setGoalStatus(w, r, "archive goal", s.goalsService.ArchiveGoal)
}

func (s *Server) ReactivateGoal(w http.ResponseWriter, r *http.Request) {
	s.setGoalStatus(w, r, "reactivate goal", s.goalsService.ReactivateGoal)
}

func (s *Server) CompleteGoal(w http.ResponseWriter, r *http.Request) {
	s.setGoalStatus(w, r, "complete goal", s.goalsService.CompleteGoal)
}

func (s *Server) setGoalStatus(
	w http.ResponseWriter,
	r *http.Request,
	action string,
	op func(ctx context.Context, goalID, userID uuid.UUID) (*entity.Goal, error),
) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error(action + " error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := goalIDFromPath(r)
	if err != nil {
		logger.Error(action + " error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid goal id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	goal, err := op(ctx, id, uid)
	if err != nil {
		writeGoalsServiceError(w, logger, action, err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, goal)
	logger.Info(action + " done")
}
