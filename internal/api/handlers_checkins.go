package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/ascent/internal/error_values"
	"github.com/limbo/ascent/pkg/entity"
	"github.com/limbo/ascent/pkg/httputil"
)

type UpsertCheckinRequest struct {
	GoalID    uuid.UUID `json:"goal_id"`
	Frequency string    `json:"frequency"`
}

type GetUpcomingCheckinsResponse struct {
	UserID   string           `json:"uid"`
	Checkins []entity.Checkin `json:"checkins"`
}

func (s *Server) UpsertCheckin(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("upsert checkin error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req UpsertCheckinRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("upsert checkin error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	checkin, err := s.checkinsService.Upsert(ctx, uid, req.GoalID, req.Frequency)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrInvalidFrequency):
			logger.Error("upsert checkin error: invalid frequency")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, err.Error(), nil)
		case errors.Is(err, errorvalues.ErrGoalNotFound), errors.Is(err, errorvalues.ErrWrongOwner):
			logger.Error("upsert checkin error: goal not found")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "goal doesn't exist", nil)
		default:
			logger.Error("upsert checkin error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, checkin)
	logger.Info("checkin upserted", slog.String("goal_id", req.GoalID.String()))
}

func (s *Server) GetUpcomingCheckins(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get upcoming checkins error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	checkins, err := s.checkinsService.Upcoming(ctx, uid)
	if err != nil {
		logger.Error("getting upcoming checkins error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting upcoming checkins", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetUpcomingCheckinsResponse{
		UserID:   uid.String(),
		Checkins: checkins,
	})
	logger.Info("upcoming checkins provided")
}
