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

type TutorReplyRequest struct {
	GoalID uuid.UUID `json:"goal_id"`
	Text   string    `json:"text"`
}

type TutorHistoryResponse struct {
	GoalID   string           `json:"goal_id"`
	Messages []entity.Message `json:"messages"`
}

func (s *Server) TutorReply(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("tutor reply error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req TutorReplyRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("tutor reply error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	if req.Text == "" {
		logger.Error("tutor reply error: empty message text")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "message text is required", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	msg, err := s.tutorService.Reply(ctx, uid, req.GoalID, req.Text)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrGoalNotFound), errors.Is(err, errorvalues.ErrWrongOwner):
			logger.Error("tutor reply error: goal not found")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "goal doesn't exist", nil)
		default:
			logger.Error("tutor reply error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, msg)
	logger.Info("tutor reply sent", slog.String("goal_id", req.GoalID.String()))
}

func (s *Server) TutorHistory(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("tutor history error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	goalID, err := uuid.Parse(r.PathValue("goalId"))
	if err != nil {
		logger.Error("tutor history error: invalid goal id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid goal id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	messages, err := s.tutorService.History(ctx, uid, goalID)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrGoalNotFound), errors.Is(err, errorvalues.ErrWrongOwner):
			logger.Error("tutor history error: goal not found")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "goal doesn't exist", nil)
		default:
			logger.Error("tutor history error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, TutorHistoryResponse{
		GoalID:   goalID.String(),
		Messages: messages,
	})
	logger.Info("tutor history provided")
}
