package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/ascent/internal/error_values"
	"github.com/limbo/ascent/internal/service"
	"github.com/limbo/ascent/pkg/entity"
	"github.com/limbo/ascent/pkg/httputil"
)

type CreateNotificationRequest struct {
	Type    string     `json:"type"`
	Title   string     `json:"title"`
	Message string     `json:"message"`
	GoalID  *uuid.UUID `json:"goal_id"`
}

type GetNotificationsResponse struct {
	UserID        string                `json:"uid"`
	Notifications []entity.Notification `json:"notifications"`
}

func (s *Server) GetNotifications(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get notifications error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	notifications, err := s.notificationsService.List(ctx, uid)
	if err != nil {
		logger.Error("getting notifications list error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting notifications list", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetNotificationsResponse{
		UserID:        uid.String(),
		Notifications: notifications,
	})
	logger.Info("notifications provided")
}

func (s *Server) CreateNotification(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("create notification error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req CreateNotificationRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("create notification error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	notification, err := s.notificationsService.Create(ctx, uid, &service.CreateNotificationRequest{
		Type:    req.Type,
		Title:   req.Title,
		Message: req.Message,
		GoalID:  req.GoalID,
	})
	if err != nil {
		var validationErrs validator.ValidationErrors
		switch {
		case errors.As(err, &validationErrs), errors.Is(err, entity.ErrInvalidNotificationType):
			logger.Error("create notification error: invalid fields")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid notification fields", nil)
		case errors.Is(err, errorvalues.ErrGoalNotFound):
			logger.Error("create notification error: goal not found")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "goal doesn't exist", nil)
		default:
			logger.Error("create notification error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, notification)
	logger.Info("notification created", slog.String("notification_id", notification.ID.String()))
}

func (s *Server) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("mark notification read error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("mark notification read error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid notification id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	notification, err := s.notificationsService.MarkRead(ctx, id, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrNotificationNotFound) {
			logger.Error("mark notification read error: notification not found")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "notification doesn't exist", nil)
			return
		}
		logger.Error("mark notification read error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, notification)
	logger.Info("notification marked read")
}

func (s *Server) DeleteNotification(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("notification deletion error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("notification deletion error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid notification id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.notificationsService.Delete(ctx, id, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrNotificationNotFound) {
			logger.Error("notification deletion error: notification not found")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "notification doesn't exist", nil)
			return
		}
		logger.Error("notification deletion error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, httputil.ConfirmationResponse{Message: "notification deleted successfully"})
	logger.Info("notification deleted")
}
