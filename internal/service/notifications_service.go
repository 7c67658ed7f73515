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

const notificationsListLimit = 50

type NotificationsService struct {
	repo repository.NotificationsRepositoryI
}

func NewNotificationsService(notificationsRepo repository.NotificationsRepositoryI) *NotificationsService {
	if notificationsRepo == nil {
		log.Fatal("provided nil notificationsRepo")
	}
	return &NotificationsService{
		repo: notificationsRepo,
	}
}

func (ns *NotificationsService) Create(ctx context.Context, uid uuid.UUID, req *CreateNotificationRequest) (*entity.Notification, error) {
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
	ntype, err := entity.ParseNotificationType(req.Type)
	if err != nil {
		return nil, err
	}
	n, err := ns.repo.Create(ctx, &entity.Notification{
		UserID:  uid,
		GoalID:  req.GoalID,
		Type:    ntype,
		Title:   req.Title,
		Message: req.Message,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrGoalNotFound) {
			return nil, err
		}
		return nil, errors.New("notifications repository error: " + err.Error())
	}
	return n, nil
}

func (ns *NotificationsService) List(ctx context.Context, uid uuid.UUID) ([]entity.Notification, error) {
	notifications, err := ns.repo.GetByUserID(ctx, uid, notificationsListLimit)
	if err != nil {
		return nil, errors.New("notifications repository error: " + err.Error())
	}
	return notifications, nil
}

func (ns *NotificationsService) MarkRead(ctx context.Context, id, uid uuid.UUID) (*entity.Notification, error) {
	n, err := ns.repo.MarkRead(ctx, id, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrNotificationNotFound) {
			return nil, err
		}
		return nil, errors.New("notifications repository error: " + err.Error())
	}
	return n, nil
}

func (ns *NotificationsService) Delete(ctx context.Context, id, uid uuid.UUID) error {
	err := ns.repo.Delete(ctx, id, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrNotificationNotFound) {
			return err
		}
		return errors.New("notifications repository error: " + err.Error())
	}
	return nil
}
