package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/limbo/ascent/pkg/entity"
)

type RegisterRequest struct {
	Name     string `validate:"required,alphanum_underscore,min=3,max=100"`
	Password string `validate:"required,min=8,max=72"`
}

type CreateGoalRequest struct {
	Title       string `validate:"required,min=1,max=200"`
	Description string `validate:"max=2000"`
	// Zero means "suggest one from the title"
	DurationWeeks int `validate:"gte=0,lte=104"`
}

// EditGoalRequest patches any subset of a goal's editable fields.
// Nil pointers are left alone. Editing DurationWeeks never regenerates
// chunks: the breakdown is fixed at creation time.
type EditGoalRequest struct {
	Title            *string
	Description      *string
	DurationWeeks    *int
	CheckinFrequency *string
	Status           *string
}

type PaginationOpts struct {
	Limit  int
	Offset int
}

type UserServiceI interface {
	// Validates user's credentials, creates new row in database. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, give back user's data with ID.
	Login(ctx context.Context, name, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	DeleteAccount(ctx context.Context, id uuid.UUID, password string) error
}

type GoalsServiceI interface {
	// Suggests duration if absent, generates the weekly breakdown, stores the goal
	CreateGoal(ctx context.Context, uid uuid.UUID, req *CreateGoalRequest) (*entity.Goal, error)
	// Lists the user's goals, newest first
	GetUserGoals(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]*entity.Goal, error)
	GetGoal(ctx context.Context, goalID, userID uuid.UUID) (*entity.Goal, error)
	// Patches editable fields; never touches chunks
	EditGoal(ctx context.Context, goalID, userID uuid.UUID, req *EditGoalRequest) (*entity.Goal, error)
	// Sets one chunk's completed flag and recomputes progress
	ToggleChunk(ctx context.Context, goalID, userID uuid.UUID, weekIndex int, completed bool) (*entity.Goal, error)
	UpdateCheckinFrequency(ctx context.Context, goalID, userID uuid.UUID, frequency string) (*entity.Goal, error)
	ArchiveGoal(ctx context.Context, goalID, userID uuid.UUID) (*entity.Goal, error)
	ReactivateGoal(ctx context.Context, goalID, userID uuid.UUID) (*entity.Goal, error)
	// Marks the goal completed and forces progress to 100
	CompleteGoal(ctx context.Context, goalID, userID uuid.UUID) (*entity.Goal, error)
	// Creates a fresh goal from an existing one; completion state is not copied
	DuplicateGoal(ctx context.Context, goalID, userID uuid.UUID) (*entity.Goal, error)
	// Removes the goal and its chat messages
	DeleteGoal(ctx context.Context, goalID, userID uuid.UUID) error
}

type TutorServiceI interface {
	// Stores the user's message, generates the scripted reply, stores and returns it
	Reply(ctx context.Context, uid, goalID uuid.UUID, text string) (*entity.Message, error)
	// Chat history for (goal, user), oldest first
	History(ctx context.Context, uid, goalID uuid.UUID) ([]entity.Message, error)
}

type CreateNotificationRequest struct {
	Type    string `validate:"required"`
	Title   string `validate:"required,max=200"`
	Message string `validate:"required,max=2000"`
	GoalID  *uuid.UUID
}

type NotificationsServiceI interface {
	Create(ctx context.Context, uid uuid.UUID, req *CreateNotificationRequest) (*entity.Notification, error)
	List(ctx context.Context, uid uuid.UUID) ([]entity.Notification, error)
	MarkRead(ctx context.Context, id, uid uuid.UUID) (*entity.Notification, error)
	Delete(ctx context.Context, id, uid uuid.UUID) error
}

type CheckinsServiceI interface {
	// Creates or refreshes the check-in schedule for (user, goal)
	Upsert(ctx context.Context, uid, goalID uuid.UUID, frequency string) (*entity.Checkin, error)
	Upcoming(ctx context.Context, uid uuid.UUID) ([]entity.Checkin, error)
}
