package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/ascent/pkg/entity"
)

type UsersRepositoryI interface {
	// Creates new user in database
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by name. Can be used for login
	FindByName(ctx context.Context, name string) (*entity.User, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Deletes user
	Delete(ctx context.Context, uid uuid.UUID) error
}

type GoalsRepositoryI interface {
	// Inserts goal with its full chunk sequence in one transaction.
	// Goal needs UserID, Title, Description, DurationWeeks, CheckinFrequency,
	// Status and Chunks filled in.
	Create(ctx context.Context, goal *entity.Goal) (uuid.UUID, error)
	// Loads goal with its chunks ordered by week index
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error)
	// Lists goals owned by user, newest first. Requires pagination params provided
	GetByUserID(ctx context.Context, uid uuid.UUID, limit, offset int) ([]*entity.Goal, error)
	// Updates goal scalar fields (title, description, duration, frequency,
	// status, progress). Chunks are never touched by Update.
	Update(ctx context.Context, goal *entity.Goal) error
	// Sets one chunk's completed flag. Single-row update, so two concurrent
	// toggles on different chunks of the same goal both land.
	SetChunkCompleted(ctx context.Context, goalID uuid.UUID, weekIndex int, completed bool) error
	// Persists a recomputed progress value
	SetProgress(ctx context.Context, goalID uuid.UUID, progress int) error
	// Deletes goal with id. Chunks go with it
	Delete(ctx context.Context, id uuid.UUID) error
}

type MessagesRepositoryI interface {
	// Stores a chat message, returns it with ID and CreatedAt assigned
	Create(ctx context.Context, msg *entity.Message) (*entity.Message, error)
	// Provides chat history for (goal, user), oldest first
	GetByGoalAndUser(ctx context.Context, goalID, uid uuid.UUID) ([]entity.Message, error)
	// Removes all chat messages for (goal, user). Used by goal deletion cascade
	DeleteByGoalAndUser(ctx context.Context, goalID, uid uuid.UUID) error
}

type NotificationsRepositoryI interface {
	Create(ctx context.Context, n *entity.Notification) (*entity.Notification, error)
	// Lists user's notifications, newest first
	GetByUserID(ctx context.Context, uid uuid.UUID, limit int) ([]entity.Notification, error)
	// Marks notification as read, returns the updated row
	MarkRead(ctx context.Context, id, uid uuid.UUID) (*entity.Notification, error)
	Delete(ctx context.Context, id, uid uuid.UUID) error
}

type CheckinsRepositoryI interface {
	// Inserts or refreshes the schedule for (user, goal), returns the row
	Upsert(ctx context.Context, c *entity.Checkin) (*entity.Checkin, error)
	// Lists user's schedules, soonest next_at first
	GetUpcoming(ctx context.Context, uid uuid.UUID, limit int) ([]entity.Checkin, error)
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
