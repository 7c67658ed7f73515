package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/ascent/internal/error_values"
	"github.com/limbo/ascent/internal/repository"
	"github.com/limbo/ascent/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
)

func TestCreateMessage(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewMessagesRepoWithConn(mock)
	msg := entity.Message{
		UserID: userID,
		GoalID: uuid.New(),
		Role:   entity.RoleUser,
		Text:   "hello there",
	}
	query := regexp.QuoteMeta(`INSERT INTO messages (user_id, goal_id, role, text) VALUES ($1, $2, $3, $4) RETURNING id, created_at;`)
	ctx := context.Background()
	t.Run("successfully created", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(msg.UserID, msg.GoalID, msg.Role, msg.Text).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(1, time.Now()))
		result, err := repo.Create(ctx, &msg)
		assert.NoError(t, err)
		assert.Equal(t, 1, result.ID)
		assert.False(t, result.CreatedAt.IsZero())
	})
	t.Run("FK violation", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(msg.UserID, msg.GoalID, msg.Role, msg.Text).
			WillReturnError(&pgconn.PgError{Code: "23503"})
		_, err := repo.Create(ctx, &msg)
		assert.ErrorIs(t, err, errorvalues.ErrGoalNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(msg.UserID, msg.GoalID, msg.Role, msg.Text).
			WillReturnError(errors.New("db error"))
		_, err := repo.Create(ctx, &msg)
		assert.Error(t, err)
	})
}

func TestGetMessagesByGoalAndUser(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewMessagesRepoWithConn(mock)
	goalID := uuid.New()
	msgs := []entity.Message{
		{ID: 1, UserID: userID, GoalID: goalID, Role: entity.RoleUser, Text: "hi", CreatedAt: time.Now()},
		{ID: 2, UserID: userID, GoalID: goalID, Role: entity.RoleAssistant, Text: "hello", CreatedAt: time.Now().Add(time.Second)},
	}
	query := regexp.QuoteMeta(`SELECT id, user_id, goal_id, role, text, created_at
		FROM messages WHERE goal_id = $1 AND user_id = $2 ORDER BY created_at ASC;`)
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "user_id", "goal_id", "role", "text", "created_at"})
		for _, m := range msgs {
			rows.AddRow(m.ID, m.UserID, m.GoalID, m.Role, m.Text, m.CreatedAt)
		}
		mock.ExpectQuery(query).
			WithArgs(goalID, userID).
			WillReturnRows(rows)
		result, err := repo.GetByGoalAndUser(ctx, goalID, userID)
		assert.NoError(t, err)
		assert.Equal(t, msgs, result)
	})
	t.Run("empty history", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(goalID, userID).
			WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "goal_id", "role", "text", "created_at"}))
		result, err := repo.GetByGoalAndUser(ctx, goalID, userID)
		assert.NoError(t, err)
		assert.Empty(t, result)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(goalID, userID).
			WillReturnError(errors.New("db error"))
		_, err := repo.GetByGoalAndUser(ctx, goalID, userID)
		assert.Error(t, err)
	})
}

func TestDeleteMessagesByGoalAndUser(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewMessagesRepoWithConn(mock)
	goalID := uuid.New()
	query := regexp.QuoteMeta(`DELETE FROM messages WHERE goal_id = $1 AND user_id = $2;`)
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(goalID, userID).
			WillReturnResult(pgxmock.NewResult("DELETE", 2))
		err := repo.DeleteByGoalAndUser(ctx, goalID, userID)
		assert.NoError(t, err)
	})
	t.Run("nothing to delete is fine", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(goalID, userID).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))
		err := repo.DeleteByGoalAndUser(ctx, goalID, userID)
		assert.NoError(t, err)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(goalID, userID).
			WillReturnError(errors.New("db error"))
		err := repo.DeleteByGoalAndUser(ctx, goalID, userID)
		assert.Error(t, err)
	})
}
