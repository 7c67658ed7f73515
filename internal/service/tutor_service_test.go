package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/ascent/internal/error_values"
	"github.com/limbo/ascent/internal/service"
	"github.com/limbo/ascent/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTutorReply(t *testing.T) {
	goalsMock := &goalsRepoMock{state: stateSuccess}
	msgsMock := &messagesRepoMock{}
	s := service.NewTutorService(goalsMock, msgsMock)
	ctx := context.Background()
	t.Run("stores both sides of the exchange", func(t *testing.T) {
		reply, err := s.Reply(ctx, userID, goalID, "where do I start?")
		require.NoError(t, err)
		assert.Equal(t, entity.RoleAssistant, reply.Role)
		assert.NotEmpty(t, reply.Text)
		require.Equal(t, 2, len(msgsMock.msgs))
		assert.Equal(t, entity.RoleUser, msgsMock.msgs[0].Role)
		assert.Equal(t, "where do I start?", msgsMock.msgs[0].Text)
		assert.Equal(t, entity.RoleAssistant, msgsMock.msgs[1].Role)
	})
	t.Run("stuck keyword changes the script", func(t *testing.T) {
		msgsMock.msgs = nil
		reply, err := s.Reply(ctx, userID, goalID, "I'm stuck on this part")
		require.NoError(t, err)
		assert.NotEmpty(t, reply.Text)
	})
	t.Run("wrong owner", func(t *testing.T) {
		goalsMock.state = stateWrongOwner
		_, err := s.Reply(ctx, userID, goalID, "hello")
		assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
	})
	t.Run("goal not found", func(t *testing.T) {
		goalsMock.state = stateGoalNotFoundError
		_, err := s.Reply(ctx, userID, goalID, "hello")
		assert.ErrorIs(t, err, errorvalues.ErrGoalNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		goalsMock.state = stateSuccess
		msgsMock.state = stateDBError
		_, err := s.Reply(ctx, userID, goalID, "hello")
		assert.Error(t, err)
		msgsMock.state = stateSuccess
	})
}

// The scripted replies are keyed off the goal's domain and a couple of
// phrases in the user's message. Pin down the branch selection without
// asserting whole templates.
func TestTutorScript(t *testing.T) {
	goalsMock := &goalsRepoMock{state: stateSuccess}
	msgsMock := &messagesRepoMock{}
	s := service.NewTutorService(goalsMock, msgsMock)
	ctx := context.Background()
	dsGoal := copyGoal(&testGoal)
	dsGoal.Title = "Become a Data Scientist"
	goalsMock.created = dsGoal
	testCases := []struct {
		Name     string
		Text     string
		Expected string
	}{
		{"stuck branch", "this is difficult", "facing challenges"},
		{"progress branch", "how am i doing?", "track your progress"},
		{"default branch", "hello", "personalized guidance"},
	}
	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			msgsMock.msgs = nil
			reply, err := s.Reply(ctx, userID, goalID, tc.Text)
			require.NoError(t, err)
			assert.True(t, strings.Contains(reply.Text, tc.Expected),
				"reply %q misses %q", reply.Text, tc.Expected)
		})
	}
}

func TestTutorHistory(t *testing.T) {
	goalsMock := &goalsRepoMock{state: stateSuccess}
	msgsMock := &messagesRepoMock{
		msgs: []entity.Message{
			{ID: 1, UserID: userID, GoalID: goalID, Role: entity.RoleUser, Text: "hi"},
			{ID: 2, UserID: userID, GoalID: goalID, Role: entity.RoleAssistant, Text: "hello"},
		},
	}
	s := service.NewTutorService(goalsMock, msgsMock)
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		msgs, err := s.History(ctx, userID, goalID)
		assert.NoError(t, err)
		assert.Equal(t, 2, len(msgs))
	})
	t.Run("wrong owner", func(t *testing.T) {
		goalsMock.state = stateWrongOwner
		_, err := s.History(ctx, userID, goalID)
		assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
	})
	t.Run("goal not found", func(t *testing.T) {
		goalsMock.state = stateGoalNotFoundError
		_, err := s.History(ctx, uuid.New(), goalID)
		assert.ErrorIs(t, err, errorvalues.ErrGoalNotFound)
	})
}
