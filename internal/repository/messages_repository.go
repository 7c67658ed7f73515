package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/limbo/ascent/internal/error_values"
	"github.com/limbo/ascent/pkg/cleanup"
	"github.com/limbo/ascent/pkg/entity"
)

type MessagesRepository struct {
	conn PgConnection
}

func NewMessagesRepo(cfg DBConfig) *MessagesRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for messagesRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for messagesRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &MessagesRepository{
		conn: pool,
	}
}

func NewMessagesRepoWithConn(conn PgConnection) *MessagesRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for messagesRepo: " + err.Error())
	}
	return &MessagesRepository{
		conn: conn,
	}
}

func (mr *MessagesRepository) Create(ctx context.Context, msg *entity.Message) (*entity.Message, error) {
	if msg == nil {
		return nil, errors.New("message is nil")
	}
	row := mr.conn.QueryRow(ctx,
		`INSERT INTO messages (user_id, goal_id, role, text) VALUES ($1, $2, $3, $4) RETURNING id, created_at;`,
		msg.UserID, msg.GoalID, msg.Role, msg.Text,
	)
	if err := row.Scan(&msg.ID, &msg.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return nil, errorvalues.ErrGoalNotFound
			}
		}
		return nil, errors.New("creating message db error: " + err.Error())
	}
	return msg, nil
}

func (mr *MessagesRepository) GetByGoalAndUser(ctx context.Context, goalID, uid uuid.UUID) ([]entity.Message, error) {
	rows, err := mr.conn.Query(ctx,
		`SELECT id, user_id, goal_id, role, text, created_at
		FROM messages WHERE goal_id = $1 AND user_id = $2 ORDER BY created_at ASC;`,
		goalID, uid,
	)
	if err != nil {
		return nil, errors.New("getting messages error: " + err.Error())
	}
	defer rows.Close()
	msgs := make([]entity.Message, 0)
	for rows.Next() {
		m := entity.Message{}
		err = rows.Scan(&m.ID, &m.UserID, &m.GoalID, &m.Role, &m.Text, &m.CreatedAt)
		if err != nil {
			return nil, errors.New("unmarshalling message error: " + err.Error())
		}
		msgs = append(msgs, m)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning messages: " + rows.Err().Error())
	}
	return msgs, nil
}

func (mr *MessagesRepository) DeleteByGoalAndUser(ctx context.Context, goalID, uid uuid.UUID) error {
	_, err := mr.conn.Exec(ctx, `DELETE FROM messages WHERE goal_id = $1 AND user_id = $2;`, goalID, uid)
	if err != nil {
		return errors.New("deleting messages error: " + err.Error())
	}
	return nil
}
