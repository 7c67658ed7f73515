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

type CheckinsRepository struct {
	conn PgConnection
}

func NewCheckinsRepo(cfg DBConfig) *CheckinsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for checkinsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for checkinsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &CheckinsRepository{
		conn: pool,
	}
}

func NewCheckinsRepoWithConn(conn PgConnection) *CheckinsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for checkinsRepo: " + err.Error())
	}
	return &CheckinsRepository{
		conn: conn,
	}
}

func (cr *CheckinsRepository) Upsert(ctx context.Context, c *entity.Checkin) (*entity.Checkin, error) {
	if c == nil {
		return nil, errors.New("checkin is nil")
	}
	row := cr.conn.QueryRow(ctx,
		`INSERT INTO checkins (user_id, goal_id, frequency, next_at) VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, goal_id) DO UPDATE SET frequency = $3, next_at = $4
		RETURNING id, created_at;`,
		c.UserID, c.GoalID, c.Frequency, c.NextAt,
	)
	if err := row.Scan(&c.ID, &c.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return nil, errorvalues.ErrGoalNotFound
			}
		}
		return nil, errors.New("upserting checkin db error: " + err.Error())
	}
	return c, nil
}

func (cr *CheckinsRepository) GetUpcoming(ctx context.Context, uid uuid.UUID, limit int) ([]entity.Checkin, error) {
	rows, err := cr.conn.Query(ctx,
		`SELECT id, user_id, goal_id, frequency, next_at, created_at
		FROM checkins WHERE user_id = $1 ORDER BY next_at ASC LIMIT $2;`,
		uid, limit,
	)
	if err != nil {
		return nil, errors.New("getting upcoming checkins error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.Checkin, 0)
	for rows.Next() {
		c := entity.Checkin{}
		err = rows.Scan(&c.ID, &c.UserID, &c.GoalID, &c.Frequency, &c.NextAt, &c.CreatedAt)
		if err != nil {
			return nil, errors.New("unmarshalling checkin error: " + err.Error())
		}
		result = append(result, c)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning checkins: " + rows.Err().Error())
	}
	return result, nil
}
