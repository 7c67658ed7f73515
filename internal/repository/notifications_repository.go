package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/limbo/ascent/internal/error_values"
	"github.com/limbo/ascent/pkg/cleanup"
	"github.com/limbo/ascent/pkg/entity"
)

type NotificationsRepository struct {
	conn PgConnection
}

func NewNotificationsRepo(cfg DBConfig) *NotificationsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for notificationsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for notificationsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &NotificationsRepository{
		conn: pool,
	}
}

func NewNotificationsRepoWithConn(conn PgConnection) *NotificationsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for notificationsRepo: " + err.Error())
	}
	return &NotificationsRepository{
		conn: conn,
	}
}

func (nr *NotificationsRepository) Create(ctx context.Context, n *entity.Notification) (*entity.Notification, error) {
	if n == nil {
		return nil, errors.New("notification is nil")
	}
	row := nr.conn.QueryRow(ctx,
		`INSERT INTO notifications (user_id, goal_id, type, title, message)
		VALUES ($1, $2, $3, $4, $5) RETURNING id, read, created_at;`,
		n.UserID, n.GoalID, n.Type, n.Title, n.Message,
	)
	if err := row.Scan(&n.ID, &n.Read, &n.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return nil, errorvalues.ErrGoalNotFound
			}
		}
		return nil, errors.New("creating notification db error: " + err.Error())
	}
	return n, nil
}

func (nr *NotificationsRepository) GetByUserID(ctx context.Context, uid uuid.UUID, limit int) ([]entity.Notification, error) {
	rows, err := nr.conn.Query(ctx,
		`SELECT id, user_id, goal_id, type, title, message, read, created_at
		FROM notifications WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2;`,
		uid, limit,
	)
	if err != nil {
		return nil, errors.New("getting notifications error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.Notification, 0)
	for rows.Next() {
		n := entity.Notification{}
		err = rows.Scan(&n.ID, &n.UserID, &n.GoalID, &n.Type, &n.Title, &n.Message, &n.Read, &n.CreatedAt)
		if err != nil {
			return nil, errors.New("unmarshalling notification error: " + err.Error())
		}
		result = append(result, n)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning notifications: " + rows.Err().Error())
	}
	return result, nil
}

func (nr *NotificationsRepository) MarkRead(ctx context.Context, id, uid uuid.UUID) (*entity.Notification, error) {
	var n entity.Notification
	row := nr.conn.QueryRow(ctx,
		`UPDATE notifications SET read = TRUE WHERE id = $1 AND user_id = $2
		RETURNING id, user_id, goal_id, type, title, message, read, created_at;`,
		id, uid,
	)
	err := row.Scan(&n.ID, &n.UserID, &n.GoalID, &n.Type, &n.Title, &n.Message, &n.Read, &n.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrNotificationNotFound
		}
		return nil, errors.New("marking notification read error: " + err.Error())
	}
	return &n, nil
}

func (nr *NotificationsRepository) Delete(ctx context.Context, id, uid uuid.UUID) error {
	ct, err := nr.conn.Exec(ctx, `DELETE FROM notifications WHERE id = $1 AND user_id = $2;`, id, uid)
	if err != nil {
		return errors.New("deleting notification error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrNotificationNotFound
	}
	return nil
}
