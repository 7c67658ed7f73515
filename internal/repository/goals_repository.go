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

type GoalsRepository struct {
	conn PgConnection
}

func NewGoalsRepo(cfg DBConfig) *GoalsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for goalsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for goalsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &GoalsRepository{
		conn: pool,
	}
}

func NewGoalsRepoWithConn(conn PgConnection) *GoalsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for goalsRepo: " + err.Error())
	}
	return &GoalsRepository{
		conn: conn,
	}
}

func (gr *GoalsRepository) Create(ctx context.Context, goal *entity.Goal) (uuid.UUID, error) {
	if goal == nil {
		return uuid.UUID{}, errors.New("goal is nil")
	}
	tx, err := gr.conn.Begin(ctx)
	if err != nil {
		return uuid.UUID{}, errors.New("starting goal creation tx error: " + err.Error())
	}
	defer tx.Rollback(ctx)
	var id uuid.UUID
	row := tx.QueryRow(ctx,
		`INSERT INTO goals (user_id, title, description, duration_weeks, checkin_frequency, status, progress)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id;`,
		goal.UserID,
		goal.Title,
		goal.Description,
		goal.DurationWeeks,
		goal.CheckinFrequency,
		goal.Status,
		goal.Progress,
	)
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return uuid.UUID{}, errorvalues.ErrOwnerNotFound
			}
		}
		return uuid.UUID{}, errors.New("creating goal db error: " + err.Error())
	}
	for _, c := range goal.Chunks {
		_, err = tx.Exec(ctx,
			`INSERT INTO goal_chunks (goal_id, week_index, title, description, target_date, completed)
			VALUES ($1, $2, $3, $4, $5, $6);`,
			id, c.WeekIndex, c.Title, c.Description, c.TargetDate, c.Completed,
		)
		if err != nil {
			return uuid.UUID{}, errors.New("creating goal chunk db error: " + err.Error())
		}
	}
	if err = tx.Commit(ctx); err != nil {
		return uuid.UUID{}, errors.New("committing goal creation error: " + err.Error())
	}
	return id, nil
}

func (gr *GoalsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error) {
	var goal entity.Goal
	goal.ID = id
	row := gr.conn.QueryRow(ctx,
		`SELECT user_id, title, description, duration_weeks, checkin_frequency, status, progress, created_at
		FROM goals WHERE id = $1;`, id)
	err := row.Scan(
		&goal.UserID,
		&goal.Title,
		&goal.Description,
		&goal.DurationWeeks,
		&goal.CheckinFrequency,
		&goal.Status,
		&goal.Progress,
		&goal.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrGoalNotFound
		}
		return nil, errors.New("getting goal by id error: " + err.Error())
	}
	chunks, err := gr.getChunks(ctx, id)
	if err != nil {
		return nil, err
	}
	goal.Chunks = chunks
	return &goal, nil
}

func (gr *GoalsRepository) GetByUserID(ctx context.Context, uid uuid.UUID, limit, offset int) ([]*entity.Goal, error) {
	goals := make([]*entity.Goal, 0)
	rows, err := gr.conn.Query(ctx,
		`SELECT id, user_id, title, description, duration_weeks, checkin_frequency, status, progress, created_at
		FROM goals WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3;`, uid, limit, offset)
	if err != nil {
		return nil, errors.New("getting goals by uid error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		g := entity.Goal{}
		err = rows.Scan(
			&g.ID,
			&g.UserID,
			&g.Title,
			&g.Description,
			&g.DurationWeeks,
			&g.CheckinFrequency,
			&g.Status,
			&g.Progress,
			&g.CreatedAt,
		)
		if err != nil {
			return nil, errors.New("unmarshalling goal error: " + err.Error())
		}
		goals = append(goals, &g)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning goals: " + rows.Err().Error())
	}
	for _, g := range goals {
		chunks, err := gr.getChunks(ctx, g.ID)
		if err != nil {
			return nil, err
		}
		g.Chunks = chunks
	}
	return goals, nil
}

func (gr *GoalsRepository) getChunks(ctx context.Context, goalID uuid.UUID) ([]entity.Chunk, error) {
	rows, err := gr.conn.Query(ctx,
		`SELECT week_index, title, description, target_date, completed
		FROM goal_chunks WHERE goal_id = $1 ORDER BY week_index ASC;`, goalID)
	if err != nil {
		return nil, errors.New("getting goal chunks error: " + err.Error())
	}
	defer rows.Close()
	chunks := make([]entity.Chunk, 0)
	for rows.Next() {
		c := entity.Chunk{}
		err = rows.Scan(&c.WeekIndex, &c.Title, &c.Description, &c.TargetDate, &c.Completed)
		if err != nil {
			return nil, errors.New("unmarshalling chunk error: " + err.Error())
		}
		chunks = append(chunks, c)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning chunks: " + rows.Err().Error())
	}
	return chunks, nil
}

func (gr *GoalsRepository) Update(ctx context.Context, goal *entity.Goal) error {
	ct, err := gr.conn.Exec(ctx,
		`UPDATE goals SET title = $1, description = $2, duration_weeks = $3, checkin_frequency = $4, status = $5, progress = $6
		WHERE id = $7;`,
		goal.Title,
		goal.Description,
		goal.DurationWeeks,
		goal.CheckinFrequency,
		goal.Status,
		goal.Progress,
		goal.ID,
	)
	if err != nil {
		return errors.New("error updating goal: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrGoalNotFound
	}
	return nil
}

func (gr *GoalsRepository) SetChunkCompleted(ctx context.Context, goalID uuid.UUID, weekIndex int, completed bool) error {
	ct, err := gr.conn.Exec(ctx,
		`UPDATE goal_chunks SET completed = $1 WHERE goal_id = $2 AND week_index = $3;`,
		completed, goalID, weekIndex,
	)
	if err != nil {
		return errors.New("error toggling chunk: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrChunkNotFound
	}
	return nil
}

func (gr *GoalsRepository) SetProgress(ctx context.Context, goalID uuid.UUID, progress int) error {
	ct, err := gr.conn.Exec(ctx, `UPDATE goals SET progress = $1 WHERE id = $2;`, progress, goalID)
	if err != nil {
		return errors.New("error updating progress: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrGoalNotFound
	}
	return nil
}

func (gr *GoalsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := gr.conn.Exec(ctx, `DELETE FROM goals WHERE id = $1;`, id)
	if err != nil {
		return errors.New("error deleting goal: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrGoalNotFound
	}
	return nil
}
