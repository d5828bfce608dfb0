package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/priyasinghal/skillpath/internal/db"
	"github.com/priyasinghal/skillpath/internal/domain"
)

// SQLitePlanRepo implements PlanRepo using a SQLite database. Roadmap steps
// are stored as a self-describing JSON blob so that plans round-trip intact
// regardless of later schema evolution.
type SQLitePlanRepo struct {
	db db.DBTX
}

// NewSQLitePlanRepo creates a new SQLitePlanRepo.
func NewSQLitePlanRepo(conn db.DBTX) *SQLitePlanRepo {
	return &SQLitePlanRepo{db: conn}
}

func (r *SQLitePlanRepo) Create(ctx context.Context, p *domain.RoadmapPlan) error {
	stepsJSON, err := json.Marshal(p.Steps)
	if err != nil {
		return fmt.Errorf("marshaling roadmap steps: %w", err)
	}

	query := `INSERT INTO learning_plans (id, user_id, goal, level, hours_per_week, duration_weeks, steps_json, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		p.ID,
		p.UserID,
		p.Goal,
		p.Level,
		p.HoursPerWeek,
		p.DurationWeeks,
		string(stepsJSON),
		formatTime(p.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting learning plan: %w", err)
	}
	return nil
}

func (r *SQLitePlanRepo) GetByID(ctx context.Context, id, userID string) (*domain.RoadmapPlan, error) {
	query := `SELECT id, user_id, goal, level, hours_per_week, duration_weeks, steps_json, created_at
		FROM learning_plans WHERE id = ? AND user_id = ?`
	row := r.db.QueryRowContext(ctx, query, id, userID)

	p, err := scanPlan(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("learning plan: %w", ErrNotFound)
		}
		return nil, err
	}
	return p, nil
}

func (r *SQLitePlanRepo) ListByUser(ctx context.Context, userID string) ([]*domain.RoadmapPlan, error) {
	query := `SELECT id, user_id, goal, level, hours_per_week, duration_weeks, steps_json, created_at
		FROM learning_plans WHERE user_id = ? ORDER BY created_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing learning plans: %w", err)
	}
	defer rows.Close()

	var out []*domain.RoadmapPlan
	for rows.Next() {
		p, err := scanPlan(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func scanPlan(scan func(dest ...any) error) (*domain.RoadmapPlan, error) {
	var p domain.RoadmapPlan
	var stepsJSON, createdAt string
	err := scan(&p.ID, &p.UserID, &p.Goal, &p.Level, &p.HoursPerWeek, &p.DurationWeeks, &stepsJSON, &createdAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning learning plan: %w", err)
	}
	if err := json.Unmarshal([]byte(stepsJSON), &p.Steps); err != nil {
		return nil, fmt.Errorf("unmarshaling roadmap steps: %w", err)
	}
	p.CreatedAt = parseTime(createdAt)
	return &p, nil
}
