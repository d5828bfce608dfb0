package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/priyasinghal/skillpath/internal/db"
	"github.com/priyasinghal/skillpath/internal/domain"
)

// SQLiteAuthSessionRepo implements AuthSessionRepo using a SQLite database.
type SQLiteAuthSessionRepo struct {
	db db.DBTX
}

// NewSQLiteAuthSessionRepo creates a new SQLiteAuthSessionRepo.
func NewSQLiteAuthSessionRepo(conn db.DBTX) *SQLiteAuthSessionRepo {
	return &SQLiteAuthSessionRepo{db: conn}
}

func (r *SQLiteAuthSessionRepo) Create(ctx context.Context, s *domain.AuthSession) error {
	query := `INSERT INTO auth_sessions (id, user_id, created_at, expires_at)
		VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.UserID,
		formatTime(s.CreatedAt),
		formatTime(s.ExpiresAt),
	)
	if err != nil {
		return fmt.Errorf("inserting auth session: %w", err)
	}
	return nil
}

func (r *SQLiteAuthSessionRepo) GetByID(ctx context.Context, id string) (*domain.AuthSession, error) {
	query := `SELECT id, user_id, created_at, expires_at FROM auth_sessions WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	var s domain.AuthSession
	var createdAt, expiresAt string
	err := row.Scan(&s.ID, &s.UserID, &createdAt, &expiresAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("auth session: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning auth session: %w", err)
	}
	s.CreatedAt = parseTime(createdAt)
	s.ExpiresAt = parseTime(expiresAt)
	return &s, nil
}

func (r *SQLiteAuthSessionRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM auth_sessions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting auth session: %w", err)
	}
	return nil
}

func (r *SQLiteAuthSessionRepo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM auth_sessions WHERE expires_at < ?`, formatTime(now))
	if err != nil {
		return 0, fmt.Errorf("deleting expired auth sessions: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting deleted auth sessions: %w", err)
	}
	return n, nil
}
