package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/habitgrid/internal/models"
)

const schema = `
CREATE TABLE IF NOT EXISTS habits (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	start_date TEXT NOT NULL,
	end_date TEXT NOT NULL,
	created_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS habit_days (
	habit_id TEXT NOT NULL REFERENCES habits(id) ON DELETE CASCADE,
	day TEXT NOT NULL,
	PRIMARY KEY (habit_id, day)
);
`

type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	if _, err := s.db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'habitgrid init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) AddHabit(habit models.Habit) error {
	return s.UpdateHabit(habit)
}

func (s *SQLiteStore) GetHabit(id string) (models.Habit, error) {
	row := s.db.QueryRow(`
		SELECT id, name, start_date, end_date, created_at
		FROM habits WHERE id = ?`, id)
	return s.scanHabit(row)
}

func (s *SQLiteStore) GetHabitByName(name string) (models.Habit, error) {
	row := s.db.QueryRow(`
		SELECT id, name, start_date, end_date, created_at
		FROM habits WHERE name = ?`, name)
	return s.scanHabit(row)
}

func (s *SQLiteStore) scanHabit(row *sql.Row) (models.Habit, error) {
	var h models.Habit
	var createdAt string

	err := row.Scan(&h.ID, &h.Name, &h.StartDate, &h.EndDate, &createdAt)
	if err == sql.ErrNoRows {
		return models.Habit{}, ErrNotFound
	}
	if err != nil {
		return models.Habit{}, err
	}

	h.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.Habit{}, fmt.Errorf("failed to parse created_at: %w", err)
	}

	h.CompletionDates, err = s.completionDays(h.ID)
	if err != nil {
		return models.Habit{}, err
	}
	h.Normalize()

	return h, nil
}

func (s *SQLiteStore) completionDays(habitID string) ([]string, error) {
	rows, err := s.db.Query(`
		SELECT day FROM habit_days WHERE habit_id = ? ORDER BY day`, habitID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var days []string
	for rows.Next() {
		var day string
		if err := rows.Scan(&day); err != nil {
			return nil, err
		}
		days = append(days, day)
	}
	return days, rows.Err()
}

func (s *SQLiteStore) GetAllHabits() ([]models.Habit, error) {
	rows, err := s.db.Query(`
		SELECT id, name, start_date, end_date, created_at
		FROM habits ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var habits []models.Habit
	for rows.Next() {
		var h models.Habit
		var createdAt string

		if err := rows.Scan(&h.ID, &h.Name, &h.StartDate, &h.EndDate, &createdAt); err != nil {
			return nil, err
		}

		h.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at for habit %s: %w", h.ID, err)
		}

		habits = append(habits, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range habits {
		habits[i].CompletionDates, err = s.completionDays(habits[i].ID)
		if err != nil {
			return nil, err
		}
		habits[i].Normalize()
	}

	return habits, nil
}

func (s *SQLiteStore) UpdateHabit(habit models.Habit) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO habits (id, name, start_date, end_date, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			start_date = excluded.start_date,
			end_date = excluded.end_date`,
		habit.ID, habit.Name, habit.StartDate, habit.EndDate,
		habit.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return err
	}

	// Completion days are replaced wholesale; the set is small (at most the
	// habit window) and this keeps toggle idempotence trivial.
	if _, err := tx.Exec(`DELETE FROM habit_days WHERE habit_id = ?`, habit.ID); err != nil {
		return err
	}
	for _, day := range habit.CompletionDates {
		if _, err := tx.Exec(`
			INSERT INTO habit_days (habit_id, day) VALUES (?, ?)
			ON CONFLICT(habit_id, day) DO NOTHING`, habit.ID, day); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) DeleteHabit(id string) error {
	result, err := s.db.Exec(`DELETE FROM habits WHERE id = ?`, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}
