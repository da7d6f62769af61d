package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/tempo/internal/domain"
)

// itemColumns is the canonical SELECT column list for items.
const itemColumns = `id, title, notes, kind, status, priority, color,
		start_at, end_at, all_day, completed_at, created_at, updated_at`

// SQLiteItemRepo implements ItemRepo using a SQLite database.
type SQLiteItemRepo struct {
	db *sql.DB
}

// NewSQLiteItemRepo creates a new SQLiteItemRepo.
func NewSQLiteItemRepo(db *sql.DB) *SQLiteItemRepo {
	return &SQLiteItemRepo{db: db}
}

func (r *SQLiteItemRepo) Create(ctx context.Context, i *domain.Item) error {
	query := `INSERT INTO items (id, title, notes, kind, status, priority, color,
		start_at, end_at, all_day, completed_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		i.ID,
		i.Title,
		i.Notes,
		string(i.Kind),
		string(i.Status),
		string(i.Priority),
		i.Color,
		nullableTimeToString(i.StartAt, time.RFC3339),
		nullableTimeToString(i.EndAt, time.RFC3339),
		boolToInt(i.AllDay),
		nullableTimeToString(i.CompletedAt, time.RFC3339),
		i.CreatedAt.UTC().Format(time.RFC3339),
		i.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting item: %w", err)
	}
	return nil
}

func (r *SQLiteItemRepo) GetByID(ctx context.Context, id string) (*domain.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanItem(row)
}

func (r *SQLiteItemRepo) ListRange(ctx context.Context, from, to time.Time) ([]*domain.Item, error) {
	// Half-open intersection test. End-less all-day items occupy the
	// calendar day of their start, so their effective end is start + 1 day.
	query := `SELECT ` + itemColumns + ` FROM items
		WHERE start_at IS NOT NULL
		  AND datetime(start_at) < datetime(?)
		  AND datetime(COALESCE(end_at, datetime(start_at, '+1 day'))) > datetime(?)
		ORDER BY start_at, id`
	rows, err := r.db.QueryContext(ctx, query,
		to.UTC().Format(time.RFC3339), from.UTC().Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("listing items in range: %w", err)
	}
	defer rows.Close()
	return r.scanItems(rows)
}

func (r *SQLiteItemRepo) ListAll(ctx context.Context, includeClosed bool) ([]*domain.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items ORDER BY created_at, id`
	if !includeClosed {
		query = `SELECT ` + itemColumns + ` FROM items WHERE status = 'open' ORDER BY created_at, id`
	}
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	defer rows.Close()
	return r.scanItems(rows)
}

func (r *SQLiteItemRepo) Update(ctx context.Context, i *domain.Item) error {
	query := `UPDATE items SET title = ?, notes = ?, kind = ?, status = ?, priority = ?,
		color = ?, start_at = ?, end_at = ?, all_day = ?, completed_at = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		i.Title,
		i.Notes,
		string(i.Kind),
		string(i.Status),
		string(i.Priority),
		i.Color,
		nullableTimeToString(i.StartAt, time.RFC3339),
		nullableTimeToString(i.EndAt, time.RFC3339),
		boolToInt(i.AllDay),
		nullableTimeToString(i.CompletedAt, time.RFC3339),
		i.UpdatedAt.UTC().Format(time.RFC3339),
		i.ID,
	)
	if err != nil {
		return fmt.Errorf("updating item: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating item: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("item %s: %w", i.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteItemRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting item: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting item: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("item %s: %w", id, ErrNotFound)
	}
	return nil
}

// scanItem scans a single item from a *sql.Row.
func (r *SQLiteItemRepo) scanItem(row *sql.Row) (*domain.Item, error) {
	var i domain.Item
	var kindStr, statusStr, priorityStr string
	var startAtStr, endAtStr, completedAtStr sql.NullString
	var allDayInt int
	var createdAtStr, updatedAtStr string

	err := row.Scan(
		&i.ID, &i.Title, &i.Notes, &kindStr, &statusStr, &priorityStr, &i.Color,
		&startAtStr, &endAtStr, &allDayInt, &completedAtStr, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("item: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning item: %w", err)
	}

	return r.populateItem(&i, kindStr, statusStr, priorityStr, startAtStr, endAtStr, completedAtStr, allDayInt, createdAtStr, updatedAtStr)
}

// scanItems scans multiple items from *sql.Rows.
func (r *SQLiteItemRepo) scanItems(rows *sql.Rows) ([]*domain.Item, error) {
	var items []*domain.Item
	for rows.Next() {
		var i domain.Item
		var kindStr, statusStr, priorityStr string
		var startAtStr, endAtStr, completedAtStr sql.NullString
		var allDayInt int
		var createdAtStr, updatedAtStr string

		err := rows.Scan(
			&i.ID, &i.Title, &i.Notes, &kindStr, &statusStr, &priorityStr, &i.Color,
			&startAtStr, &endAtStr, &allDayInt, &completedAtStr, &createdAtStr, &updatedAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning item row: %w", err)
		}

		item, err := r.populateItem(&i, kindStr, statusStr, priorityStr, startAtStr, endAtStr, completedAtStr, allDayInt, createdAtStr, updatedAtStr)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating items: %w", err)
	}
	return items, nil
}

// populateItem fills in parsed fields on an Item after scanning raw values.
func (r *SQLiteItemRepo) populateItem(
	i *domain.Item,
	kindStr, statusStr, priorityStr string,
	startAtStr, endAtStr, completedAtStr sql.NullString,
	allDayInt int,
	createdAtStr, updatedAtStr string,
) (*domain.Item, error) {
	i.Kind = domain.ItemKind(kindStr)
	i.Status = domain.ItemStatus(statusStr)
	i.Priority = domain.Priority(priorityStr)
	i.AllDay = intToBool(allDayInt)

	i.StartAt = parseNullableTime(startAtStr, time.RFC3339)
	i.EndAt = parseNullableTime(endAtStr, time.RFC3339)
	i.CompletedAt = parseNullableTime(completedAtStr, time.RFC3339)

	var parseErr error
	i.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	i.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}

	return i, nil
}
