// Package postgres provides a Postgres-backed reservation storage
// implementation. Overlap-freedom is enforced by the table's range-exclusion
// constraint at insert time; status transitions are single-statement
// conditional updates, so no lock is ever held in-process.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/louisbranch/booking.space/internal/platform/storage/pgmigrate"
	"github.com/louisbranch/booking.space/internal/services/reservation/storage"
	"github.com/louisbranch/booking.space/internal/services/reservation/storage/postgres/migrations"
)

const (
	reservationSchema = "rsvp"
	reservationTable  = "reservations"

	// SQLSTATE for exclusion_violation.
	exclusionViolationCode = pq.ErrorCode("23P01")

	defaultPageSize   = 10
	queryStreamBuffer = 16
)

// reservationColumns projects the timespan range into plain timestamptz
// bounds so rows scan without range-type support in the driver.
const reservationColumns = `id, user_id, resource_id,
	lower(timespan) AS start_time, upper(timespan) AS end_time,
	status, note`

// Config holds Postgres connection parameters for the reservation store.
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	MaxConns int
}

// URL renders the connection string for the configured database.
func (c Config) URL() string {
	sslMode := c.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, sslMode)
}

// Store persists reservation state in Postgres.
type Store struct {
	db *sqlx.DB
}

// Open connects to Postgres and applies embedded migrations.
func Open(cfg Config) (*Store, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("database host is required")
	}
	if cfg.DBName == "" {
		return nil, fmt.Errorf("database name is required")
	}

	db, err := sqlx.Open("postgres", cfg.URL())
	if err != nil {
		return nil, fmt.Errorf("open postgres db: %w", err)
	}
	if cfg.MaxConns > 0 {
		db.SetMaxOpenConns(cfg.MaxConns)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres db: %w", err)
	}
	if err := pgmigrate.ApplyMigrations(db.DB, migrations.FS, ""); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{db: db}, nil
}

// NewStore wraps an existing connection pool, primarily for tests.
func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db}
}

// Close closes the connection pool.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

type reservationRow struct {
	ID         int64          `db:"id"`
	UserID     string         `db:"user_id"`
	ResourceID string         `db:"resource_id"`
	Start      time.Time      `db:"start_time"`
	End        time.Time      `db:"end_time"`
	Status     string         `db:"status"`
	Note       sql.NullString `db:"note"`
}

func (r reservationRow) toDomain() storage.Reservation {
	return storage.Reservation{
		ID:         r.ID,
		UserID:     r.UserID,
		ResourceID: r.ResourceID,
		Start:      r.Start.UTC(),
		End:        r.End.UTC(),
		Status:     statusFromColumn(r.Status),
		Note:       r.Note.String,
	}
}

// Create validates and inserts a pending reservation. The exclusion
// constraint rejects overlaps atomically, so there is no pre-check here; a
// violation is translated into *storage.ConflictError with the parsed
// colliding windows.
func (s *Store) Create(ctx context.Context, rsvp storage.Reservation) (storage.Reservation, error) {
	if err := ctx.Err(); err != nil {
		return storage.Reservation{}, err
	}
	if s == nil || s.db == nil {
		return storage.Reservation{}, fmt.Errorf("storage is not configured")
	}
	if err := rsvp.Validate(); err != nil {
		return storage.Reservation{}, err
	}

	status := rsvp.Status
	if status == storage.StatusUnknown {
		status = storage.StatusPending
	}

	var id int64
	err := s.db.GetContext(ctx, &id,
		`INSERT INTO rsvp.reservations (user_id, resource_id, timespan, status, note)
		 VALUES ($1, $2, tstzrange($3, $4, '[)'), $5::rsvp.reservation_status, $6)
		 RETURNING id`,
		rsvp.UserID,
		rsvp.ResourceID,
		rsvp.Start.UTC(),
		rsvp.End.UTC(),
		statusToColumn(status),
		rsvp.Note,
	)
	if err != nil {
		return storage.Reservation{}, translateError(err, "create reservation")
	}

	rsvp.ID = id
	rsvp.Status = status
	rsvp.Start = rsvp.Start.UTC()
	rsvp.End = rsvp.End.UTC()
	return rsvp, nil
}

// Confirm transitions a reservation from pending to confirmed as one
// conditional statement. Concurrent confirms on the same id observe exactly
// one winner; the loser gets ErrNotFound.
func (s *Store) Confirm(ctx context.Context, id int64) (storage.Reservation, error) {
	if err := ctx.Err(); err != nil {
		return storage.Reservation{}, err
	}
	if s == nil || s.db == nil {
		return storage.Reservation{}, fmt.Errorf("storage is not configured")
	}

	var row reservationRow
	err := s.db.GetContext(ctx, &row,
		`UPDATE rsvp.reservations
		    SET status = 'confirmed'
		  WHERE id = $1 AND status = 'pending'
		 RETURNING `+reservationColumns,
		id,
	)
	if err != nil {
		return storage.Reservation{}, translateError(err, "confirm reservation")
	}
	return row.toDomain(), nil
}

// UpdateNote replaces the reservation note unconditionally.
func (s *Store) UpdateNote(ctx context.Context, id int64, note string) (storage.Reservation, error) {
	if err := ctx.Err(); err != nil {
		return storage.Reservation{}, err
	}
	if s == nil || s.db == nil {
		return storage.Reservation{}, fmt.Errorf("storage is not configured")
	}

	var row reservationRow
	err := s.db.GetContext(ctx, &row,
		`UPDATE rsvp.reservations
		    SET note = $1
		  WHERE id = $2
		 RETURNING `+reservationColumns,
		note,
		id,
	)
	if err != nil {
		return storage.Reservation{}, translateError(err, "update reservation note")
	}
	return row.toDomain(), nil
}

// Cancel marks the reservation cancelled. Cancelled rows fall outside the
// partial exclusion constraint and no longer block new reservations for the
// resource.
func (s *Store) Cancel(ctx context.Context, id int64) (storage.Reservation, error) {
	if err := ctx.Err(); err != nil {
		return storage.Reservation{}, err
	}
	if s == nil || s.db == nil {
		return storage.Reservation{}, fmt.Errorf("storage is not configured")
	}

	var row reservationRow
	err := s.db.GetContext(ctx, &row,
		`UPDATE rsvp.reservations
		    SET status = 'blocked'
		  WHERE id = $1
		 RETURNING `+reservationColumns,
		id,
	)
	if err != nil {
		return storage.Reservation{}, translateError(err, "cancel reservation")
	}
	return row.toDomain(), nil
}

// Get returns one reservation by id.
func (s *Store) Get(ctx context.Context, id int64) (storage.Reservation, error) {
	if err := ctx.Err(); err != nil {
		return storage.Reservation{}, err
	}
	if s == nil || s.db == nil {
		return storage.Reservation{}, fmt.Errorf("storage is not configured")
	}

	var row reservationRow
	err := s.db.GetContext(ctx, &row,
		`SELECT `+reservationColumns+`
		   FROM rsvp.reservations
		  WHERE id = $1`,
		id,
	)
	if err != nil {
		return storage.Reservation{}, translateError(err, "get reservation")
	}
	return row.toDomain(), nil
}

// Query returns one offset page of reservations whose window intersects the
// requested range and whose status matches. Empty user or resource ids are
// wildcards.
func (s *Store) Query(ctx context.Context, q storage.Query) ([]storage.Reservation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.db == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	if err := q.Validate(); err != nil {
		return nil, err
	}

	sqlStr, args := buildQuerySQL(q)
	var rows []reservationRow
	if err := s.db.SelectContext(ctx, &rows, sqlStr, args...); err != nil {
		return nil, translateError(err, "query reservations")
	}

	reservations := make([]storage.Reservation, 0, len(rows))
	for _, row := range rows {
		reservations = append(reservations, row.toDomain())
	}
	return reservations, nil
}

// QueryStream streams matching reservations through a bounded channel. The
// producer stops issuing row work as soon as ctx is cancelled; a mid-stream
// failure is delivered as the terminal element before the channel closes.
func (s *Store) QueryStream(ctx context.Context, q storage.Query) <-chan storage.QueryResult {
	results := make(chan storage.QueryResult, queryStreamBuffer)
	go func() {
		defer close(results)

		emit := func(res storage.QueryResult) bool {
			select {
			case results <- res:
				return true
			case <-ctx.Done():
				return false
			}
		}

		if s == nil || s.db == nil {
			emit(storage.QueryResult{Err: fmt.Errorf("storage is not configured")})
			return
		}
		if err := q.Validate(); err != nil {
			emit(storage.QueryResult{Err: err})
			return
		}

		sqlStr, args := buildQuerySQL(q)
		rows, err := s.db.QueryxContext(ctx, sqlStr, args...)
		if err != nil {
			emit(storage.QueryResult{Err: translateError(err, "query reservations")})
			return
		}
		defer rows.Close()

		for rows.Next() {
			var row reservationRow
			if err := rows.StructScan(&row); err != nil {
				emit(storage.QueryResult{Err: translateError(err, "scan reservation")})
				return
			}
			if !emit(storage.QueryResult{Reservation: row.toDomain()}) {
				return
			}
		}
		if err := rows.Err(); err != nil {
			emit(storage.QueryResult{Err: translateError(err, "query reservations")})
		}
	}()
	return results
}

func buildQuerySQL(q storage.Query) (string, []any) {
	status := q.Status
	if status == storage.StatusUnknown {
		status = storage.StatusPending
	}
	page := int(q.Page)
	if page < 1 {
		page = 1
	}
	pageSize := int(q.PageSize)
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	order := "ASC"
	if q.Desc {
		order = "DESC"
	}

	sqlStr := `SELECT ` + reservationColumns + `
	   FROM rsvp.reservations
	  WHERE status = $1::rsvp.reservation_status
	    AND timespan && tstzrange($2, $3, '[)')
	    AND ($4::text = '' OR user_id = $4)
	    AND ($5::text = '' OR resource_id = $5)
	  ORDER BY id ` + order + `
	  LIMIT $6 OFFSET $7`
	args := []any{
		statusToColumn(status),
		q.Start.UTC(),
		q.End.UTC(),
		q.UserID,
		q.ResourceID,
		pageSize,
		(page - 1) * pageSize,
	}
	return sqlStr, args
}

// Filter returns one keyset page ordered by id and a pager whose Prev/Next
// are the first and last ids of the page. Total is the full matching count.
func (s *Store) Filter(ctx context.Context, f storage.Filter) (storage.Pager, []storage.Reservation, error) {
	if err := ctx.Err(); err != nil {
		return storage.Pager{}, nil, err
	}
	if s == nil || s.db == nil {
		return storage.Pager{}, nil, fmt.Errorf("storage is not configured")
	}

	status := f.Status
	if status == storage.StatusUnknown {
		status = storage.StatusPending
	}
	pageSize := int(f.PageSize)
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	order := "ASC"
	cursorCmp := ">"
	if f.Desc {
		order = "DESC"
		cursorCmp = "<"
	}

	const matchWhere = `status = $1::rsvp.reservation_status
	    AND ($2::text = '' OR user_id = $2)
	    AND ($3::text = '' OR resource_id = $3)`

	var total int64
	err := s.db.GetContext(ctx, &total,
		`SELECT COUNT(*) FROM rsvp.reservations WHERE `+matchWhere,
		statusToColumn(status), f.UserID, f.ResourceID,
	)
	if err != nil {
		return storage.Pager{}, nil, translateError(err, "count reservations")
	}

	var rows []reservationRow
	if f.Cursor > 0 {
		err = s.db.SelectContext(ctx, &rows,
			`SELECT `+reservationColumns+`
			   FROM rsvp.reservations
			  WHERE `+matchWhere+`
			    AND id `+cursorCmp+` $4
			  ORDER BY id `+order+`
			  LIMIT $5`,
			statusToColumn(status), f.UserID, f.ResourceID, f.Cursor, pageSize,
		)
	} else {
		err = s.db.SelectContext(ctx, &rows,
			`SELECT `+reservationColumns+`
			   FROM rsvp.reservations
			  WHERE `+matchWhere+`
			  ORDER BY id `+order+`
			  LIMIT $4`,
			statusToColumn(status), f.UserID, f.ResourceID, pageSize,
		)
	}
	if err != nil {
		return storage.Pager{}, nil, translateError(err, "filter reservations")
	}

	reservations := make([]storage.Reservation, 0, len(rows))
	for _, row := range rows {
		reservations = append(reservations, row.toDomain())
	}

	pager := storage.Pager{Total: total}
	if len(reservations) > 0 {
		pager.Prev = reservations[0].ID
		pager.Next = reservations[len(reservations)-1].ID
	}
	return pager, reservations, nil
}

// translateError classifies driver failures into the domain taxonomy: an
// exclusion violation on the reservations table becomes a conflict carrying
// the parsed windows, a zero-row result becomes ErrNotFound, and anything
// else is wrapped as a database error.
func translateError(err error, op string) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		if pqErr.Code == exclusionViolationCode &&
			pqErr.Schema == reservationSchema &&
			pqErr.Table == reservationTable {
			return &storage.ConflictError{Info: storage.ParseConflictInfo(pqErr.Detail)}
		}
	}
	if errors.Is(err, sql.ErrNoRows) {
		return storage.ErrNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}
