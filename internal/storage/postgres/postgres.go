package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"eventManager/internal/config"
	"eventManager/internal/models"
	"eventManager/internal/storage"

	"github.com/lib/pq"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

type Storage struct {
	DB *sql.DB
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id       BIGSERIAL PRIMARY KEY,
		name     TEXT NOT NULL,
		email    TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS events (
		id          BIGSERIAL PRIMARY KEY,
		title       TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		date        TEXT NOT NULL DEFAULT '',
		image       TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS event_templates (
		id          BIGSERIAL PRIMARY KEY,
		title       TEXT NOT NULL UNIQUE,
		description TEXT NOT NULL,
		price       BIGINT NOT NULL,
		image       TEXT NOT NULL,
		details     TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS bookings (
		id          BIGSERIAL PRIMARY KEY,
		user_id     BIGINT NOT NULL REFERENCES users(id),
		event_id    BIGINT NOT NULL REFERENCES event_templates(id),
		name        TEXT NOT NULL,
		email       TEXT NOT NULL,
		phone       TEXT NOT NULL,
		address     TEXT NOT NULL,
		event_date  TEXT NOT NULL,
		event_time  TEXT NOT NULL,
		addons      TEXT NOT NULL DEFAULT '[]',
		total_price BIGINT NOT NULL,
		notes       TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE INDEX IF NOT EXISTS idx_bookings_user_id ON bookings(user_id)`,
}

func New(ctx context.Context, dbCfg *config.Database) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	return Open(ctx, connStr)
}

// Open connects with a ready-made connection string, applies the schema and
// seeds the template catalog.
func Open(ctx context.Context, connStr string) (*Storage, error) {
	const op = "storage.postgres.Open"

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to connect to the database: %w", op, err)
	}

	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: failed to connect to the database: %w", op, err)
	}

	s := &Storage{DB: db}

	if err = s.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s, nil
}

func (s *Storage) migrate(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := s.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO event_templates (title, description, price, image, details)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (title) DO NOTHING`)
	if err != nil {
		return fmt.Errorf("failed to prepare seed statement: %w", err)
	}
	defer stmt.Close()

	for _, t := range storage.DefaultTemplates {
		if _, err = stmt.ExecContext(ctx, t.Title, t.Description, t.Price, t.Image, t.Details); err != nil {
			return fmt.Errorf("failed to seed template %q: %w", t.Title, err)
		}
	}

	return tx.Commit()
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

func pqCode(err error) pq.ErrorCode {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code
	}

	return ""
}

func (s *Storage) CreateUser(ctx context.Context, name, email, passHash string) (int64, error) {
	const op = "storage.postgres.CreateUser"

	query := `
		INSERT INTO users (name, email, password)
		VALUES ($1, $2, $3)
		RETURNING id`

	var id int64
	err := s.DB.QueryRowContext(ctx, query, name, email, passHash).Scan(&id)
	if err != nil {
		if pqCode(err) == codeUniqueViolation {
			return 0, fmt.Errorf("%s: %w", op, storage.ErrUserExists)
		}
		return 0, fmt.Errorf("%s: failed to create user: %w", op, err)
	}

	return id, nil
}

func (s *Storage) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	const op = "storage.postgres.GetUserByEmail"

	query := `
		SELECT id, name, email, password
		FROM users
		WHERE email = $1`

	var user models.User
	err := s.DB.QueryRowContext(ctx, query, email).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, fmt.Errorf("%s: %w", op, storage.ErrUserNotFound)
		}
		return models.User{}, fmt.Errorf("%s: failed to get user: %w", op, err)
	}

	return user, nil
}

func (s *Storage) GetAllEventTemplates(ctx context.Context) ([]models.EventTemplate, error) {
	const op = "storage.postgres.GetAllEventTemplates"

	query := `
		SELECT id, title, description, price, image, details
		FROM event_templates
		ORDER BY id`

	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to get event templates: %w", op, err)
	}
	defer rows.Close()

	templates := []models.EventTemplate{}
	for rows.Next() {
		var t models.EventTemplate
		err = rows.Scan(
			&t.ID,
			&t.Title,
			&t.Description,
			&t.Price,
			&t.Image,
			&t.Details,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to scan event template: %w", op, err)
		}
		templates = append(templates, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: error iterating event templates: %w", op, err)
	}

	return templates, nil
}

func (s *Storage) GetEventTemplate(ctx context.Context, id int64) (models.EventTemplate, error) {
	const op = "storage.postgres.GetEventTemplate"

	query := `
		SELECT id, title, description, price, image, details
		FROM event_templates
		WHERE id = $1`

	var t models.EventTemplate
	err := s.DB.QueryRowContext(ctx, query, id).Scan(
		&t.ID,
		&t.Title,
		&t.Description,
		&t.Price,
		&t.Image,
		&t.Details,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.EventTemplate{}, fmt.Errorf("%s: %w", op, storage.ErrEventTemplateNotFound)
		}
		return models.EventTemplate{}, fmt.Errorf("%s: failed to get event template: %w", op, err)
	}

	return t, nil
}

func (s *Storage) CreateEvent(ctx context.Context, title, description, date string) (int64, error) {
	const op = "storage.postgres.CreateEvent"

	query := `
		INSERT INTO events (title, description, date)
		VALUES ($1, $2, $3)
		RETURNING id`

	var id int64
	err := s.DB.QueryRowContext(ctx, query, title, description, date).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("%s: failed to create event: %w", op, err)
	}

	return id, nil
}

func (s *Storage) GetAllEvents(ctx context.Context) ([]models.Event, error) {
	const op = "storage.postgres.GetAllEvents"

	query := `
		SELECT id, title, description, date, image
		FROM events
		ORDER BY id`

	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to get events: %w", op, err)
	}
	defer rows.Close()

	events := []models.Event{}
	for rows.Next() {
		var event models.Event
		err = rows.Scan(
			&event.ID,
			&event.Title,
			&event.Description,
			&event.Date,
			&event.Image,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to scan event: %w", op, err)
		}
		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: error iterating events: %w", op, err)
	}

	return events, nil
}

func (s *Storage) CreateBooking(ctx context.Context, b models.Booking) (int64, error) {
	const op = "storage.postgres.CreateBooking"

	addons, err := storage.EncodeAddons(b.Addons)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%s: failed to begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	var exists bool
	checkQuery := `
		SELECT EXISTS(
			SELECT 1 FROM event_templates
			WHERE id = $1
		)`

	err = tx.QueryRowContext(ctx, checkQuery, b.EventID).Scan(&exists)
	if err != nil {
		return 0, fmt.Errorf("%s: failed to check event template: %w", op, err)
	}

	if !exists {
		return 0, fmt.Errorf("%s: %w", op, storage.ErrEventTemplateNotFound)
	}

	insertQuery := `
		INSERT INTO bookings (
			user_id, event_id, name, email, phone, address,
			event_date, event_time, addons, total_price, notes
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`

	var id int64
	err = tx.QueryRowContext(ctx, insertQuery,
		b.UserID, b.EventID, b.Name, b.Email, b.Phone, b.Address,
		b.EventDate, b.EventTime, addons, b.TotalPrice, b.Notes,
	).Scan(&id)
	if err != nil {
		if pqCode(err) == codeForeignKeyViolation {
			return 0, fmt.Errorf("%s: %w", op, storage.ErrUserNotFound)
		}
		return 0, fmt.Errorf("%s: failed to create booking: %w", op, err)
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("%s: failed to commit booking: %w", op, err)
	}

	return id, nil
}

func (s *Storage) GetBooking(ctx context.Context, id int64) (models.Booking, error) {
	const op = "storage.postgres.GetBooking"

	query := `
		SELECT id, user_id, event_id, name, email, phone, address,
		       event_date, event_time, addons, total_price, notes
		FROM bookings
		WHERE id = $1`

	var (
		b      models.Booking
		addons string
	)

	err := s.DB.QueryRowContext(ctx, query, id).Scan(
		&b.ID,
		&b.UserID,
		&b.EventID,
		&b.Name,
		&b.Email,
		&b.Phone,
		&b.Address,
		&b.EventDate,
		&b.EventTime,
		&addons,
		&b.TotalPrice,
		&b.Notes,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Booking{}, fmt.Errorf("%s: %w", op, storage.ErrBookingNotFound)
		}
		return models.Booking{}, fmt.Errorf("%s: failed to get booking: %w", op, err)
	}

	if b.Addons, err = storage.DecodeAddons(addons); err != nil {
		return models.Booking{}, fmt.Errorf("%s: %w", op, err)
	}

	return b, nil
}

func (s *Storage) GetUserBookings(ctx context.Context, userID int64) ([]models.BookingSummary, error) {
	const op = "storage.postgres.GetUserBookings"

	query := `
		SELECT b.id, e.title, e.description, e.image, b.event_date
		FROM bookings b
		JOIN event_templates e ON b.event_id = e.id
		WHERE b.user_id = $1
		ORDER BY b.id`

	rows, err := s.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to get bookings: %w", op, err)
	}
	defer rows.Close()

	bookings := []models.BookingSummary{}
	for rows.Next() {
		var booking models.BookingSummary
		err = rows.Scan(
			&booking.BookingID,
			&booking.Title,
			&booking.Description,
			&booking.Image,
			&booking.Date,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to scan booking: %w", op, err)
		}
		bookings = append(bookings, booking)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: error iterating bookings: %w", op, err)
	}

	return bookings, nil
}
