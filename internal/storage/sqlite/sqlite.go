package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"eventManager/internal/models"
	"eventManager/internal/storage"

	"github.com/mattn/go-sqlite3"
)

type Storage struct {
	db *sql.DB
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id       INTEGER PRIMARY KEY AUTOINCREMENT,
		name     TEXT NOT NULL,
		email    TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS events (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		title       TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		date        TEXT NOT NULL DEFAULT '',
		image       TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS event_templates (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		title       TEXT NOT NULL UNIQUE,
		description TEXT NOT NULL,
		price       INTEGER NOT NULL,
		image       TEXT NOT NULL,
		details     TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS bookings (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id     INTEGER NOT NULL REFERENCES users(id),
		event_id    INTEGER NOT NULL REFERENCES event_templates(id),
		name        TEXT NOT NULL,
		email       TEXT NOT NULL,
		phone       TEXT NOT NULL,
		address     TEXT NOT NULL,
		event_date  TEXT NOT NULL,
		event_time  TEXT NOT NULL,
		addons      TEXT NOT NULL DEFAULT '[]',
		total_price INTEGER NOT NULL,
		notes       TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE INDEX IF NOT EXISTS idx_bookings_user_id ON bookings(user_id)`,
}

// New opens (creating if needed) the database file, applies the schema and
// seeds the template catalog. Writes are serialized over one connection.
func New(ctx context.Context, storagePath string) (*Storage, error) {
	const op = "storage.sqlite.New"

	if dir := filepath.Dir(storagePath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", storagePath)

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	db.SetMaxOpenConns(1)

	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s := &Storage{db: db}

	if err = s.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s, nil
}

func (s *Storage) migrate(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR IGNORE INTO event_templates (title, description, price, image, details)
		VALUES (?, ?, ?, ?, ?)`)
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
	return s.db.Close()
}

func (s *Storage) CreateUser(ctx context.Context, name, email, passHash string) (int64, error) {
	const op = "storage.sqlite.CreateUser"

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO users (name, email, password) VALUES (?, ?, ?)`,
		name, email, passHash,
	)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return 0, fmt.Errorf("%s: %w", op, storage.ErrUserExists)
		}

		return 0, fmt.Errorf("%s: %w", op, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%s: failed to get last insert id: %w", op, err)
	}

	return id, nil
}

func (s *Storage) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	const op = "storage.sqlite.GetUserByEmail"

	var user models.User
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, email, password FROM users WHERE email = ?`, email,
	).Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, fmt.Errorf("%s: %w", op, storage.ErrUserNotFound)
		}

		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

func (s *Storage) GetAllEventTemplates(ctx context.Context) ([]models.EventTemplate, error) {
	const op = "storage.sqlite.GetAllEventTemplates"

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, description, price, image, details
		FROM event_templates
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	templates := []models.EventTemplate{}
	for rows.Next() {
		var t models.EventTemplate
		if err = rows.Scan(&t.ID, &t.Title, &t.Description, &t.Price, &t.Image, &t.Details); err != nil {
			return nil, fmt.Errorf("%s: failed to scan template: %w", op, err)
		}
		templates = append(templates, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: error iterating templates: %w", op, err)
	}

	return templates, nil
}

func (s *Storage) GetEventTemplate(ctx context.Context, id int64) (models.EventTemplate, error) {
	const op = "storage.sqlite.GetEventTemplate"

	var t models.EventTemplate
	err := s.db.QueryRowContext(ctx, `
		SELECT id, title, description, price, image, details
		FROM event_templates
		WHERE id = ?`, id,
	).Scan(&t.ID, &t.Title, &t.Description, &t.Price, &t.Image, &t.Details)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.EventTemplate{}, fmt.Errorf("%s: %w", op, storage.ErrEventTemplateNotFound)
		}

		return models.EventTemplate{}, fmt.Errorf("%s: %w", op, err)
	}

	return t, nil
}

func (s *Storage) CreateEvent(ctx context.Context, title, description, date string) (int64, error) {
	const op = "storage.sqlite.CreateEvent"

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO events (title, description, date) VALUES (?, ?, ?)`,
		title, description, date,
	)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%s: failed to get last insert id: %w", op, err)
	}

	return id, nil
}

func (s *Storage) GetAllEvents(ctx context.Context) ([]models.Event, error) {
	const op = "storage.sqlite.GetAllEvents"

	rows, err := s.db.QueryContext(ctx, `SELECT id, title, description, date, image FROM events ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	events := []models.Event{}
	for rows.Next() {
		var e models.Event
		if err = rows.Scan(&e.ID, &e.Title, &e.Description, &e.Date, &e.Image); err != nil {
			return nil, fmt.Errorf("%s: failed to scan event: %w", op, err)
		}
		events = append(events, e)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: error iterating events: %w", op, err)
	}

	return events, nil
}

// CreateBooking records b as supplied. Only the referenced template and user
// are checked to exist; price and availability are taken from the client.
func (s *Storage) CreateBooking(ctx context.Context, b models.Booking) (int64, error) {
	const op = "storage.sqlite.CreateBooking"

	addons, err := storage.EncodeAddons(b.Addons)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%s: failed to begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	var exists bool
	err = tx.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM event_templates WHERE id = ?)`, b.EventID,
	).Scan(&exists)
	if err != nil {
		return 0, fmt.Errorf("%s: failed to check event template: %w", op, err)
	}

	if !exists {
		return 0, fmt.Errorf("%s: %w", op, storage.ErrEventTemplateNotFound)
	}

	res, err := tx.ExecContext(ctx, `
		INSERT INTO bookings (
			user_id, event_id, name, email, phone, address,
			event_date, event_time, addons, total_price, notes
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		b.UserID, b.EventID, b.Name, b.Email, b.Phone, b.Address,
		b.EventDate, b.EventTime, addons, b.TotalPrice, b.Notes,
	)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey {
			// event_id was checked above, so the dangling key is the user.
			return 0, fmt.Errorf("%s: %w", op, storage.ErrUserNotFound)
		}

		return 0, fmt.Errorf("%s: failed to create booking: %w", op, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%s: failed to get last insert id: %w", op, err)
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("%s: failed to commit: %w", op, err)
	}

	return id, nil
}

func (s *Storage) GetBooking(ctx context.Context, id int64) (models.Booking, error) {
	const op = "storage.sqlite.GetBooking"

	var (
		b      models.Booking
		addons string
	)

	err := s.db.QueryRowContext(ctx, `
		SELECT id, user_id, event_id, name, email, phone, address,
		       event_date, event_time, addons, total_price, notes
		FROM bookings
		WHERE id = ?`, id,
	).Scan(
		&b.ID, &b.UserID, &b.EventID, &b.Name, &b.Email, &b.Phone, &b.Address,
		&b.EventDate, &b.EventTime, &addons, &b.TotalPrice, &b.Notes,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Booking{}, fmt.Errorf("%s: %w", op, storage.ErrBookingNotFound)
		}

		return models.Booking{}, fmt.Errorf("%s: %w", op, err)
	}

	if b.Addons, err = storage.DecodeAddons(addons); err != nil {
		return models.Booking{}, fmt.Errorf("%s: %w", op, err)
	}

	return b, nil
}

func (s *Storage) GetUserBookings(ctx context.Context, userID int64) ([]models.BookingSummary, error) {
	const op = "storage.sqlite.GetUserBookings"

	rows, err := s.db.QueryContext(ctx, `
		SELECT b.id, e.title, e.description, e.image, b.event_date
		FROM bookings b
		JOIN event_templates e ON b.event_id = e.id
		WHERE b.user_id = ?
		ORDER BY b.id`, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	bookings := []models.BookingSummary{}
	for rows.Next() {
		var b models.BookingSummary
		if err = rows.Scan(&b.BookingID, &b.Title, &b.Description, &b.Image, &b.Date); err != nil {
			return nil, fmt.Errorf("%s: failed to scan booking: %w", op, err)
		}
		bookings = append(bookings, b)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: error iterating bookings: %w", op, err)
	}

	return bookings, nil
}
