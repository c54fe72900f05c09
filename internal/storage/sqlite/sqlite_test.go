package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"eventManager/internal/models"
	"eventManager/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	s, err := New(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)

	t.Cleanup(func() { _ = s.Close() })

	return s
}

func testBooking(userID, eventID int64) models.Booking {
	return models.Booking{
		UserID:     userID,
		EventID:    eventID,
		Name:       "A",
		Email:      "a@x.com",
		Phone:      "+91 90000 00000",
		Address:    "12 Lake Road",
		EventDate:  "2025-02-14",
		EventTime:  "18:30",
		Addons:     []string{"flowers", "lighting"},
		TotalPrice: 27500,
		Notes:      "back entrance",
	}
}

func countUsers(t *testing.T, s *Storage, email string) int {
	t.Helper()

	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM users WHERE email = ?`, email).Scan(&n)
	require.NoError(t, err)

	return n
}

func TestCreateUser(t *testing.T) {
	t.Parallel()

	s := newTestStorage(t)
	ctx := context.Background()

	idA, err := s.CreateUser(ctx, "A", "a@x.com", "hash-a")
	require.NoError(t, err)

	idB, err := s.CreateUser(ctx, "B", "b@x.com", "hash-b")
	require.NoError(t, err)

	assert.NotEqual(t, idA, idB)

	user, err := s.GetUserByEmail(ctx, "a@x.com")
	require.NoError(t, err)

	assert.Equal(t, models.User{ID: idA, Name: "A", Email: "a@x.com", PasswordHash: "hash-a"}, user)
	assert.Equal(t, 1, countUsers(t, s, "a@x.com"))
	assert.Equal(t, 1, countUsers(t, s, "b@x.com"))
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	t.Parallel()

	s := newTestStorage(t)
	ctx := context.Background()

	_, err := s.CreateUser(ctx, "A", "a@x.com", "hash-1")
	require.NoError(t, err)

	_, err = s.CreateUser(ctx, "A again", "a@x.com", "hash-2")
	require.ErrorIs(t, err, storage.ErrUserExists)

	assert.Equal(t, 1, countUsers(t, s, "a@x.com"))

	user, err := s.GetUserByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "hash-1", user.PasswordHash)
}

func TestCreateUserConcurrentDuplicate(t *testing.T) {
	t.Parallel()

	s := newTestStorage(t)
	ctx := context.Background()

	const workers = 8

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		success  int
		conflict int
		other    []error
	)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			_, err := s.CreateUser(ctx, "A", "race@x.com", "hash")

			mu.Lock()
			defer mu.Unlock()

			switch {
			case err == nil:
				success++
			case errors.Is(err, storage.ErrUserExists):
				conflict++
			default:
				other = append(other, err)
			}
		}()
	}

	wg.Wait()

	assert.Empty(t, other)
	assert.Equal(t, 1, success)
	assert.Equal(t, workers-1, conflict)
	assert.Equal(t, 1, countUsers(t, s, "race@x.com"))
}

func TestGetUserByEmailNotFound(t *testing.T) {
	t.Parallel()

	s := newTestStorage(t)

	_, err := s.GetUserByEmail(context.Background(), "nobody@x.com")
	require.ErrorIs(t, err, storage.ErrUserNotFound)
}

func TestTemplatesSeededOnce(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "seed.db")
	ctx := context.Background()

	s, err := New(ctx, path)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = New(ctx, path)
	require.NoError(t, err)
	defer s.Close()

	templates, err := s.GetAllEventTemplates(ctx)
	require.NoError(t, err)
	require.Len(t, templates, len(storage.DefaultTemplates))

	assert.Equal(t, int64(1), templates[0].ID)
	assert.Equal(t, storage.DefaultTemplates[0].Title, templates[0].Title)
	assert.Equal(t, storage.DefaultTemplates[0].Price, templates[0].Price)

	tmpl, err := s.GetEventTemplate(ctx, templates[2].ID)
	require.NoError(t, err)
	assert.Equal(t, templates[2], tmpl)

	_, err = s.GetEventTemplate(ctx, 9999)
	require.ErrorIs(t, err, storage.ErrEventTemplateNotFound)
}

func TestEvents(t *testing.T) {
	t.Parallel()

	s := newTestStorage(t)
	ctx := context.Background()

	events, err := s.GetAllEvents(ctx)
	require.NoError(t, err)
	assert.Empty(t, events)

	id, err := s.CreateEvent(ctx, "Community Meetup", "Monthly meetup", "2025-03-01")
	require.NoError(t, err)

	events, err = s.GetAllEvents(ctx)
	require.NoError(t, err)
	require.Len(t, events, 1)

	assert.Equal(t, models.Event{
		ID:          id,
		Title:       "Community Meetup",
		Description: "Monthly meetup",
		Date:        "2025-03-01",
	}, events[0])
}

func TestCreateBookingOwnership(t *testing.T) {
	t.Parallel()

	s := newTestStorage(t)
	ctx := context.Background()

	owner, err := s.CreateUser(ctx, "A", "a@x.com", "hash")
	require.NoError(t, err)

	other, err := s.CreateUser(ctx, "B", "b@x.com", "hash")
	require.NoError(t, err)

	first, err := s.CreateBooking(ctx, testBooking(owner, 1))
	require.NoError(t, err)

	second, err := s.CreateBooking(ctx, testBooking(owner, 3))
	require.NoError(t, err)

	bookings, err := s.GetUserBookings(ctx, owner)
	require.NoError(t, err)
	require.Len(t, bookings, 2)

	assert.Equal(t, first, bookings[0].BookingID)
	assert.Equal(t, storage.DefaultTemplates[0].Title, bookings[0].Title)
	assert.Equal(t, storage.DefaultTemplates[0].Description, bookings[0].Description)
	assert.Equal(t, storage.DefaultTemplates[0].Image, bookings[0].Image)
	assert.Equal(t, "2025-02-14", bookings[0].Date)
	assert.Equal(t, second, bookings[1].BookingID)
	assert.Equal(t, storage.DefaultTemplates[2].Title, bookings[1].Title)

	bookings, err = s.GetUserBookings(ctx, other)
	require.NoError(t, err)
	assert.Empty(t, bookings)
}

func TestBookingAddonsRoundTrip(t *testing.T) {
	t.Parallel()

	s := newTestStorage(t)
	ctx := context.Background()

	userID, err := s.CreateUser(ctx, "A", "a@x.com", "hash")
	require.NoError(t, err)

	want := testBooking(userID, 1)

	id, err := s.CreateBooking(ctx, want)
	require.NoError(t, err)

	got, err := s.GetBooking(ctx, id)
	require.NoError(t, err)

	want.ID = id
	assert.Equal(t, want, got)
	assert.Equal(t, []string{"flowers", "lighting"}, got.Addons)

	noAddons := testBooking(userID, 2)
	noAddons.Addons = nil
	noAddons.Notes = ""

	id, err = s.CreateBooking(ctx, noAddons)
	require.NoError(t, err)

	got, err = s.GetBooking(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []string{}, got.Addons)
	assert.Equal(t, "", got.Notes)
}

func TestCreateBookingUnknownReferences(t *testing.T) {
	t.Parallel()

	s := newTestStorage(t)
	ctx := context.Background()

	userID, err := s.CreateUser(ctx, "A", "a@x.com", "hash")
	require.NoError(t, err)

	_, err = s.CreateBooking(ctx, testBooking(userID, 4242))
	require.ErrorIs(t, err, storage.ErrEventTemplateNotFound)

	_, err = s.CreateBooking(ctx, testBooking(userID+100, 1))
	require.ErrorIs(t, err, storage.ErrUserNotFound)

	bookings, err := s.GetUserBookings(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, bookings)
}

func TestGetBookingNotFound(t *testing.T) {
	t.Parallel()

	s := newTestStorage(t)

	_, err := s.GetBooking(context.Background(), 1)
	require.ErrorIs(t, err, storage.ErrBookingNotFound)
}
