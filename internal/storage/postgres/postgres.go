package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"hallBooker/internal/config"
	"hallBooker/internal/models"
	"hallBooker/internal/storage"
	"time"

	"github.com/lib/pq"
)

const (
	dateLayout = "2006-01-02"

	// Attempts for a booking transaction that keeps losing serialization races.
	maxBookingAttempts = 3

	codeUniqueViolation    = "23505"
	codeSerializationFails = "40001"
)

type Storage struct {
	DB *sql.DB
}

func InitDB(dbCfg *config.Database) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	return &Storage{DB: db}, nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

func (s *Storage) CreateUser(ctx context.Context, user models.User) (*models.User, error) {
	const op = "storage.postgres.CreateUser"

	query := `
		INSERT INTO users (name, email, phone, password, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	err := s.DB.QueryRowContext(ctx, query,
		user.Name,
		user.Email,
		user.Phone,
		user.PasswordHash,
		user.Role,
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == codeUniqueViolation {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrUserExists)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &user, nil
}

func (s *Storage) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "storage.postgres.UserByEmail"

	query := `
		SELECT id, name, email, phone, password, role, created_at
		FROM users
		WHERE email = $1`

	var user models.User
	err := s.DB.QueryRowContext(ctx, query, email).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Phone,
		&user.PasswordHash,
		&user.Role,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrUserNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &user, nil
}

func (s *Storage) ListUsers(ctx context.Context) ([]models.User, error) {
	const op = "storage.postgres.ListUsers"

	query := `
		SELECT id, name, email, phone, role, created_at
		FROM users
		ORDER BY created_at DESC`

	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var user models.User
		err = rows.Scan(
			&user.ID,
			&user.Name,
			&user.Email,
			&user.Phone,
			&user.Role,
			&user.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: scan user: %w", op, err)
		}
		users = append(users, user)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return users, nil
}

// DeleteUser removes a regular user. Admin accounts are never deleted and
// are reported as not found.
func (s *Storage) DeleteUser(ctx context.Context, id int64) error {
	const op = "storage.postgres.DeleteUser"

	query := `DELETE FROM users WHERE id = $1 AND role != $2`

	result, err := s.DB.ExecContext(ctx, query, id, models.RoleAdmin)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if affected == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrUserNotFound)
	}

	return nil
}

func (s *Storage) BookingsByUser(ctx context.Context, userID int64) ([]models.Booking, error) {
	const op = "storage.postgres.BookingsByUser"

	query := `
		SELECT id, user_id, hall, booking_date, slots, purpose, created_at
		FROM bookings
		WHERE user_id = $1
		ORDER BY booking_date DESC`

	bookings, err := s.queryBookings(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return bookings, nil
}

// UpcomingBookings lists at most limit bookings of the user dated on or after from.
func (s *Storage) UpcomingBookings(ctx context.Context, userID int64, from time.Time, limit int) ([]models.Booking, error) {
	const op = "storage.postgres.UpcomingBookings"

	query := `
		SELECT id, user_id, hall, booking_date, slots, purpose, created_at
		FROM bookings
		WHERE user_id = $1 AND booking_date >= $2
		ORDER BY booking_date, hall
		LIMIT $3`

	bookings, err := s.queryBookings(ctx, query, userID, from.Format(dateLayout), limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return bookings, nil
}

func (s *Storage) BookingsByHallDate(ctx context.Context, hall string, date time.Time) ([]models.Booking, error) {
	const op = "storage.postgres.BookingsByHallDate"

	query := `
		SELECT id, user_id, hall, booking_date, slots, purpose, created_at
		FROM bookings
		WHERE hall = $1 AND booking_date = $2
		ORDER BY created_at`

	bookings, err := s.queryBookings(ctx, query, hall, date.Format(dateLayout))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return bookings, nil
}

// CreateBooking inserts the booking unless one of its slots is already taken
// for the same hall and day. The overlap check and the insert share one
// serializable transaction, so concurrent requests cannot both succeed.
func (s *Storage) CreateBooking(ctx context.Context, booking models.Booking) (*models.Booking, error) {
	const op = "storage.postgres.CreateBooking"

	for attempt := 1; ; attempt++ {
		created, err := s.createBookingTx(ctx, booking)
		if err == nil {
			return created, nil
		}

		if !isSerializationFailure(err) || attempt == maxBookingAttempts {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}
}

func (s *Storage) createBookingTx(ctx context.Context, booking models.Booking) (*models.Booking, error) {
	tx, err := s.DB.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	date := booking.Date.Format(dateLayout)

	var taken bool
	checkQuery := `
		SELECT EXISTS(
			SELECT 1 FROM bookings
			WHERE hall = $1 AND booking_date = $2 AND slots && $3
		)`

	err = tx.QueryRowContext(ctx, checkQuery, booking.Hall, date, pq.Array(booking.Slots)).Scan(&taken)
	if err != nil {
		return nil, fmt.Errorf("failed to check slot overlap: %w", err)
	}

	if taken {
		return nil, storage.ErrSlotsTaken
	}

	insertQuery := `
		INSERT INTO bookings (user_id, hall, booking_date, slots, purpose)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, booking_date, created_at`

	err = tx.QueryRowContext(ctx, insertQuery,
		booking.UserID,
		booking.Hall,
		date,
		pq.Array(booking.Slots),
		booking.Purpose,
	).Scan(&booking.ID, &booking.Date, &booking.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit booking: %w", err)
	}

	return &booking, nil
}

// CancelBooking deletes the booking only when it belongs to userID.
func (s *Storage) CancelBooking(ctx context.Context, id, userID int64) error {
	const op = "storage.postgres.CancelBooking"

	query := `DELETE FROM bookings WHERE id = $1 AND user_id = $2`

	result, err := s.DB.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if affected == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrBookingNotFound)
	}

	return nil
}

func (s *Storage) CreateFeedback(ctx context.Context, userID int64, name, text string) (*models.Feedback, error) {
	const op = "storage.postgres.CreateFeedback"

	query := `
		INSERT INTO feedback (user_id, name, feedback)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	feedback := models.Feedback{
		UserID:   userID,
		Name:     name,
		Feedback: text,
	}

	err := s.DB.QueryRowContext(ctx, query, userID, name, text).Scan(&feedback.ID, &feedback.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &feedback, nil
}

func (s *Storage) ListFeedback(ctx context.Context) ([]models.Feedback, error) {
	const op = "storage.postgres.ListFeedback"

	query := `
		SELECT id, user_id, name, feedback, created_at
		FROM feedback
		ORDER BY created_at DESC`

	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	feedback := []models.Feedback{}
	for rows.Next() {
		var f models.Feedback
		if err = rows.Scan(&f.ID, &f.UserID, &f.Name, &f.Feedback, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: scan feedback: %w", op, err)
		}
		feedback = append(feedback, f)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return feedback, nil
}

func (s *Storage) queryBookings(ctx context.Context, query string, args ...any) ([]models.Booking, error) {
	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}
	defer rows.Close()

	bookings := []models.Booking{}
	for rows.Next() {
		var booking models.Booking
		err = rows.Scan(
			&booking.ID,
			&booking.UserID,
			&booking.Hall,
			&booking.Date,
			pq.Array(&booking.Slots),
			&booking.Purpose,
			&booking.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, booking)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bookings: %w", err)
	}

	return bookings, nil
}

func isSerializationFailure(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == codeSerializationFails
}
