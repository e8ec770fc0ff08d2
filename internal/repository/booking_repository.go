package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/eventloop-labs/event-booking-service/internal/domain"
)

// BookingRepository encapsulates booking persistence. Bookings are never
// deleted; cancellation goes through Update.
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	Update(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Booking, error)
	ListByEvent(ctx context.Context, eventID string) ([]domain.Booking, error)
	ListAll(ctx context.Context) ([]domain.Booking, error)
	SumActiveTickets(ctx context.Context, eventID string) (int, error)
}

type bookingRepository struct {
	pool *pgxpool.Pool
}

// NewBookingRepository instantiates the repository.
func NewBookingRepository(pool *pgxpool.Pool) BookingRepository {
	return &bookingRepository{pool: pool}
}

func (r *bookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	const query = `
        INSERT INTO bookings (id, event_id, user_id, number_of_tickets, total_amount, status)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		booking.ID,
		booking.EventID,
		booking.UserID,
		booking.NumberOfTickets,
		booking.TotalAmount,
		booking.Status,
	).Scan(&booking.CreatedAt, &booking.UpdatedAt)
}

func (r *bookingRepository) Update(ctx context.Context, booking *domain.Booking) error {
	const query = `
        UPDATE bookings SET status=$1, updated_at=NOW()
        WHERE id=$2
        RETURNING updated_at`
	if err := r.pool.QueryRow(ctx, query, booking.Status, booking.ID).Scan(&booking.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (r *bookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	const query = `
        SELECT id, event_id, user_id, number_of_tickets, total_amount, status, created_at, updated_at
        FROM bookings WHERE id=$1`
	var booking domain.Booking
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&booking.ID,
		&booking.EventID,
		&booking.UserID,
		&booking.NumberOfTickets,
		&booking.TotalAmount,
		&booking.Status,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) ListByUser(ctx context.Context, userID string) ([]domain.Booking, error) {
	const query = `
        SELECT id, event_id, user_id, number_of_tickets, total_amount, status, created_at, updated_at
        FROM bookings WHERE user_id=$1 ORDER BY created_at DESC`
	return r.fetchMany(ctx, query, userID)
}

func (r *bookingRepository) ListByEvent(ctx context.Context, eventID string) ([]domain.Booking, error) {
	const query = `
        SELECT id, event_id, user_id, number_of_tickets, total_amount, status, created_at, updated_at
        FROM bookings WHERE event_id=$1 ORDER BY created_at DESC`
	return r.fetchMany(ctx, query, eventID)
}

func (r *bookingRepository) ListAll(ctx context.Context) ([]domain.Booking, error) {
	const query = `
        SELECT id, event_id, user_id, number_of_tickets, total_amount, status, created_at, updated_at
        FROM bookings ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBookings(rows)
}

// SumActiveTickets returns the committed ticket count for an event,
// excluding cancelled bookings.
func (r *bookingRepository) SumActiveTickets(ctx context.Context, eventID string) (int, error) {
	const query = `
        SELECT COALESCE(SUM(number_of_tickets), 0)
        FROM bookings WHERE event_id=$1 AND status <> $2`
	var sum int
	if err := r.pool.QueryRow(ctx, query, eventID, domain.BookingStatusCancelled).Scan(&sum); err != nil {
		return 0, err
	}
	return sum, nil
}

func (r *bookingRepository) fetchMany(ctx context.Context, query string, arg any) ([]domain.Booking, error) {
	rows, err := r.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBookings(rows)
}

func scanBookings(rows pgx.Rows) ([]domain.Booking, error) {
	var result []domain.Booking
	for rows.Next() {
		var booking domain.Booking
		if err := rows.Scan(
			&booking.ID,
			&booking.EventID,
			&booking.UserID,
			&booking.NumberOfTickets,
			&booking.TotalAmount,
			&booking.Status,
			&booking.CreatedAt,
			&booking.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, booking)
	}
	return result, rows.Err()
}
