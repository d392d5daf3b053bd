package postgresrepo

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/vinocafe/order-svc/internal/service/models/profile"
)

// GenericConn is an interface that works with both pgxpool.Pool and pgx.Tx.
type GenericConn interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// PostgresProfileRepository stores saved shipping/payment profiles.
type PostgresProfileRepository struct {
	conn GenericConn
	sb   sq.StatementBuilderType
}

// NewPostgresProfileRepository creates a new Postgres profile repository.
func NewPostgresProfileRepository(conn GenericConn) *PostgresProfileRepository {
	return &PostgresProfileRepository{
		conn: conn,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// Insert appends a profile row. There is no upsert; every save is kept and
// lookups pick the most recent one.
func (r *PostgresProfileRepository) Insert(ctx context.Context, userID int64, p profile.Profile) error {
	query, args, err := r.sb.
		Insert("customer_payment_profiles").
		Columns(
			"user_id",
			"full_name",
			"phone",
			"address_line1",
			"address_line2",
			"city",
			"state",
			"postal_code",
			"country",
			"payment_method",
			"upi_id",
			"delivery_instructions",
		).
		Values(
			userID,
			p.FullName,
			p.Phone,
			p.AddressLine1,
			p.AddressLine2,
			p.City,
			p.State,
			p.PostalCode,
			p.Country,
			p.PaymentMethod,
			p.UpiID,
			p.DeliveryInstructions,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build profile insert: %w", err)
	}

	if _, err := r.conn.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert payment profile: %w", err)
	}

	return nil
}

// GetLatest returns the most recently used profile for a user, or nil when
// none has been saved.
func (r *PostgresProfileRepository) GetLatest(ctx context.Context, userID int64) (*profile.Profile, error) {
	query, args, err := r.sb.
		Select(
			"full_name",
			"phone",
			"address_line1",
			"address_line2",
			"city",
			"state",
			"postal_code",
			"country",
			"payment_method",
			"upi_id",
			"delivery_instructions",
		).
		From("customer_payment_profiles").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("last_used DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build profile query: %w", err)
	}

	var p profile.Profile
	err = r.conn.QueryRow(ctx, query, args...).Scan(
		&p.FullName,
		&p.Phone,
		&p.AddressLine1,
		&p.AddressLine2,
		&p.City,
		&p.State,
		&p.PostalCode,
		&p.Country,
		&p.PaymentMethod,
		&p.UpiID,
		&p.DeliveryInstructions,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to query payment profile: %w", err)
	}

	return &p, nil
}
