package postgresrepo

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/vinocafe/order-svc/internal/service/models/customer"
)

// GenericConn is an interface that works with both pgxpool.Pool and pgx.Tx.
type GenericConn interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// PostgresCustomerRepository manages customer rows keyed by email.
type PostgresCustomerRepository struct {
	conn GenericConn
	sb   sq.StatementBuilderType
}

// NewPostgresCustomerRepository creates a new Postgres customer repository.
func NewPostgresCustomerRepository(conn GenericConn) *PostgresCustomerRepository {
	return &PostgresCustomerRepository{
		conn: conn,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// GetIDByEmail returns the customer id for an email.
func (r *PostgresCustomerRepository) GetIDByEmail(ctx context.Context, email string) (int64, bool, error) {
	query, args, err := r.sb.
		Select("id").
		From("customers").
		Where(sq.Eq{"email": email}).
		ToSql()
	if err != nil {
		return 0, false, fmt.Errorf("failed to build customer query: %w", err)
	}

	var id int64
	err = r.conn.QueryRow(ctx, query, args...).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, false, nil
		}

		return 0, false, fmt.Errorf("failed to query customer by email: %w", err)
	}

	return id, true, nil
}

// UpdateContact refreshes contact fields with the latest fulfilment info.
// Nil values preserve what is already stored.
func (r *PostgresCustomerRepository) UpdateContact(ctx context.Context, id int64, name, phone, address *string) error {
	query, args, err := r.sb.
		Update("customers").
		Set("name", sq.Expr("COALESCE(?, name)", name)).
		Set("phone", sq.Expr("COALESCE(?, phone)", phone)).
		Set("address", sq.Expr("COALESCE(?, address)", address)).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build customer update: %w", err)
	}

	if _, err := r.conn.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to update customer: %w", err)
	}

	return nil
}

// Insert creates a customer row and returns its id. The unique constraint on
// email resolves the race between two first orders for the same address:
// the losing insert folds into a coalesce update and both callers get the
// same id back.
func (r *PostgresCustomerRepository) Insert(ctx context.Context, c customer.Customer) (int64, error) {
	query, args, err := r.sb.
		Insert("customers").
		Columns("name", "email", "phone", "address").
		Values(c.Name, c.Email, c.Phone, c.Address).
		Suffix(`ON CONFLICT (email) DO UPDATE SET
			name = COALESCE(EXCLUDED.name, customers.name),
			phone = COALESCE(EXCLUDED.phone, customers.phone),
			address = COALESCE(EXCLUDED.address, customers.address)
		RETURNING id`).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build customer insert: %w", err)
	}

	var id int64
	if err := r.conn.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to insert customer: %w", err)
	}

	return id, nil
}
