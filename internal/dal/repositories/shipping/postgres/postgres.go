package postgresrepo

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/vinocafe/order-svc/internal/service/models/shipping"
)

// GenericConn is an interface that works with both pgxpool.Pool and pgx.Tx.
type GenericConn interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// PostgresShippingRepository writes the shipping snapshot of an order.
type PostgresShippingRepository struct {
	conn GenericConn
	sb   sq.StatementBuilderType
}

// NewPostgresShippingRepository creates a new Postgres shipping repository.
func NewPostgresShippingRepository(conn GenericConn) *PostgresShippingRepository {
	return &PostgresShippingRepository{
		conn: conn,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// Insert writes the shipping detail row bound to an order. The row is
// immutable once written.
func (r *PostgresShippingRepository) Insert(ctx context.Context, orderID int64, detail shipping.Detail) error {
	query, args, err := r.sb.
		Insert("order_shipping_details").
		Columns(
			"order_id",
			"full_name",
			"phone",
			"address_line1",
			"address_line2",
			"city",
			"state",
			"postal_code",
			"country",
			"delivery_instructions",
		).
		Values(
			orderID,
			detail.FullName,
			detail.Phone,
			detail.AddressLine1,
			detail.AddressLine2,
			detail.City,
			detail.State,
			detail.PostalCode,
			detail.Country,
			detail.DeliveryInstructions,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build shipping insert: %w", err)
	}

	if _, err := r.conn.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert shipping details: %w", err)
	}

	return nil
}
