package postgresrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	"github.com/vinocafe/order-svc/internal/service/models/customer"
	"github.com/vinocafe/order-svc/internal/service/models/lineitem"
	"github.com/vinocafe/order-svc/internal/service/models/order"
	"github.com/vinocafe/order-svc/internal/service/models/shipping"
)

// GenericConn is an interface that works with both pgxpool.Pool and pgx.Tx.
type GenericConn interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// OrderViewDal is the joined order row as it comes back from the store.
type OrderViewDal struct {
	Id                   int64     `db:"id"`
	CustomerId           int64     `db:"customer_id"`
	TotalAmount          float64   `db:"total_amount"`
	OrderDate            time.Time `db:"order_date"`
	PaymentMode          *string   `db:"payment_mode"`
	PaymentStatus        *string   `db:"payment_status"`
	FullName             *string   `db:"full_name"`
	Phone                *string   `db:"phone"`
	AddressLine1         *string   `db:"address_line1"`
	AddressLine2         *string   `db:"address_line2"`
	City                 *string   `db:"city"`
	State                *string   `db:"state"`
	PostalCode           *string   `db:"postal_code"`
	Country              *string   `db:"country"`
	DeliveryInstructions *string   `db:"delivery_instructions"`
	CustomerName         *string   `db:"customer_name"`
	CustomerEmail        *string   `db:"customer_email"`
	CustomerPhone        *string   `db:"customer_phone"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}

// ToModel converts the joined row into the service layer order view.
// Line items are populated separately.
func (d *OrderViewDal) ToModel() *order.Order {
	return &order.Order{
		ID:          d.Id,
		CustomerID:  d.CustomerId,
		TotalAmount: d.TotalAmount,
		Total:       d.TotalAmount,
		OrderDate:   order.FormatOrderDate(d.OrderDate),
		Payment: order.Payment{
			Method: d.PaymentMode,
			Status: d.PaymentStatus,
		},
		Shipping: shipping.Detail{
			FullName:             deref(d.FullName),
			Phone:                deref(d.Phone),
			AddressLine1:         deref(d.AddressLine1),
			AddressLine2:         deref(d.AddressLine2),
			City:                 deref(d.City),
			State:                deref(d.State),
			PostalCode:           deref(d.PostalCode),
			Country:              deref(d.Country),
			DeliveryInstructions: deref(d.DeliveryInstructions),
		},
		Customer: customer.Summary{
			ID:    d.CustomerId,
			Name:  d.CustomerName,
			Email: d.CustomerEmail,
			Phone: d.CustomerPhone,
		},
		Items: []lineitem.LineItem{},
	}
}

// PostgresOrderRepository manages order headers and views.
type PostgresOrderRepository struct {
	conn GenericConn
	sb   sq.StatementBuilderType
}

// NewPostgresOrderRepository creates a new Postgres order repository.
func NewPostgresOrderRepository(conn GenericConn) *PostgresOrderRepository {
	return &PostgresOrderRepository{
		conn: conn,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// Insert creates an order header. The order date is assigned by the store
// and immutable afterwards.
func (r *PostgresOrderRepository) Insert(ctx context.Context, customerID int64, total decimal.Decimal) (int64, error) {
	query, args, err := r.sb.
		Insert("orders").
		Columns("customer_id", "total_amount").
		Values(customerID, total).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build order insert: %w", err)
	}

	var id int64
	if err := r.conn.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to insert order: %w", err)
	}

	return id, nil
}

// GetView returns the joined order view without line items, or nil when the
// order does not exist.
func (r *PostgresOrderRepository) GetView(ctx context.Context, id int64) (*order.Order, error) {
	query, args, err := r.sb.
		Select(
			"o.id",
			"o.customer_id",
			"o.total_amount",
			"o.order_date",
			"p.payment_mode",
			"p.payment_status",
			"s.full_name",
			"s.phone",
			"s.address_line1",
			"s.address_line2",
			"s.city",
			"s.state",
			"s.postal_code",
			"s.country",
			"s.delivery_instructions",
			"cust.name AS customer_name",
			"cust.email AS customer_email",
			"cust.phone AS customer_phone",
		).
		From("orders o").
		LeftJoin("payments p ON p.order_id = o.id").
		LeftJoin("order_shipping_details s ON s.order_id = o.id").
		LeftJoin("customers cust ON cust.id = o.customer_id").
		Where(sq.Eq{"o.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build order view query: %w", err)
	}

	var dal OrderViewDal
	err = r.conn.QueryRow(ctx, query, args...).Scan(
		&dal.Id,
		&dal.CustomerId,
		&dal.TotalAmount,
		&dal.OrderDate,
		&dal.PaymentMode,
		&dal.PaymentStatus,
		&dal.FullName,
		&dal.Phone,
		&dal.AddressLine1,
		&dal.AddressLine2,
		&dal.City,
		&dal.State,
		&dal.PostalCode,
		&dal.Country,
		&dal.DeliveryInstructions,
		&dal.CustomerName,
		&dal.CustomerEmail,
		&dal.CustomerPhone,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to query order view: %w", err)
	}

	return dal.ToModel(), nil
}

// ListIDsByEmail returns order ids placed by the customer with the given
// email, newest first.
func (r *PostgresOrderRepository) ListIDsByEmail(ctx context.Context, email string) ([]int64, error) {
	query, args, err := r.sb.
		Select("o.id").
		From("orders o").
		Join("customers c ON c.id = o.customer_id").
		Where(sq.Eq{"c.email": email}).
		OrderBy("o.order_date DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build order ids query: %w", err)
	}

	return r.scanIDs(ctx, query, args...)
}

// ListIDs returns every order id, newest first.
func (r *PostgresOrderRepository) ListIDs(ctx context.Context) ([]int64, error) {
	query, args, err := r.sb.
		Select("id").
		From("orders").
		OrderBy("order_date DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build order ids query: %w", err)
	}

	return r.scanIDs(ctx, query, args...)
}

func (r *PostgresOrderRepository) scanIDs(ctx context.Context, query string, args ...interface{}) ([]int64, error) {
	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query order ids: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan order id: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return ids, nil
}
