package postgresrepo

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	"github.com/vinocafe/order-svc/internal/service/models/category"
	"github.com/vinocafe/order-svc/internal/service/models/lineitem"
)

// GenericConn is an interface that works with both pgxpool.Pool and pgx.Tx.
type GenericConn interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// PostgresLineItemRepository manages the per-category line item tables.
type PostgresLineItemRepository struct {
	conn GenericConn
	sb   sq.StatementBuilderType
}

// NewPostgresLineItemRepository creates a new Postgres line item repository.
func NewPostgresLineItemRepository(conn GenericConn) *PostgresLineItemRepository {
	return &PostgresLineItemRepository{
		conn: conn,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// InsertWine adds a wine line to an order.
func (r *PostgresLineItemRepository) InsertWine(ctx context.Context, orderID, wineID int64, quantity int, subtotal decimal.Decimal) error {
	return r.insert(ctx, "order_wines", "wine_id", orderID, wineID, quantity, subtotal)
}

// InsertCoffee adds a coffee line to an order.
func (r *PostgresLineItemRepository) InsertCoffee(ctx context.Context, orderID, coffeeID int64, quantity int, subtotal decimal.Decimal) error {
	return r.insert(ctx, "order_coffees", "coffee_id", orderID, coffeeID, quantity, subtotal)
}

func (r *PostgresLineItemRepository) insert(ctx context.Context, table, fkColumn string, orderID, productID int64, quantity int, subtotal decimal.Decimal) error {
	query, args, err := r.sb.
		Insert(table).
		Columns("order_id", fkColumn, "quantity", "subtotal").
		Values(orderID, productID, quantity, subtotal).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build line item insert: %w", err)
	}

	if _, err := r.conn.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert line item into %s: %w", table, err)
	}

	return nil
}

// ListByOrder returns the order's line items joined back to their catalogs,
// wines first, then coffees.
func (r *PostgresLineItemRepository) ListByOrder(ctx context.Context, orderID int64) ([]lineitem.LineItem, error) {
	items := []lineitem.LineItem{}

	wines, err := r.listWines(ctx, orderID)
	if err != nil {
		return nil, err
	}
	items = append(items, wines...)

	coffees, err := r.listCoffees(ctx, orderID)
	if err != nil {
		return nil, err
	}
	items = append(items, coffees...)

	return items, nil
}

func (r *PostgresLineItemRepository) listWines(ctx context.Context, orderID int64) ([]lineitem.LineItem, error) {
	query, args, err := r.sb.
		Select(
			"ow.wine_id",
			"ow.quantity",
			"ow.subtotal",
			"w.name",
			"w.type",
			"w.region",
			"w.country",
			"w.vintage",
			"w.price",
		).
		From("order_wines ow").
		Join("wines w ON w.id = ow.wine_id").
		Where(sq.Eq{"ow.order_id": orderID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build wine items query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query wine items: %w", err)
	}
	defer rows.Close()

	var items []lineitem.LineItem
	for rows.Next() {
		var (
			item  lineitem.LineItem
			price *float64
		)
		err := rows.Scan(
			&item.ProductID,
			&item.Quantity,
			&item.Subtotal,
			&item.Name,
			&item.Type,
			&item.Region,
			&item.Country,
			&item.Vintage,
			&price,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan wine item: %w", err)
		}

		item.Category = category.CategoryWine
		if price != nil {
			item.Price = *price
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return items, nil
}

func (r *PostgresLineItemRepository) listCoffees(ctx context.Context, orderID int64) ([]lineitem.LineItem, error) {
	query, args, err := r.sb.
		Select(
			"oc.coffee_id",
			"oc.quantity",
			"oc.subtotal",
			"c.name",
			"c.type",
			"c.origin",
			"c.country",
			"c.roast_level",
			"c.price",
		).
		From("order_coffees oc").
		Join("coffees c ON c.id = oc.coffee_id").
		Where(sq.Eq{"oc.order_id": orderID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build coffee items query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query coffee items: %w", err)
	}
	defer rows.Close()

	var items []lineitem.LineItem
	for rows.Next() {
		var (
			item  lineitem.LineItem
			price *float64
		)
		err := rows.Scan(
			&item.ProductID,
			&item.Quantity,
			&item.Subtotal,
			&item.Name,
			&item.Type,
			&item.Origin,
			&item.Country,
			&item.RoastLevel,
			&price,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan coffee item: %w", err)
		}

		item.Category = category.CategoryCoffee
		if price != nil {
			item.Price = *price
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return items, nil
}
