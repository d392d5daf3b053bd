package ordersvc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"

	"github.com/vinocafe/order-svc/internal/dal/interfaces/icustomerrepo"
	"github.com/vinocafe/order-svc/internal/dal/interfaces/ilineitemrepo"
	"github.com/vinocafe/order-svc/internal/dal/interfaces/iorderrepo"
	"github.com/vinocafe/order-svc/internal/dal/interfaces/iprofilerepo"
	"github.com/vinocafe/order-svc/internal/dal/interfaces/ishippingrepo"
	"github.com/vinocafe/order-svc/internal/dal/interfaces/iuserrepo"
	"github.com/vinocafe/order-svc/internal/dal/postgres"
	"github.com/vinocafe/order-svc/internal/dal/uow"
	"github.com/vinocafe/order-svc/internal/service/errs"
	"github.com/vinocafe/order-svc/internal/service/models/category"
	"github.com/vinocafe/order-svc/internal/service/models/customer"
	"github.com/vinocafe/order-svc/internal/service/models/lineitem"
	"github.com/vinocafe/order-svc/internal/service/models/money"
	"github.com/vinocafe/order-svc/internal/service/models/order"
	"github.com/vinocafe/order-svc/internal/service/models/profile"
	"github.com/vinocafe/order-svc/internal/service/models/shipping"
)

const defaultPaymentMethod = "cod"

type unitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	UserRepository() iuserrepo.IUserRepository
	CustomerRepository() icustomerrepo.ICustomerRepository
	OrderRepository() iorderrepo.IOrderRepository
	ShippingRepository() ishippingrepo.IShippingRepository
	LineItemRepository() ilineitemrepo.ILineItemRepository
}

type eventPublisher interface {
	PublishOrderCreated(ctx context.Context, o order.Order) error
}

// OrderService is a service for creating and reading orders.
type OrderService struct {
	pgClient    *postgres.Client
	profileRepo iprofilerepo.IProfileRepository
	events      eventPublisher
	uowFactory  func() unitOfWork
}

func (s *OrderService) newUOW() unitOfWork {
	if s.uowFactory != nil {
		return s.uowFactory()
	}

	return uow.NewUnitOfWork(s.pgClient)
}

// option is a function that configures the OrderService.
type option func(*OrderService)

// MustNewOrderService creates a new OrderService.
func MustNewOrderService(opts ...option) *OrderService {
	s := &OrderService{}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// WithPostgresClient sets the Postgres client for the OrderService.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithPostgresClient(pgClient *postgres.Client) option {
	return func(s *OrderService) {
		s.pgClient = pgClient
	}
}

// WithProfileRepository sets the payment profile repository.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithProfileRepository(repo iprofilerepo.IProfileRepository) option {
	return func(s *OrderService) {
		s.profileRepo = repo
	}
}

// WithEventPublisher sets the order event publisher.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithEventPublisher(events eventPublisher) option {
	return func(s *OrderService) {
		s.events = events
	}
}

// WithUnitOfWorkFactory overrides how units of work are constructed.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithUnitOfWorkFactory(factory func() unitOfWork) option {
	return func(s *OrderService) {
		s.uowFactory = factory
	}
}

// CreateOrder persists a completed checkout in one transaction: customer
// resolution, order header, shipping snapshot and line items. Any failure
// rolls the whole order back. Profile saving and event publishing happen
// after commit and never fail the order.
func (s *OrderService) CreateOrder(ctx context.Context, req order.CreateOrder) (*order.Order, error) {
	ctx, span := otel.Tracer("service").Start(ctx, "OrderService.CreateOrder")
	defer span.End()

	if req.UserID == 0 {
		return nil, errs.NewValidation("user_id is required to create an order")
	}
	if len(req.Items) == 0 {
		return nil, errs.NewValidation("at least one item is required to create an order")
	}

	work := s.newUOW()
	if err := work.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = work.Rollback(ctx)
	}()

	customerID, err := s.ensureCustomer(ctx, work, req.UserID, req.Shipping)
	if err != nil {
		return nil, err
	}

	// The stated total is stored verbatim, not recomputed from the items.
	orderID, err := work.OrderRepository().Insert(ctx, customerID, money.Quantize(req.Total))
	if err != nil {
		return nil, err
	}

	if err := work.ShippingRepository().Insert(ctx, orderID, req.Shipping); err != nil {
		return nil, err
	}

	if err := s.insertItems(ctx, work, orderID, req.Items); err != nil {
		return nil, err
	}

	if err := work.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit order: %w", err)
	}

	if req.SaveDetails {
		s.saveProfileFromCheckout(ctx, req)
	}

	view, err := s.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if s.events != nil {
		if err := s.events.PublishOrderCreated(ctx, *view); err != nil {
			slog.Error("Failed to publish order created event", "order_id", orderID, "error", err)
		}
	}

	return view, nil
}

// ensureCustomer finds or creates the customer row for the user's email and
// refreshes its contact fields with the latest fulfilment info.
func (s *OrderService) ensureCustomer(ctx context.Context, work unitOfWork, userID int64, ship shipping.Detail) (int64, error) {
	usr, err := work.UserRepository().GetByID(ctx, userID)
	if err != nil {
		return 0, err
	}
	if usr == nil {
		return 0, errs.NewValidation("user not found for order creation")
	}

	name := ship.FullName
	if name == "" {
		name = usr.Username
	}
	namePtr := optional(name)
	phone := optional(ship.Phone)
	address := optional(ship.CombinedAddress())

	customers := work.CustomerRepository()

	id, found, err := customers.GetIDByEmail(ctx, usr.Email)
	if err != nil {
		return 0, err
	}
	if found {
		if err := customers.UpdateContact(ctx, id, namePtr, phone, address); err != nil {
			return 0, err
		}

		return id, nil
	}

	return customers.Insert(ctx, customer.Customer{
		Name:    namePtr,
		Email:   usr.Email,
		Phone:   phone,
		Address: address,
	})
}

// insertItems writes one row per line into the category's table. Items whose
// category is neither wine nor coffee are dropped, not rejected.
func (s *OrderService) insertItems(ctx context.Context, work unitOfWork, orderID int64, items []lineitem.NewItem) error {
	for _, item := range items {
		quantity := item.Quantity
		if quantity == 0 {
			quantity = 1
		}
		subtotal := money.Quantize(item.Price).Mul(decimal.NewFromInt(int64(quantity)))

		cat, err := category.ParseCategory(item.Category)
		if err != nil {
			continue
		}

		switch cat {
		case category.CategoryWine:
			if err := work.LineItemRepository().InsertWine(ctx, orderID, item.ProductID, quantity, subtotal); err != nil {
				return err
			}
		case category.CategoryCoffee:
			if err := work.LineItemRepository().InsertCoffee(ctx, orderID, item.ProductID, quantity, subtotal); err != nil {
				return err
			}
		}
	}

	return nil
}

// saveProfileFromCheckout persists the shipping/payment combination for
// reuse. It runs outside the order transaction and only logs failures.
func (s *OrderService) saveProfileFromCheckout(ctx context.Context, req order.CreateOrder) {
	if s.profileRepo == nil {
		return
	}

	method := req.Payment.Method
	if method == "" {
		method = defaultPaymentMethod
	}

	p := profile.Profile{
		FullName:             optional(req.Shipping.FullName),
		Phone:                optional(req.Shipping.Phone),
		AddressLine1:         optional(req.Shipping.AddressLine1),
		AddressLine2:         optional(req.Shipping.AddressLine2),
		City:                 optional(req.Shipping.City),
		State:                optional(req.Shipping.State),
		PostalCode:           optional(req.Shipping.PostalCode),
		Country:              optional(req.Shipping.Country),
		PaymentMethod:        &method,
		UpiID:                optional(req.Payment.UpiID),
		DeliveryInstructions: optional(req.Shipping.DeliveryInstructions),
	}

	if err := s.profileRepo.Insert(ctx, req.UserID, p); err != nil {
		slog.Error("Failed to save payment profile", "user_id", req.UserID, "error", err)
	}
}

// GetOrder returns the materialized order view for an id.
func (s *OrderService) GetOrder(ctx context.Context, orderID int64) (*order.Order, error) {
	ctx, span := otel.Tracer("service").Start(ctx, "OrderService.GetOrder")
	defer span.End()

	work := s.newUOW()

	view, err := work.OrderRepository().GetView(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if view == nil {
		return nil, errs.NewNotFound("Order not found")
	}

	items, err := work.LineItemRepository().ListByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	view.Items = items

	return view, nil
}

// ListOrdersForUser returns every order placed by the user, newest first.
// An unknown user yields an empty list, not an error.
func (s *OrderService) ListOrdersForUser(ctx context.Context, userID int64) ([]order.Order, error) {
	ctx, span := otel.Tracer("service").Start(ctx, "OrderService.ListOrdersForUser")
	defer span.End()

	work := s.newUOW()

	usr, err := work.UserRepository().GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if usr == nil {
		return []order.Order{}, nil
	}

	ids, err := work.OrderRepository().ListIDsByEmail(ctx, usr.Email)
	if err != nil {
		return nil, err
	}

	return s.collectOrders(ctx, ids)
}

// ListAllOrders returns every recorded order, newest first.
func (s *OrderService) ListAllOrders(ctx context.Context) ([]order.Order, error) {
	ctx, span := otel.Tracer("service").Start(ctx, "OrderService.ListAllOrders")
	defer span.End()

	work := s.newUOW()

	ids, err := work.OrderRepository().ListIDs(ctx)
	if err != nil {
		return nil, err
	}

	return s.collectOrders(ctx, ids)
}

func (s *OrderService) collectOrders(ctx context.Context, ids []int64) ([]order.Order, error) {
	orders := make([]order.Order, 0, len(ids))
	for _, id := range ids {
		o, err := s.GetOrder(ctx, id)
		if err != nil {
			var notFound *errs.NotFoundError
			if errors.As(err, &notFound) {
				continue
			}

			return nil, err
		}
		orders = append(orders, *o)
	}

	return orders, nil
}

// GetLatestPaymentProfile returns the most recently saved profile for a
// user, or nil when none exists.
func (s *OrderService) GetLatestPaymentProfile(ctx context.Context, userID int64) (*profile.Profile, error) {
	if s.profileRepo == nil {
		return nil, nil
	}

	return s.profileRepo.GetLatest(ctx, userID)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}
