package httptransport

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/spf13/viper"

	"github.com/vinocafe/order-svc/internal/service/models/order"
	"github.com/vinocafe/order-svc/internal/service/models/profile"
	createorder "github.com/vinocafe/order-svc/internal/transport/http/create_order"
	getorder "github.com/vinocafe/order-svc/internal/transport/http/get_order"
	listorders "github.com/vinocafe/order-svc/internal/transport/http/list_orders"
	paymentprofile "github.com/vinocafe/order-svc/internal/transport/http/payment_profile"
	"github.com/vinocafe/order-svc/pkg/http/middleware/identity"
	"github.com/vinocafe/order-svc/pkg/http/middleware/trace"
	"github.com/vinocafe/order-svc/pkg/logger"
)

type service interface {
	CreateOrder(ctx context.Context, req order.CreateOrder) (*order.Order, error)
	GetOrder(ctx context.Context, orderID int64) (*order.Order, error)
	ListOrdersForUser(ctx context.Context, userID int64) ([]order.Order, error)
	ListAllOrders(ctx context.Context) ([]order.Order, error)
	GetLatestPaymentProfile(ctx context.Context, userID int64) (*profile.Profile, error)
}

type HTTPTransport struct {
	server  *http.Server
	router  *chi.Mux
	service service
}

func NewHTTPTransport(service service) *HTTPTransport {
	router := newRouter()
	server := newServer(router)
	return &HTTPTransport{
		server:  server,
		router:  router,
		service: service,
	}
}

func (h *HTTPTransport) Run() error {
	return h.server.ListenAndServe()
}

func (h *HTTPTransport) Shutdown(ctx context.Context) error {
	return h.server.Shutdown(ctx)
}

// RegisterRoutes registers the routes for the HTTPTransport.
// The static segments (all, customer, payment-profile) must not be shadowed
// by the {id} route, so they are declared on their own paths.
func (h *HTTPTransport) RegisterRoutes() {
	h.router.Route("/orders", func(r chi.Router) {
		r.Post("/", h.createOrder)
		r.With(identity.RequireAdmin).Get("/all", h.listAllOrders)
		r.Get("/customer/{userId}", h.listOrdersForUser)
		r.Get("/payment-profile/{userId}", h.getPaymentProfile)
		r.Get("/{id}", h.getOrder)
	})
}

func (h *HTTPTransport) createOrder(w http.ResponseWriter, r *http.Request) {
	createorder.CreateOrder(w, r, h.service)
}

func (h *HTTPTransport) getOrder(w http.ResponseWriter, r *http.Request) {
	getorder.GetOrder(w, r, h.service)
}

func (h *HTTPTransport) listOrdersForUser(w http.ResponseWriter, r *http.Request) {
	listorders.ListForUser(w, r, h.service)
}

func (h *HTTPTransport) listAllOrders(w http.ResponseWriter, r *http.Request) {
	listorders.ListAll(w, r, h.service)
}

func (h *HTTPTransport) getPaymentProfile(w http.ResponseWriter, r *http.Request) {
	paymentprofile.GetLatest(w, r, h.service)
}

func newRouter() *chi.Mux {
	router := chi.NewMux()
	router.Use(middleware.RequestID)
	router.Use(trace.NewTraceMiddleware)
	router.Use(logger.NewLoggerMiddleware(slog.Default()))

	allowedOrigins := viper.GetStringSlice("server.http.cors.allowed_origins")
	allowedMethods := viper.GetStringSlice("server.http.cors.allowed_methods")
	allowedHeaders := viper.GetStringSlice("server.http.cors.allowed_headers")
	exposedHeaders := viper.GetStringSlice("server.http.cors.exposed_headers")
	allowCredentials := viper.GetBool("server.http.cors.allow_credentials")
	maxAge := viper.GetInt("server.http.cors.max_age")

	c := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   allowedMethods,
		AllowedHeaders:   allowedHeaders,
		ExposedHeaders:   exposedHeaders,
		AllowCredentials: allowCredentials,
		MaxAge:           maxAge,
	})

	router.Use(c.Handler)

	return router
}

func newServer(router http.Handler) *http.Server {
	return &http.Server{
		Addr:    "0.0.0.0:" + viper.GetString("server.http.port"),
		Handler: router,
	}
}
