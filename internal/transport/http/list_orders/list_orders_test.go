package listorders

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vinocafe/order-svc/internal/service/models/order"
)

type serviceMock struct{ mock.Mock }

func (m *serviceMock) ListOrdersForUser(ctx context.Context, userID int64) ([]order.Order, error) {
	args := m.Called(ctx, userID)
	orders, _ := args.Get(0).([]order.Order)

	return orders, args.Error(1)
}

func (m *serviceMock) ListAllOrders(ctx context.Context) ([]order.Order, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]order.Order)

	return orders, args.Error(1)
}

type listResponse struct {
	Orders []order.Order `json:"orders"`
	Count  int           `json:"count"`
}

func TestListForUserInvalidID(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/orders/customer/{userId}", func(w http.ResponseWriter, r *http.Request) {
		ListForUser(w, r, &serviceMock{})
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders/customer/abc", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListForUserEmpty(t *testing.T) {
	svc := &serviceMock{}
	svc.On("ListOrdersForUser", mock.Anything, int64(5)).Return([]order.Order{}, nil)

	router := chi.NewRouter()
	router.Get("/orders/customer/{userId}", func(w http.ResponseWriter, r *http.Request) {
		ListForUser(w, r, svc)
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders/customer/5", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp listResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.Count)
	assert.NotNil(t, resp.Orders)
}

func TestListAll(t *testing.T) {
	svc := &serviceMock{}
	svc.On("ListAllOrders", mock.Anything).
		Return([]order.Order{{ID: 6}, {ID: 5}}, nil)

	rec := httptest.NewRecorder()
	ListAll(rec, httptest.NewRequest(http.MethodGet, "/orders/all", nil), svc)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp listResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Count)
	require.Len(t, resp.Orders, 2)
	assert.Equal(t, int64(6), resp.Orders[0].ID)
}
