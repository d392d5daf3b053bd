package getorder

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

	"github.com/vinocafe/order-svc/internal/service/errs"
	"github.com/vinocafe/order-svc/internal/service/models/order"
)

type serviceMock struct{ mock.Mock }

func (m *serviceMock) GetOrder(ctx context.Context, orderID int64) (*order.Order, error) {
	args := m.Called(ctx, orderID)
	o, _ := args.Get(0).(*order.Order)

	return o, args.Error(1)
}

func get(svc service, target string) *httptest.ResponseRecorder {
	router := chi.NewRouter()
	router.Get("/orders/{id}", func(w http.ResponseWriter, r *http.Request) {
		GetOrder(w, r, svc)
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

	return rec
}

func TestGetOrderInvalidID(t *testing.T) {
	rec := get(&serviceMock{}, "/orders/abc")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetOrderNotFound(t *testing.T) {
	svc := &serviceMock{}
	svc.On("GetOrder", mock.Anything, int64(404)).Return(nil, errs.NewNotFound("Order not found"))

	rec := get(svc, "/orders/404")

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Order not found", body["error"])
}

func TestGetOrderOK(t *testing.T) {
	svc := &serviceMock{}
	svc.On("GetOrder", mock.Anything, int64(99)).
		Return(&order.Order{ID: 99, CustomerID: 7, Total: 2850.50, TotalAmount: 2850.50}, nil)

	rec := get(svc, "/orders/99")

	require.Equal(t, http.StatusOK, rec.Code)

	var view order.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, int64(99), view.ID)
	assert.Equal(t, 2850.50, view.Total)
}
