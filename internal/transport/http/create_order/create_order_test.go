package createorder

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vinocafe/order-svc/internal/service/errs"
	"github.com/vinocafe/order-svc/internal/service/models/order"
)

type serviceMock struct{ mock.Mock }

func (m *serviceMock) CreateOrder(ctx context.Context, req order.CreateOrder) (*order.Order, error) {
	args := m.Called(ctx, req)
	o, _ := args.Get(0).(*order.Order)

	return o, args.Error(1)
}

func post(t *testing.T, svc service, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
	rec := httptest.NewRecorder()
	CreateOrder(rec, req, svc)

	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body["error"]
}

func TestCreateOrderRejectsMissingRootFields(t *testing.T) {
	rec := post(t, &serviceMock{}, `{"items": [{"id": 7, "category": "wine"}], "shipping": {}}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Missing required field(s): userId, total", decodeError(t, rec))
}

func TestCreateOrderRejectsEmptyItems(t *testing.T) {
	rec := post(t, &serviceMock{}, `{"userId": 42, "items": [], "shipping": {}, "total": 10}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Order must contain at least one item", decodeError(t, rec))
}

func TestCreateOrderRejectsIncompleteShipping(t *testing.T) {
	body := `{
		"userId": 42,
		"items": [{"id": 7, "category": "wine", "quantity": 1, "price": 100}],
		"shipping": {"full_name": "Asha K", "address_line1": "12 MG Road", "city": "Bengaluru", "state": "KA", "country": "IN"},
		"total": 100
	}`

	rec := post(t, &serviceMock{}, body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Shipping details incomplete: phone, postal_code", decodeError(t, rec))
}

func TestCreateOrderRejectsMalformedBody(t *testing.T) {
	rec := post(t, &serviceMock{}, `{"userId": `)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Failed to decode request body", decodeError(t, rec))
}

func TestCreateOrderNormalizesSynonymKeys(t *testing.T) {
	body := `{
		"userId": 42,
		"items": [
			{"id": 7, "category": "wine", "quantity": 2, "price": 1200.00},
			{"recommendedId": 3, "recommendedType": "coffee", "quantity": 1, "price": 450.50}
		],
		"shipping": {
			"full_name": "Asha K", "phone": "9990001111", "address_line1": "12 MG Road",
			"city": "Bengaluru", "state": "KA", "postal_code": "560001", "country": "IN"
		},
		"payment": {"method": "upi", "upiId": "asha@upi"},
		"total": 2850.50
	}`

	svc := &serviceMock{}
	svc.On("CreateOrder", mock.Anything, mock.MatchedBy(func(req order.CreateOrder) bool {
		if req.UserID != 42 || len(req.Items) != 2 {
			return false
		}
		if req.Items[0].ProductID != 7 || req.Items[0].Category != "wine" {
			return false
		}
		if req.Items[1].ProductID != 3 || req.Items[1].Category != "coffee" {
			return false
		}
		if req.Payment.Method != "upi" || req.Payment.UpiID != "asha@upi" {
			return false
		}
		// saveDetails omitted: saving the profile defaults on.
		return req.SaveDetails && req.Total.String() == "2850.5"
	})).Return(&order.Order{ID: 99, Total: 2850.50, TotalAmount: 2850.50}, nil)

	rec := post(t, svc, body)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Message string      `json:"message"`
		Order   order.Order `json:"order"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Order recorded successfully", resp.Message)
	assert.Equal(t, int64(99), resp.Order.ID)

	svc.AssertExpectations(t)
}

func TestCreateOrderMapsServiceErrors(t *testing.T) {
	body := `{
		"userId": 42,
		"items": [{"id": 7, "category": "wine", "quantity": 1, "price": 100}],
		"shipping": {
			"full_name": "Asha K", "phone": "9990001111", "address_line1": "12 MG Road",
			"city": "Bengaluru", "state": "KA", "postal_code": "560001", "country": "IN"
		},
		"total": 100
	}`

	svc := &serviceMock{}
	svc.On("CreateOrder", mock.Anything, mock.Anything).
		Return(nil, errs.NewValidation("user not found for order creation"))

	rec := post(t, svc, body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "user not found for order creation", decodeError(t, rec))
}
