package order

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatOrderDate(t *testing.T) {
	ts := time.Date(2024, 3, 15, 18, 30, 5, 0, time.UTC)
	assert.Equal(t, "2024-03-15T18:30:05+05:30", FormatOrderDate(ts))
}

func TestOrderViewSurfacesTotalTwice(t *testing.T) {
	o := Order{
		ID:          12,
		CustomerID:  3,
		TotalAmount: 2850.50,
		Total:       2850.50,
		OrderDate:   FormatOrderDate(time.Date(2024, 3, 15, 18, 30, 5, 0, time.UTC)),
	}

	data, err := json.Marshal(o)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, 2850.50, decoded["total_amount"])
	assert.Equal(t, 2850.50, decoded["total"])
	assert.Equal(t, "2024-03-15T18:30:05+05:30", decoded["order_date"])

	// Payment rows are never written; the projection still has to be there.
	payment, ok := decoded["payment"].(map[string]any)
	require.True(t, ok)
	assert.Nil(t, payment["method"])
	assert.Nil(t, payment["status"])
}
