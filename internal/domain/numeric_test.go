package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gosupply/internal/domain"
)

func TestInt_UnmarshalJSON(t *testing.T) {
	cases := []struct {
		in      string
		want    domain.Int
		wantErr bool
	}{
		{`12`, 12, false},
		{`"12"`, 12, false},
		{`" 7 "`, 7, false},
		{`12.0`, 12, false},
		{`null`, 0, false},
		{`""`, 0, false},
		{`-3`, -3, false},
		{`12.5`, 0, true},
		{`"abc"`, 0, true},
		{`true`, 0, true},
		{`"1e400"`, 0, true},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			var got domain.Int
			err := json.Unmarshal([]byte(tc.in), &got)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDate_UnmarshalJSON(t *testing.T) {
	var d domain.Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-03-01"`), &d))
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), d.Time)

	require.NoError(t, json.Unmarshal([]byte(`"2024-03-01T10:20:30+02:00"`), &d))
	assert.Equal(t, time.Date(2024, 3, 1, 8, 20, 30, 0, time.UTC), d.Time)

	assert.Error(t, json.Unmarshal([]byte(`"01/03/2024"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`20240301`), &d))
}

func TestPurchaseRequest_DecodeAndEncode(t *testing.T) {
	body := `{
		"date": "2024-03-01",
		"note": "first batch",
		"ppn": "11",
		"grandTotal": 111.5,
		"userId": "1",
		"detail": [{"product": {"productId": 5, "productName": "Paracetamol"}, "price": "10.5", "qty": "10", "totalPrice": 105}]
	}`

	var req domain.PurchaseRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	assert.Equal(t, domain.Int(1), req.UserID)
	require.Len(t, req.Detail, 1)
	assert.Equal(t, domain.Int(5), req.Detail[0].Product.ProductID)
	assert.Equal(t, domain.Int(10), req.Detail[0].Qty)
	assert.True(t, decimal.RequireFromString("10.5").Equal(req.Detail[0].Price))

	out, err := json.Marshal(req)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"userId":1`)
	assert.Contains(t, string(out), `"date":"2024-03-01T00:00:00Z"`)
	assert.Contains(t, string(out), `"grandTotal":111.5`)
}

func TestPurchaseRequest_RejectsNonNumericMoney(t *testing.T) {
	var req domain.PurchaseRequest
	err := json.Unmarshal([]byte(`{"ppn": "eleven"}`), &req)
	assert.Error(t, err)
}

func TestSupplierInput_ToSupplier_EmptyEmailIsNull(t *testing.T) {
	s := domain.SupplierInput{FirstName: " Jane ", LastName: "Doe", Phone: "555", Address: "X"}.ToSupplier(0)
	assert.Nil(t, s.Email)
	assert.Equal(t, "Jane", s.FirstName)

	s = domain.SupplierInput{FirstName: "Jane", Email: "jane@example.com"}.ToSupplier(3)
	require.NotNil(t, s.Email)
	assert.Equal(t, "jane@example.com", *s.Email)
	assert.Equal(t, int64(3), s.ID)
}

func TestNewSupplierPage(t *testing.T) {
	page := domain.NewSupplierPage(nil, 10)
	assert.NotNil(t, page.Items)
	assert.Zero(t, page.LastID)
	assert.False(t, page.HasMore)

	page = domain.NewSupplierPage([]domain.Supplier{{ID: 9}, {ID: 4}}, 2)
	assert.Equal(t, int64(4), page.LastID)
	assert.True(t, page.HasMore)
}

func TestSupplierFilter_Normalize(t *testing.T) {
	f := domain.SupplierFilter{LastID: -1, Limit: 0}.Normalize()
	assert.Zero(t, f.LastID)
	assert.Equal(t, domain.DefaultSupplierLimit, f.Limit)

	f = domain.SupplierFilter{Limit: 1000}.Normalize()
	assert.Equal(t, domain.MaxSupplierLimit, f.Limit)
}

func TestNewSupplierPage_UsesCappedLimit(t *testing.T) {
	f := domain.SupplierFilter{Limit: 500}.Normalize()
	items := make([]domain.Supplier, domain.MaxSupplierLimit)
	for i := range items {
		items[i].ID = int64(len(items) - i)
	}

	page := domain.NewSupplierPage(items, f.Limit)
	assert.True(t, page.HasMore)
	assert.Equal(t, int64(1), page.LastID)

	page = domain.NewSupplierPage(items[:40], f.Limit)
	assert.False(t, page.HasMore)
}
