package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductDiscountedTotal(t *testing.T) {
	p := Product{Price: 200, Discount: 25}
	assert.Equal(t, 150.0, p.DiscountedTotal())

	p = Product{Price: 99.99, Discount: 0}
	assert.Equal(t, 99.99, p.DiscountedTotal())
}

func TestEmployeeComputedFullName(t *testing.T) {
	e := Employee{FirstName: "Minh", LastName: "Nguyen"}
	assert.Equal(t, "Minh Nguyen", e.ComputedFullName())
}

func TestOrderComputedTotal(t *testing.T) {
	o := Order{Items: []OrderItem{
		{Quantity: 2, Product: &Product{Price: 100, Discount: 10}},
		{Quantity: 1, Product: &Product{Price: 50, Discount: 0}},
		{Quantity: 3, Product: nil}, // unresolved reference contributes nothing
	}}
	assert.Equal(t, 2*90.0+50.0, o.ComputedTotal())
}

func TestPasswordNeverSerialized(t *testing.T) {
	c := Customer{FirstName: "An", Email: "an@example.com", Password: "$2a$10$hash"}
	raw, err := json.Marshal(c)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "hash")
	assert.NotContains(t, string(raw), "password")

	e := Employee{FirstName: "An", Password: "$2a$10$hash"}
	raw, err = json.Marshal(e)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "hash")
}
