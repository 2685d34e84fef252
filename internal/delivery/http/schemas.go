package http

import (
	"regexp"

	"github.com/phamanh/retail-store-backend/internal/validation"
)

var (
	emailPattern = regexp.MustCompile(`^[\w.-]+@([\w-]+\.)+[\w-]{2,4}$`)
	// Regional mobile numbers, optional leading zero.
	phonePattern = regexp.MustCompile(`^0?(3[2-9]|5[689]|7[06-9]|8[0-689]|9[0-46-9])[0-9]{7}$`)
)

func floatPtr(f float64) *float64 { return &f }

var (
	zero        = floatPtr(0)
	one         = floatPtr(1)
	maxDiscount = floatPtr(75)
)

func pageRules() []validation.Rule {
	return []validation.Rule{
		{Field: "skip", Type: validation.Number, Min: zero},
		{Field: "limit", Type: validation.Number, Min: zero},
	}
}

var getIDSchema = &validation.Schema{
	Params: validation.Section{Rules: []validation.Rule{
		{Field: "id", Required: true, Type: validation.UUID},
	}},
}

var categoryListSchema = &validation.Schema{
	Query: validation.Section{Rules: append(pageRules(),
		validation.Rule{Field: "categoryName"},
	)},
}

var categoryCreateSchema = &validation.Schema{
	Body: validation.Section{Rules: []validation.Rule{
		{Field: "name", Required: true},
		{Field: "description"},
		{Field: "img"},
	}},
}

var supplierListSchema = &validation.Schema{
	Query: validation.Section{Rules: append(pageRules(),
		validation.Rule{Field: "supplierName"},
	)},
}

var supplierCreateSchema = &validation.Schema{
	Body: validation.Section{Rules: []validation.Rule{
		{Field: "name", Required: true},
		{Field: "email", Required: true, Pattern: emailPattern},
		{Field: "phoneNumber", Pattern: phonePattern},
		{Field: "address", Required: true},
	}},
}

var productListSchema = &validation.Schema{
	Query: validation.Section{
		Rules: append(pageRules(),
			validation.Rule{Field: "category", Type: validation.UUID},
			validation.Rule{Field: "supplier", Type: validation.UUID},
			validation.Rule{Field: "productName"},
			validation.Rule{Field: "description"},
			validation.Rule{Field: "stockStart", Type: validation.Number, Min: zero},
			validation.Rule{Field: "stockEnd", Type: validation.Number},
			validation.Rule{Field: "priceStart", Type: validation.Number, Min: zero},
			validation.Rule{Field: "priceEnd", Type: validation.Number},
			validation.Rule{Field: "discountStart", Type: validation.Number, Min: zero},
			validation.Rule{Field: "discountEnd", Type: validation.Number, Max: maxDiscount},
		),
		Checks: []validation.CrossCheck{
			validation.RangePair("stockStart", "stockEnd"),
			validation.RangePair("priceStart", "priceEnd"),
			validation.RangePair("discountStart", "discountEnd"),
		},
	},
}

var productCreateSchema = &validation.Schema{
	Body: validation.Section{Rules: []validation.Rule{
		{Field: "name", Required: true},
		{Field: "price", Required: true, Type: validation.Number, Min: zero},
		{Field: "discount", Required: true, Type: validation.Number, Min: zero, Max: maxDiscount},
		{Field: "stock", Required: true, Type: validation.Number, Min: zero},
		{Field: "description", Required: true},
		{Field: "img", Required: true},
		{Field: "categoryId", Required: true, Type: validation.UUID},
		{Field: "supplierId", Required: true, Type: validation.UUID},
	}},
}

var customerListSchema = &validation.Schema{
	Query: validation.Section{Rules: append(pageRules(),
		validation.Rule{Field: "firstNameCustomer"},
		validation.Rule{Field: "lastNameCustomer"},
	)},
}

var customerCreateSchema = &validation.Schema{
	Body: validation.Section{Rules: []validation.Rule{
		{Field: "firstName", Required: true},
		{Field: "lastName", Required: true},
		{Field: "email", Required: true, Pattern: emailPattern},
		{Field: "phoneNumber", Pattern: phonePattern},
		{Field: "address"},
		{Field: "password", Required: true, MinLen: 3, MaxLen: 31},
	}},
}

var employeeListSchema = &validation.Schema{
	Query: validation.Section{Rules: append(pageRules(),
		validation.Rule{Field: "firstNameEmployee"},
		validation.Rule{Field: "lastNameEmployee"},
	)},
}

var employeeCreateSchema = &validation.Schema{
	Body: validation.Section{Rules: []validation.Rule{
		{Field: "firstName", Required: true},
		{Field: "lastName", Required: true},
		{Field: "email", Required: true, Pattern: emailPattern},
		{Field: "phoneNumber", Pattern: phonePattern},
		{Field: "address", Required: true},
		{Field: "password", Required: true, MinLen: 3, MaxLen: 31},
	}},
}

var loginSchema = &validation.Schema{
	Body: validation.Section{Rules: []validation.Rule{
		{Field: "email", Required: true, Pattern: emailPattern},
		{Field: "password", Required: true, MinLen: 3, MaxLen: 31},
	}},
}

var orderListSchema = &validation.Schema{
	Query: validation.Section{Rules: append(pageRules(),
		validation.Rule{Field: "customer", Type: validation.UUID},
		validation.Rule{Field: "employee", Type: validation.UUID},
		validation.Rule{Field: "status"},
	)},
}

var orderCreateSchema = &validation.Schema{
	Body: validation.Section{
		Rules: []validation.Rule{
			{Field: "customerId", Required: true, Type: validation.UUID},
			{Field: "employeeId", Required: true, Type: validation.UUID},
		},
		Checks: []validation.CrossCheck{checkOrderDetails},
	},
}

// checkOrderDetails validates the nested line items: a non-empty list of
// {productId, quantity} pairs with valid identifiers and quantity >= 1.
func checkOrderDetails(src validation.Source) *validation.Violation {
	raw, ok := src["orderDetails"]
	if !ok || raw == nil {
		return &validation.Violation{Field: "orderDetails", Message: "orderDetails is a required field"}
	}
	items, ok := raw.([]any)
	if !ok || len(items) == 0 {
		return &validation.Violation{Field: "orderDetails", Message: "orderDetails must be a non-empty list"}
	}
	for _, rawItem := range items {
		item, ok := rawItem.(map[string]any)
		if !ok {
			return &validation.Violation{Field: "orderDetails", Message: "orderDetails entries must be objects"}
		}
		sub := &validation.Schema{Body: validation.Section{Rules: []validation.Rule{
			{Field: "productId", Required: true, Type: validation.UUID},
			{Field: "quantity", Required: true, Type: validation.Number, Min: one},
		}}}
		if violations := validation.Validate(sub, validation.Source(item), nil, nil); len(violations) > 0 {
			return &violations[0]
		}
	}
	return nil
}

var cartCreateSchema = &validation.Schema{
	Body: validation.Section{Rules: []validation.Rule{
		{Field: "customerId", Required: true, Type: validation.UUID},
		{Field: "productId", Required: true, Type: validation.UUID},
		{Field: "quantity", Required: true, Type: validation.Number, Min: one},
	}},
}

var cartCustomerSchema = &validation.Schema{
	Params: validation.Section{Rules: []validation.Rule{
		{Field: "customerId", Required: true, Type: validation.UUID},
	}},
}

var cartItemSchema = &validation.Schema{
	Params: validation.Section{Rules: []validation.Rule{
		{Field: "customerId", Required: true, Type: validation.UUID},
		{Field: "productId", Required: true, Type: validation.UUID},
	}},
}

// patchSchema derives a PATCH schema from a create schema: fields present in
// the patch keep their creation constraints, absent fields are not required,
// and the path id is checked.
func patchSchema(create *validation.Schema) *validation.Schema {
	s := create.Partial()
	s.Params = getIDSchema.Params
	return s
}

var (
	categoryPatchSchema = patchSchema(categoryCreateSchema)
	supplierPatchSchema = patchSchema(supplierCreateSchema)
	productPatchSchema  = patchSchema(productCreateSchema)
	customerPatchSchema = patchSchema(customerCreateSchema)
	employeePatchSchema = patchSchema(employeeCreateSchema)
	orderPatchSchema    = patchSchema(&validation.Schema{
		Body: validation.Section{Rules: []validation.Rule{
			{Field: "customerId", Type: validation.UUID},
			{Field: "employeeId", Type: validation.UUID},
			{Field: "status"},
		}},
	})
)
