package dto

// CreateCustomerRequest body para POST /api/customers.
type CreateCustomerRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	Doc     string `json:"doc" validate:"max=30"`
	Email   string `json:"email" validate:"omitempty,email"`
	Contact string `json:"contact" validate:"max=50"`
}

// UpdateCustomerRequest body para PUT /api/customers/:uuid.
type UpdateCustomerRequest struct {
	Name    *string `json:"name,omitempty" validate:"omitempty,max=200"`
	Doc     *string `json:"doc,omitempty" validate:"omitempty,max=30"`
	Email   *string `json:"email,omitempty" validate:"omitempty,email"`
	Contact *string `json:"contact,omitempty" validate:"omitempty,max=50"`
}
