package employee

import "strings"

type CreateEmployeeRequest struct {
	EmployeeID string `json:"employee_id" validate:"required"`
	FullName   string `json:"full_name" validate:"required"`
	Email      string `json:"email" validate:"required"`
	Department string `json:"department" validate:"required"`
}

// Normalize trims surrounding whitespace so a blank field counts as empty.
func (r CreateEmployeeRequest) Normalize() CreateEmployeeRequest {
	return CreateEmployeeRequest{
		EmployeeID: strings.TrimSpace(r.EmployeeID),
		FullName:   strings.TrimSpace(r.FullName),
		Email:      strings.TrimSpace(r.Email),
		Department: strings.TrimSpace(r.Department),
	}
}
