package employee

import "github.com/shopspring/decimal"

type CreateEmployeeRequest struct {
	Name        string          `json:"name" binding:"required,max=255"`
	Department  string          `json:"department" binding:"required,max=255"`
	BasicSalary decimal.Decimal `json:"basic_salary"`
}

type UpdateEmployeeRequest struct {
	Name        string          `json:"name" binding:"required,max=255"`
	Department  string          `json:"department" binding:"required,max=255"`
	BasicSalary decimal.Decimal `json:"basic_salary"`
}

type EmployeeResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Department   string `json:"department,omitempty"`
	BasicSalary  string `json:"basic_salary,omitempty"`
	Organization string `json:"organization,omitempty"`
}
