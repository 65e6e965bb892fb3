package dto

import (
	m "absenku_backend/internals/features/employees/model"
)

/* =========================================================
 * REQUESTS — field mengikuti kontrak klien lama
 * ========================================================= */

type CreateEmployeeRequest struct {
	EmployeeCode string  `json:"employee_id" validate:"required,max=50"`
	Name         string  `json:"name" validate:"required,max=100"`
	Email        *string `json:"email" validate:"omitempty,email,max=100"`
	Phone        *string `json:"phone" validate:"omitempty,max=30"`
	Position     *string `json:"position" validate:"omitempty,max=100"`
	Password     string  `json:"password" validate:"required,min=6"`
}

type UpdateEmployeeRequest struct {
	Name     string  `json:"name" validate:"required,max=100"`
	Email    *string `json:"email" validate:"omitempty,email,max=100"`
	Phone    *string `json:"phone" validate:"omitempty,max=30"`
	Position *string `json:"position" validate:"omitempty,max=100"`
	Password *string `json:"password" validate:"omitempty,min=6"`
	IsActive *bool   `json:"is_active" validate:"omitempty"`
}

/* =========================================================
 * HELPERS
 * ========================================================= */

func (r CreateEmployeeRequest) ToModel(passwordHash string) m.EmployeeModel {
	return m.EmployeeModel{
		EmployeeCode:     r.EmployeeCode,
		EmployeeName:     r.Name,
		EmployeeEmail:    r.Email,
		EmployeePhone:    r.Phone,
		EmployeePosition: r.Position,
		EmployeePassword: passwordHash,
		EmployeeIsActive: true,
	}
}
