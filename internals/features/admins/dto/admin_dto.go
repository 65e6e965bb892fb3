package dto

import (
	m "absenku_backend/internals/features/admins/model"
)

type CreateAdminRequest struct {
	AdminCode string  `json:"admin_id" validate:"required,max=50"`
	Name      string  `json:"name" validate:"required,max=100"`
	Email     *string `json:"email" validate:"omitempty,email,max=100"`
	Password  string  `json:"password" validate:"required,min=6"`
}

type UpdateAdminRequest struct {
	Name     string  `json:"name" validate:"required,max=100"`
	Email    *string `json:"email" validate:"omitempty,email,max=100"`
	Password *string `json:"password" validate:"omitempty,min=6"`
	IsActive *bool   `json:"is_active" validate:"omitempty"`
}

func (r CreateAdminRequest) ToModel(passwordHash string) m.AdminModel {
	return m.AdminModel{
		AdminCode:     r.AdminCode,
		AdminName:     r.Name,
		AdminEmail:    r.Email,
		AdminPassword: passwordHash,
		AdminIsActive: true,
	}
}
