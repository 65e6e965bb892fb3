package dto

// POST /api/login — field mengikuti kontrak klien lama
type LoginRequest struct {
	UserType string `json:"userType" validate:"required,oneof=admin karyawan"`
	UserID   string `json:"userId" validate:"required,max=50"`
	Password string `json:"password" validate:"required"`
}
