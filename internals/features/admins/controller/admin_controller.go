// file: internals/features/admins/controller/admin_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"absenku_backend/internals/features/admins/dto"
	"absenku_backend/internals/features/admins/model"
	helper "absenku_backend/internals/helpers"
)

type AdminController struct {
	DB *gorm.DB
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db}
}

// GET /api/admins
func (ctrl *AdminController) List(c *fiber.Ctx) error {
	var rows []model.AdminModel
	if err := ctrl.DB.Order("admin_created_at DESC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch admins")
	}
	return helper.JsonOK(c, "Data admin berhasil diambil", rows)
}

// POST /api/admins
func (ctrl *AdminController) Create(c *fiber.Ctx) error {
	var req dto.CreateAdminRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var existing model.AdminModel
	err := ctrl.DB.Where("admin_code = ?", req.AdminCode).First(&existing).Error
	if err == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID admin sudah digunakan")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create admin")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	row := req.ToModel(string(hash))
	if err := ctrl.DB.Create(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create admin")
	}

	return helper.JsonCreated(c, "Admin berhasil dibuat", row)
}

// PUT /api/admins/:id
func (ctrl *AdminController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateAdminRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := map[string]interface{}{
		"admin_name":  req.Name,
		"admin_email": req.Email,
	}
	if req.Password != nil && *req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
		}
		updates["admin_password"] = string(hash)
	}
	if req.IsActive != nil {
		updates["admin_is_active"] = *req.IsActive
	}

	res := ctrl.DB.Model(&model.AdminModel{}).
		Where("admin_id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update admin")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Admin tidak ditemukan")
	}

	var updated model.AdminModel
	if err := ctrl.DB.Where("admin_id = ?", id).First(&updated).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update admin")
	}
	return helper.JsonUpdated(c, "Admin berhasil diubah", updated)
}

// DELETE /api/admins/:id
func (ctrl *AdminController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctrl.DB.Where("admin_id = ?", id).Delete(&model.AdminModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete admin")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Admin tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Admin berhasil dihapus", nil)
}

// DELETE /api/admins/delete-all
func (ctrl *AdminController) DeleteAll(c *fiber.Ctx) error {
	if err := ctrl.DB.Where("1 = 1").Delete(&model.AdminModel{}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete all admins")
	}
	return helper.JsonDeleted(c, "Seluruh data admin dihapus", nil)
}
