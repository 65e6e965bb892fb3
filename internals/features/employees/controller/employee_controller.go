// file: internals/features/employees/controller/employee_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	attendanceModel "absenku_backend/internals/features/attendance/model"
	"absenku_backend/internals/features/employees/dto"
	"absenku_backend/internals/features/employees/model"
	leaveModel "absenku_backend/internals/features/leave_requests/model"
	notificationModel "absenku_backend/internals/features/notifications/model"
	helper "absenku_backend/internals/helpers"
)

type EmployeeController struct {
	DB *gorm.DB
}

func NewEmployeeController(db *gorm.DB) *EmployeeController {
	return &EmployeeController{DB: db}
}

/* ===================== LIST ===================== */
// GET /api/employees
func (ctrl *EmployeeController) List(c *fiber.Ctx) error {
	var rows []model.EmployeeModel
	if err := ctrl.DB.Order("employee_created_at DESC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch employees")
	}
	return helper.JsonOK(c, "Data karyawan berhasil diambil", rows)
}

/* ===================== CREATE ===================== */
// POST /api/employees
func (ctrl *EmployeeController) Create(c *fiber.Ctx) error {
	var req dto.CreateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	// Kode karyawan harus unik
	var existing model.EmployeeModel
	err := ctrl.DB.Where("employee_code = ?", req.EmployeeCode).First(&existing).Error
	if err == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID karyawan sudah digunakan")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create employee")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	row := req.ToModel(string(hash))
	if err := ctrl.DB.Create(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create employee")
	}

	return helper.JsonCreated(c, "Karyawan berhasil dibuat", row)
}

/* ===================== UPDATE ===================== */
// PUT /api/employees/:id
func (ctrl *EmployeeController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := map[string]interface{}{
		"employee_name":     req.Name,
		"employee_email":    req.Email,
		"employee_phone":    req.Phone,
		"employee_position": req.Position,
	}
	if req.Password != nil && *req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
		}
		updates["employee_password"] = string(hash)
	}
	if req.IsActive != nil {
		updates["employee_is_active"] = *req.IsActive
	}

	res := ctrl.DB.Model(&model.EmployeeModel{}).
		Where("employee_id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update employee")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Karyawan tidak ditemukan")
	}

	var updated model.EmployeeModel
	if err := ctrl.DB.Where("employee_id = ?", id).First(&updated).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update employee")
	}
	return helper.JsonUpdated(c, "Karyawan berhasil diubah", updated)
}

/* ===================== DELETE (cascade) ===================== */
// DELETE /api/employees/:id
func (ctrl *EmployeeController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		// Hapus data turunan dulu (absensi, cuti, notifikasi) baru karyawannya
		if err := tx.Where("attendance_employee_id = ?", id).Delete(&attendanceModel.AttendanceModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("leave_request_employee_id = ?", id).Delete(&leaveModel.LeaveRequestModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("notification_recipient_id = ?", id).Delete(&notificationModel.NotificationModel{}).Error; err != nil {
			return err
		}
		res := tx.Where("employee_id = ?", id).Delete(&model.EmployeeModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Karyawan tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete employee")
	}

	return helper.JsonDeleted(c, "Karyawan berhasil dihapus", nil)
}

/* ===================== DELETE ALL ===================== */
// DELETE /api/employees/delete-all
func (ctrl *EmployeeController) DeleteAll(c *fiber.Ctx) error {
	err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&attendanceModel.AttendanceModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&leaveModel.LeaveRequestModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("notification_recipient_type = ?", "employee").Delete(&notificationModel.NotificationModel{}).Error; err != nil {
			return err
		}
		return tx.Where("1 = 1").Delete(&model.EmployeeModel{}).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete all employees")
	}
	return helper.JsonDeleted(c, "Seluruh data karyawan dihapus", nil)
}
