// file: internals/features/leave_requests/controller/leave_request_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	employeeModel "absenku_backend/internals/features/employees/model"
	"absenku_backend/internals/features/leave_requests/dto"
	"absenku_backend/internals/features/leave_requests/model"
	notificationModel "absenku_backend/internals/features/notifications/model"
	helper "absenku_backend/internals/helpers"
)

type LeaveRequestController struct {
	DB *gorm.DB
}

func NewLeaveRequestController(db *gorm.DB) *LeaveRequestController {
	return &LeaveRequestController{DB: db}
}

/* ===================== CREATE ===================== */
// POST /api/leave-requests — selalu lahir berstatus pending
func (ctrl *LeaveRequestController) Create(c *fiber.Ctx) error {
	var req dto.CreateLeaveRequestRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var emp employeeModel.EmployeeModel
	if err := ctrl.DB.Where("employee_code = ?", req.UserID).First(&emp).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Employee not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create leave request")
	}

	start, err := time.ParseInLocation("2006-01-02", req.StartDate, time.Local)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format tanggal salah (YYYY-MM-DD)")
	}
	end, err := time.ParseInLocation("2006-01-02", req.EndDate, time.Local)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format tanggal salah (YYYY-MM-DD)")
	}

	row := model.LeaveRequestModel{
		LeaveRequestEmployeeID: emp.EmployeeID,
		LeaveRequestType:       req.LeaveType,
		LeaveRequestReason:     req.Reason,
		LeaveRequestStartDate:  datatypes.Date(start),
		LeaveRequestEndDate:    datatypes.Date(end),
		LeaveRequestStatus:     model.LeaveStatusPending,
	}
	if err := ctrl.DB.Create(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create leave request")
	}

	return helper.JsonCreated(c, "Pengajuan cuti berhasil dibuat", row)
}

/* ===================== LIST ===================== */
// GET /api/leave-requests
func (ctrl *LeaveRequestController) List(c *fiber.Ctx) error {
	var rows []dto.LeaveRequestListItem
	if err := ctrl.DB.Table("leave_requests").
		Select("leave_requests.leave_request_id, leave_requests.leave_request_type, leave_requests.leave_request_reason, leave_requests.leave_request_start_date, leave_requests.leave_request_end_date, leave_requests.leave_request_status, leave_requests.leave_request_created_at, employees.employee_code, employees.employee_name").
		Joins("JOIN employees ON employees.employee_id = leave_requests.leave_request_employee_id").
		Order("leave_requests.leave_request_created_at DESC").
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch leave requests")
	}
	return helper.JsonOK(c, "Data pengajuan cuti berhasil diambil", rows)
}

/* ===================== APPROVE / REJECT ===================== */
// POST /api/leave-requests/:id/approve
func (ctrl *LeaveRequestController) Approve(c *fiber.Ctx) error {
	return ctrl.decide(c, model.LeaveStatusApproved, "Pengajuan cuti disetujui")
}

// POST /api/leave-requests/:id/reject
func (ctrl *LeaveRequestController) Reject(c *fiber.Ctx) error {
	return ctrl.decide(c, model.LeaveStatusRejected, "Pengajuan cuti ditolak")
}

// Update status tanpa cek status sekarang: panggilan kedua tetap sukses dan
// menimpa status terminal.
func (ctrl *LeaveRequestController) decide(c *fiber.Ctx, status, title string) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var row model.LeaveRequestModel
	if err := ctrl.DB.Where("leave_request_id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pengajuan cuti tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update leave request")
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.LeaveRequestModel{}).
			Where("leave_request_id = ?", id).
			Update("leave_request_status", status).Error; err != nil {
			return err
		}
		notif := notificationModel.NotificationModel{
			NotificationRecipientID:   row.LeaveRequestEmployeeID,
			NotificationRecipientType: "employee",
			NotificationTitle:         title,
			NotificationMessage:       "Pengajuan cuti " + row.LeaveRequestType + " Anda " + statusLabel(status) + ".",
		}
		return tx.Create(&notif).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update leave request")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true})
}

func statusLabel(status string) string {
	if status == model.LeaveStatusApproved {
		return "disetujui"
	}
	return "ditolak"
}
