package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	attendanceModel "absenku_backend/internals/features/attendance/model"
	"absenku_backend/internals/features/employees/model"
	leaveModel "absenku_backend/internals/features/leave_requests/model"
	notificationModel "absenku_backend/internals/features/notifications/model"
)

func setupTest(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.EmployeeModel{},
		&attendanceModel.AttendanceModel{},
		&leaveModel.LeaveRequestModel{},
		&notificationModel.NotificationModel{},
	))

	ctrl := NewEmployeeController(db)
	app := fiber.New()
	app.Get("/api/employees", ctrl.List)
	app.Post("/api/employees", ctrl.Create)
	app.Put("/api/employees/:id", ctrl.Update)
	app.Delete("/api/employees/delete-all", ctrl.DeleteAll)
	app.Delete("/api/employees/:id", ctrl.Delete)
	return app, db
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func createEmployee(t *testing.T, app *fiber.App, code string) {
	t.Helper()
	resp := doJSON(t, app, "POST", "/api/employees", fiber.Map{
		"employee_id": code,
		"name":        "Rina Kusuma",
		"email":       "rina@example.com",
		"phone":       "081234567890",
		"position":    "Staff HR",
		"password":    "rahasia123",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
}

func TestCreateEmployee(t *testing.T) {
	app, db := setupTest(t)

	createEmployee(t, app, "E001")

	var row model.EmployeeModel
	require.NoError(t, db.Where("employee_code = ?", "E001").First(&row).Error)
	assert.Equal(t, "Rina Kusuma", row.EmployeeName)
	assert.True(t, row.EmployeeIsActive)
	// password tersimpan sebagai hash, bukan plaintext
	assert.NotEqual(t, "rahasia123", row.EmployeePassword)
	assert.NotEmpty(t, row.EmployeePassword)
}

func TestCreateEmployeeDuplicateCode(t *testing.T) {
	app, _ := setupTest(t)
	createEmployee(t, app, "E001")

	resp := doJSON(t, app, "POST", "/api/employees", fiber.Map{
		"employee_id": "E001",
		"name":        "Orang Lain",
		"password":    "rahasia123",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "ID karyawan sudah digunakan")
}

func TestCreateEmployeeRejectsShortPassword(t *testing.T) {
	app, _ := setupTest(t)

	resp := doJSON(t, app, "POST", "/api/employees", fiber.Map{
		"employee_id": "E001",
		"name":        "Rina Kusuma",
		"password":    "abc",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

// Baris yang dibuat nonaktif harus tersimpan nonaktif; default kolom tidak
// boleh menimpa zero value saat insert.
func TestSeedInactiveEmployeeStoredInactive(t *testing.T) {
	_, db := setupTest(t)

	emp := model.EmployeeModel{
		EmployeeCode:     "E009",
		EmployeeName:     "Karyawan Nonaktif",
		EmployeePassword: "irrelevant-hash",
		EmployeeIsActive: false,
	}
	require.NoError(t, db.Create(&emp).Error)

	var row model.EmployeeModel
	require.NoError(t, db.Where("employee_code = ?", "E009").First(&row).Error)
	assert.False(t, row.EmployeeIsActive)
}

func TestUpdateEmployee(t *testing.T) {
	app, db := setupTest(t)
	createEmployee(t, app, "E001")

	var row model.EmployeeModel
	require.NoError(t, db.Where("employee_code = ?", "E001").First(&row).Error)

	inactive := false
	resp := doJSON(t, app, "PUT", "/api/employees/"+row.EmployeeID.String(), fiber.Map{
		"name":      "Rina Kusuma Dewi",
		"position":  "Manajer HR",
		"is_active": inactive,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	require.NoError(t, db.Where("employee_code = ?", "E001").First(&row).Error)
	assert.Equal(t, "Rina Kusuma Dewi", row.EmployeeName)
	require.NotNil(t, row.EmployeePosition)
	assert.Equal(t, "Manajer HR", *row.EmployeePosition)
	assert.False(t, row.EmployeeIsActive)
}

func TestUpdateUnknownEmployeeReturns404(t *testing.T) {
	app, _ := setupTest(t)

	resp := doJSON(t, app, "PUT", "/api/employees/3d9a4f20-0000-0000-0000-000000000000", fiber.Map{
		"name": "Siapa Saja",
	})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestDeleteEmployeeCascades(t *testing.T) {
	app, db := setupTest(t)
	createEmployee(t, app, "E001")

	var emp model.EmployeeModel
	require.NoError(t, db.Where("employee_code = ?", "E001").First(&emp).Error)

	now := time.Now()
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	require.NoError(t, db.Create(&attendanceModel.AttendanceModel{
		AttendanceEmployeeID: emp.EmployeeID,
		AttendanceDate:       day,
		AttendanceClockInAt:  now,
		AttendanceStatus:     attendanceModel.AttendanceStatusPresent,
	}).Error)
	require.NoError(t, db.Create(&notificationModel.NotificationModel{
		NotificationRecipientID:   emp.EmployeeID,
		NotificationRecipientType: "employee",
		NotificationTitle:         "Tes",
		NotificationMessage:       "Tes",
	}).Error)

	resp := doJSON(t, app, "DELETE", "/api/employees/"+emp.EmployeeID.String(), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&model.EmployeeModel{}).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, db.Model(&attendanceModel.AttendanceModel{}).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, db.Model(&notificationModel.NotificationModel{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestDeleteAllEmployees(t *testing.T) {
	app, db := setupTest(t)
	createEmployee(t, app, "E001")
	createEmployee(t, app, "E002")

	resp := doJSON(t, app, "DELETE", "/api/employees/delete-all", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&model.EmployeeModel{}).Count(&count).Error)
	assert.Zero(t, count)
}
