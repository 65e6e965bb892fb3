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
	employeeModel "absenku_backend/internals/features/employees/model"
)

func setupTest(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&employeeModel.EmployeeModel{},
		&attendanceModel.AttendanceModel{},
	))

	ctrl := NewAttendanceController(db)
	app := fiber.New()
	app.Get("/api/attendance/status", ctrl.GetStatus)
	app.Post("/api/attendance/clock", ctrl.Clock)
	app.Get("/api/attendance", ctrl.List)
	return app, db
}

func seedEmployee(t *testing.T, db *gorm.DB, code string) employeeModel.EmployeeModel {
	t.Helper()
	emp := employeeModel.EmployeeModel{
		EmployeeCode:     code,
		EmployeeName:     "Siti Rahma",
		EmployeePassword: "irrelevant-hash",
		EmployeeIsActive: true,
	}
	require.NoError(t, db.Create(&emp).Error)
	return emp
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest("POST", path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestStatusRequiresUserID(t *testing.T) {
	app, _ := setupTest(t)

	req := httptest.NewRequest("GET", "/api/attendance/status", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestStatusUnknownEmployeeReturns404(t *testing.T) {
	app, _ := setupTest(t)

	req := httptest.NewRequest("GET", "/api/attendance/status?userId=E999", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestClockInThenStatusOverHTTP(t *testing.T) {
	app, db := setupTest(t)
	seedEmployee(t, db, "E001")

	resp := postJSON(t, app, "/api/attendance/clock", fiber.Map{
		"userId":    "E001",
		"action":    "in",
		"latitude":  -6.2,
		"longitude": 106.8,
		"address":   "Jakarta Selatan",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	req := httptest.NewRequest("GET", "/api/attendance/status?userId=E001", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var status struct {
		IsClockedIn bool            `json:"isClockedIn"`
		Attendance  json.RawMessage `json:"attendance"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&status))
	assert.True(t, status.IsClockedIn)
	assert.NotEqual(t, "null", string(status.Attendance))
}

func TestClockOutWithoutClockInReturns400(t *testing.T) {
	app, db := setupTest(t)
	seedEmployee(t, db, "E001")

	resp := postJSON(t, app, "/api/attendance/clock", fiber.Map{
		"userId": "E001",
		"action": "out",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "No active clock in found")
}

func TestClockRejectsMalformedAction(t *testing.T) {
	app, db := setupTest(t)
	seedEmployee(t, db, "E001")

	resp := postJSON(t, app, "/api/attendance/clock", fiber.Map{
		"userId": "E001",
		"action": "sideways",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestListFiltersByDate(t *testing.T) {
	app, db := setupTest(t)
	emp := seedEmployee(t, db, "E001")

	today := time.Now()
	todayDate := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	yesterday := todayDate.AddDate(0, 0, -1)

	for _, day := range []time.Time{todayDate, yesterday} {
		row := attendanceModel.AttendanceModel{
			AttendanceEmployeeID: emp.EmployeeID,
			AttendanceDate:       day,
			AttendanceClockInAt:  day.Add(9 * time.Hour),
			AttendanceStatus:     attendanceModel.AttendanceStatusPresent,
		}
		require.NoError(t, db.Create(&row).Error)
	}

	req := httptest.NewRequest("GET", "/api/attendance?date="+todayDate.Format("2006-01-02"), nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var envelope struct {
		Success bool `json:"success"`
		Data    []struct {
			EmployeeCode string `json:"employee_code"`
			EmployeeName string `json:"employee_name"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.True(t, envelope.Success)
	require.Len(t, envelope.Data, 1)
	assert.Equal(t, "E001", envelope.Data[0].EmployeeCode)
	assert.Equal(t, "Siti Rahma", envelope.Data[0].EmployeeName)
}

func TestListRejectsBadDate(t *testing.T) {
	app, _ := setupTest(t)

	req := httptest.NewRequest("GET", "/api/attendance?date=31-12-2024", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
