package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"absenku_backend/internals/features/attendance/model"
	employeeModel "absenku_backend/internals/features/employees/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&employeeModel.EmployeeModel{},
		&model.AttendanceModel{},
	))
	return db
}

func seedEmployee(t *testing.T, db *gorm.DB, code string) employeeModel.EmployeeModel {
	t.Helper()
	emp := employeeModel.EmployeeModel{
		EmployeeCode:     code,
		EmployeeName:     "Budi Santoso",
		EmployeePassword: "irrelevant-hash",
		EmployeeIsActive: true,
	}
	require.NoError(t, db.Create(&emp).Error)
	return emp
}

func TestGetStatusUnknownEmployee(t *testing.T) {
	db := setupTestDB(t)
	resolver := NewSessionResolver(db)

	_, err := resolver.GetStatus("E999")
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
}

func TestGetStatusNoSessionToday(t *testing.T) {
	db := setupTestDB(t)
	resolver := NewSessionResolver(db)
	seedEmployee(t, db, "E001")

	st, err := resolver.GetStatus("E001")
	require.NoError(t, err)
	assert.False(t, st.IsClockedIn)
	assert.Nil(t, st.Attendance)
}

func TestClockInThenStatus(t *testing.T) {
	db := setupTestDB(t)
	resolver := NewSessionResolver(db)
	seedEmployee(t, db, "E001")

	lat, lng := -6.2, 106.8
	addr := "Jakarta"
	require.NoError(t, resolver.Clock("E001", ClockInput{
		Action:    ActionIn,
		Latitude:  &lat,
		Longitude: &lng,
		Address:   &addr,
	}))

	st, err := resolver.GetStatus("E001")
	require.NoError(t, err)
	assert.True(t, st.IsClockedIn)
	require.NotNil(t, st.Attendance)
	assert.False(t, st.Attendance.AttendanceClockInAt.IsZero())
	assert.Nil(t, st.Attendance.AttendanceClockOutAt)
	require.NotNil(t, st.Attendance.AttendanceLatitude)
	assert.InDelta(t, -6.2, *st.Attendance.AttendanceLatitude, 0.0001)
	assert.Equal(t, model.AttendanceStatusPresent, st.Attendance.AttendanceStatus)
}

func TestClockOutClosesSession(t *testing.T) {
	db := setupTestDB(t)
	resolver := NewSessionResolver(db)
	seedEmployee(t, db, "E001")

	require.NoError(t, resolver.Clock("E001", ClockInput{Action: ActionIn}))

	st, err := resolver.GetStatus("E001")
	require.NoError(t, err)
	require.True(t, st.IsClockedIn)
	openID := st.Attendance.AttendanceID

	require.NoError(t, resolver.Clock("E001", ClockInput{Action: ActionOut}))

	st, err = resolver.GetStatus("E001")
	require.NoError(t, err)
	assert.False(t, st.IsClockedIn)
	require.NotNil(t, st.Attendance)
	// baris yang sama, sekarang tertutup
	assert.Equal(t, openID, st.Attendance.AttendanceID)
	assert.NotNil(t, st.Attendance.AttendanceClockOutAt)
}

func TestClockOutWithoutClockIn(t *testing.T) {
	db := setupTestDB(t)
	resolver := NewSessionResolver(db)
	seedEmployee(t, db, "E001")

	err := resolver.Clock("E001", ClockInput{Action: ActionOut})
	assert.ErrorIs(t, err, ErrNoActiveSession)
}

func TestClockInUnknownEmployee(t *testing.T) {
	db := setupTestDB(t)
	resolver := NewSessionResolver(db)

	err := resolver.Clock("E404", ClockInput{Action: ActionIn})
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
}

func TestClockInInactiveEmployee(t *testing.T) {
	db := setupTestDB(t)
	resolver := NewSessionResolver(db)
	emp := seedEmployee(t, db, "E001")
	require.NoError(t, db.Model(&employeeModel.EmployeeModel{}).
		Where("employee_id = ?", emp.EmployeeID).
		Update("employee_is_active", false).Error)

	err := resolver.Clock("E001", ClockInput{Action: ActionIn})
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
}

// Perilaku sumber yang dipertahankan: clock-in kedua di hari yang sama membuat
// baris kedua, dan satu clock-out hanya menutup baris yang paling baru.
func TestDoubleClockInKeepsTwoRows(t *testing.T) {
	db := setupTestDB(t)
	resolver := NewSessionResolver(db)
	emp := seedEmployee(t, db, "E001")

	require.NoError(t, resolver.Clock("E001", ClockInput{Action: ActionIn}))
	time.Sleep(5 * time.Millisecond) // urutan created_at harus tegas
	require.NoError(t, resolver.Clock("E001", ClockInput{Action: ActionIn}))

	var rows []model.AttendanceModel
	require.NoError(t, db.
		Where("attendance_employee_id = ?", emp.EmployeeID).
		Order("attendance_created_at ASC").
		Find(&rows).Error)
	require.Len(t, rows, 2)

	require.NoError(t, resolver.Clock("E001", ClockInput{Action: ActionOut}))

	require.NoError(t, db.
		Where("attendance_employee_id = ?", emp.EmployeeID).
		Order("attendance_created_at ASC").
		Find(&rows).Error)
	require.Len(t, rows, 2)
	assert.Nil(t, rows[0].AttendanceClockOutAt, "baris pertama tetap open")
	assert.NotNil(t, rows[1].AttendanceClockOutAt, "hanya baris terbaru yang tertutup")
}
