// file: internals/features/attendance/service/session_resolver.go
package service

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"absenku_backend/internals/features/attendance/model"
	employeeModel "absenku_backend/internals/features/employees/model"
)

var (
	ErrEmployeeNotFound = errors.New("Employee not found")
	ErrNoActiveSession  = errors.New("No active clock in found")
)

const (
	ActionIn  = "in"
	ActionOut = "out"
)

// SessionResolver memutuskan aksi clock terhadap sesi absensi hari ini:
// clock-in selalu insert baris baru; clock-out menutup baris open paling baru.
type SessionResolver struct {
	DB *gorm.DB
}

func NewSessionResolver(db *gorm.DB) *SessionResolver {
	return &SessionResolver{DB: db}
}

type ClockInput struct {
	Action    string
	Photo     *string
	Latitude  *float64
	Longitude *float64
	Address   *string
}

type Status struct {
	IsClockedIn bool
	Attendance  *model.AttendanceModel
}

// Today memotong waktu server ke granularitas tanggal lokal.
func Today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// GetStatus membaca sesi terakhir milik karyawan untuk hari ini.
// isClockedIn = true hanya jika sesi itu masih open (clock_out masih null).
func (s *SessionResolver) GetStatus(employeeCode string) (*Status, error) {
	emp, err := s.findEmployeeByCode(employeeCode)
	if err != nil {
		return nil, err
	}

	var rows []model.AttendanceModel
	if err := s.DB.
		Where("attendance_employee_id = ? AND attendance_date = ?", emp.EmployeeID, Today()).
		Order("attendance_created_at DESC").
		Limit(1).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	st := &Status{}
	if len(rows) > 0 {
		st.Attendance = &rows[0]
		st.IsClockedIn = rows[0].AttendanceClockOutAt == nil
	}
	return st, nil
}

// Clock menjalankan aksi in/out untuk karyawan aktif.
//
// action=in: insert tanpa cek duplikat. Clock-in kedua di hari yang sama
// membuat baris kedua, dan clock-out berikutnya hanya menutup baris yang
// paling baru.
func (s *SessionResolver) Clock(employeeCode string, in ClockInput) error {
	emp, err := s.findEmployeeByCode(employeeCode)
	if err != nil {
		return err
	}
	if !emp.EmployeeIsActive {
		return ErrEmployeeNotFound
	}

	now := time.Now()

	if in.Action == ActionIn {
		row := model.AttendanceModel{
			AttendanceEmployeeID:   emp.EmployeeID,
			AttendanceDate:         Today(),
			AttendanceClockInAt:    now,
			AttendanceClockInPhoto: in.Photo,
			AttendanceLatitude:     in.Latitude,
			AttendanceLongitude:    in.Longitude,
			AttendanceAddress:      in.Address,
			AttendanceStatus:       model.AttendanceStatusPresent,
		}
		return s.DB.Create(&row).Error
	}

	// action=out: cari baris open paling baru yang dibuat hari ini
	var open []model.AttendanceModel
	if err := s.DB.
		Where("attendance_employee_id = ? AND attendance_date = ? AND attendance_clock_out_at IS NULL", emp.EmployeeID, Today()).
		Order("attendance_created_at DESC").
		Limit(1).
		Find(&open).Error; err != nil {
		return err
	}
	if len(open) == 0 {
		return ErrNoActiveSession
	}

	return s.DB.Model(&model.AttendanceModel{}).
		Where("attendance_id = ?", open[0].AttendanceID).
		Updates(map[string]interface{}{
			"attendance_clock_out_at":    now,
			"attendance_clock_out_photo": in.Photo,
			"attendance_updated_at":      now,
		}).Error
}

func (s *SessionResolver) findEmployeeByCode(code string) (*employeeModel.EmployeeModel, error) {
	var emp employeeModel.EmployeeModel
	if err := s.DB.Where("employee_code = ?", code).First(&emp).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, err
	}
	return &emp, nil
}
