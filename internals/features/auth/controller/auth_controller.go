// file: internals/features/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"absenku_backend/internals/configs"
	adminModel "absenku_backend/internals/features/admins/model"
	"absenku_backend/internals/features/auth/dto"
	employeeModel "absenku_backend/internals/features/employees/model"
	helper "absenku_backend/internals/helpers"
	authMiddleware "absenku_backend/internals/middlewares/auth"
)

const accessTokenTTL = 24 * time.Hour

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

/* ===================== LOGIN ===================== */
// POST /api/login — kredensial admin atau karyawan, balikan access token
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.UserID = strings.TrimSpace(req.UserID)

	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if req.UserType == authMiddleware.RoleAdmin {
		return ctrl.loginAdmin(c, req)
	}
	return ctrl.loginEmployee(c, req)
}

func (ctrl *AuthController) loginAdmin(c *fiber.Ctx, req dto.LoginRequest) error {
	var admin adminModel.AdminModel
	err := ctrl.DB.Where("admin_code = ?", req.UserID).First(&admin).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "ID Admin atau password salah")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan server")
	}
	if !admin.AdminIsActive {
		return helper.JsonError(c, fiber.StatusUnauthorized, "ID Admin atau password salah")
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.AdminPassword), []byte(req.Password)) != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "ID Admin atau password salah")
	}

	token, err := issueAccessToken(admin.AdminID, authMiddleware.RoleAdmin, admin.AdminCode, admin.AdminName)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":      true,
		"user":         admin,
		"role":         authMiddleware.RoleAdmin,
		"access_token": token,
	})
}

func (ctrl *AuthController) loginEmployee(c *fiber.Ctx, req dto.LoginRequest) error {
	var emp employeeModel.EmployeeModel
	err := ctrl.DB.Where("employee_code = ?", req.UserID).First(&emp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "ID Karyawan atau password salah")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan server")
	}
	if !emp.EmployeeIsActive {
		return helper.JsonError(c, fiber.StatusUnauthorized, "ID Karyawan atau password salah")
	}
	if bcrypt.CompareHashAndPassword([]byte(emp.EmployeePassword), []byte(req.Password)) != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "ID Karyawan atau password salah")
	}

	token, err := issueAccessToken(emp.EmployeeID, authMiddleware.RoleKaryawan, emp.EmployeeCode, emp.EmployeeName)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":      true,
		"user":         emp,
		"role":         authMiddleware.RoleKaryawan,
		"access_token": token,
	})
}

func issueAccessToken(id uuid.UUID, role, code, name string) (string, error) {
	if configs.JWTSecret == "" {
		return "", errors.New("JWT secret belum diset")
	}
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  id.String(),
		"role": role,
		"code": code,
		"name": name,
		"iat":  now.Unix(),
		"exp":  now.Add(accessTokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(configs.JWTSecret))
}
