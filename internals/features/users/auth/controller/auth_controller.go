// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"

	"pertandinganku_backend/internals/configs"
	"pertandinganku_backend/internals/constants"
	userModel "pertandinganku_backend/internals/features/users/user/model"

	"pertandinganku_backend/internals/features/users/auth/dto"
	helper "pertandinganku_backend/internals/helpers"
)

type AuthController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db, Validate: validator.New()}
}

const accessTokenTTL = 24 * time.Hour

func (ctrl *AuthController) signToken(u *userModel.UserModel) (string, error) {
	claims := jwt.MapClaims{
		"sub":  u.UserID.String(),
		"role": u.UserRole,
		"name": u.UserName,
		"exp":  time.Now().Add(accessTokenTTL).Unix(),
		"iat":  time.Now().Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString([]byte(configs.JWTSecret))
}

// Register membuat akun baru dengan role default "user"
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}

	user := userModel.UserModel{
		UserName:     req.UserName,
		UserEmail:    req.Email,
		UserPassword: string(hashed),
		UserRole:     constants.RoleUser,
	}
	if err := ctrl.DB.WithContext(c.Context()).Create(&user).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Email sudah terdaftar")
		}
		log.Printf("[AUTH] register gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat akun")
	}

	return helper.JsonCreated(c, "Akun berhasil dibuat", fiber.Map{
		"user_id":   user.UserID,
		"user_name": user.UserName,
	})
}

// Login memverifikasi email+password lalu menerbitkan access token
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var user userModel.UserModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("user_email = ?", req.Email).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat akun")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(req.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
	}

	token, err := ctrl.signToken(&user)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menerbitkan token")
	}

	return helper.JsonOK(c, "Login berhasil", dto.LoginResponse{
		AccessToken: token,
		UserID:      user.UserID.String(),
		UserName:    user.UserName,
		Role:        user.UserRole,
	})
}

// LoginGoogle memverifikasi id_token Google lalu login/auto-register
func (ctrl *AuthController) LoginGoogle(c *fiber.Ctx) error {
	var req dto.GoogleLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(req.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Token Google tidak valid")
	}
	claims, err := googleAuthIDTokenVerifier.Decode(req.IDToken)
	if err != nil || claims.Email == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Token Google tidak valid")
	}

	var user userModel.UserModel
	err = ctrl.DB.WithContext(c.Context()).
		Where("user_email = ?", claims.Email).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// auto-register akun Google baru, tanpa password lokal
		user = userModel.UserModel{
			UserName:     claims.Name,
			UserEmail:    claims.Email,
			UserPassword: "-",
			UserRole:     constants.RoleUser,
			UserIsGoogle: true,
		}
		if err := ctrl.DB.WithContext(c.Context()).Create(&user).Error; err != nil {
			log.Printf("[AUTH] auto-register google gagal: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat akun")
		}
	} else if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat akun")
	}

	token, err := ctrl.signToken(&user)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menerbitkan token")
	}

	return helper.JsonOK(c, "Login berhasil", dto.LoginResponse{
		AccessToken: token,
		UserID:      user.UserID.String(),
		UserName:    user.UserName,
		Role:        user.UserRole,
	})
}
