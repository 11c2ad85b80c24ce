package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"mosque_backend/internals/features/users/auth/dto"
	authService "mosque_backend/internals/features/users/auth/service"
	userDTO "mosque_backend/internals/features/users/user/dto"
	helper "mosque_backend/internals/helpers"
)

type AuthController struct {
	Service  *authService.AuthService
	Validate *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{
		Service:  authService.NewAuthService(db),
		Validate: validator.New(),
	}
}

// 🟢 POST /api/auth/register
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return validationError(c, err)
	}

	user, token, err := ctrl.Service.Register(c.UserContext(), authService.RegisterInput{
		Name:     req.UserName,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
	})
	if err != nil {
		return authError(c, err, "register")
	}

	return helper.JsonCreated(c, "Account created", dto.AuthResponse{
		AccessToken: token,
		User:        userDTO.ToUserResponse(user),
	})
}

// 🟢 POST /api/auth/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return validationError(c, err)
	}

	user, token, err := ctrl.Service.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return authError(c, err, "login")
	}

	return helper.JsonOK(c, "Login successful", dto.AuthResponse{
		AccessToken: token,
		User:        userDTO.ToUserResponse(user),
	})
}

// 🟢 POST /api/auth/login/google
func (ctrl *AuthController) LoginGoogle(c *fiber.Ctx) error {
	var req dto.GoogleLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return validationError(c, err)
	}

	user, token, err := ctrl.Service.LoginGoogle(c.UserContext(), req.IDToken)
	if err != nil {
		return authError(c, err, "google login")
	}

	return helper.JsonOK(c, "Login successful", dto.AuthResponse{
		AccessToken: token,
		User:        userDTO.ToUserResponse(user),
	})
}

// 🟢 POST /api/auth/logout (auth required)
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	raw := helper.GetRawAccessToken(c)
	if err := ctrl.Service.Logout(c.UserContext(), raw); err != nil {
		log.Printf("[ERROR] logout: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to logout")
	}
	return helper.JsonOK(c, "Logged out", nil)
}

// 🟢 POST /api/auth/change-password (auth required)
func (ctrl *AuthController) ChangePassword(c *fiber.Ctx) error {
	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return validationError(c, err)
	}

	userID, err := sessionUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	if err := ctrl.Service.ChangePassword(c.UserContext(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		if errors.Is(err, authService.ErrInvalidCredentials) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Current password incorrect")
		}
		return authError(c, err, "change password")
	}
	return helper.JsonUpdated(c, "Password changed successfully", nil)
}

/* ==========================
   Shared helpers
========================== */

func sessionUserID(c *fiber.Ctx) (uuid.UUID, error) {
	v, _ := c.Locals("user_id").(string)
	return uuid.Parse(v)
}

func validationError(c *fiber.Ctx, err error) error {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input")
	}
	fieldErrors := make(map[string][]string, len(ve))
	for _, fe := range ve {
		fieldErrors[fe.Field()] = append(fieldErrors[fe.Field()], fe.Tag())
	}
	return helper.JsonValidationError(c, fieldErrors)
}

func authError(c *fiber.Ctx, err error, op string) error {
	switch {
	case errors.Is(err, authService.ErrValidation):
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, authService.ErrEmailTaken):
		return helper.JsonError(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, authService.ErrNoAccount):
		return helper.JsonError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, authService.ErrInvalidCredentials):
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	case errors.Is(err, authService.ErrAccountDisabled):
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	default:
		log.Printf("[ERROR] %s: %v", op, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Something went wrong")
	}
}
