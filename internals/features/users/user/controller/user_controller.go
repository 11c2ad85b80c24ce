package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	authService "mosque_backend/internals/features/users/auth/service"
	"mosque_backend/internals/features/users/user/dto"
	userService "mosque_backend/internals/features/users/user/service"
	helper "mosque_backend/internals/helpers"
)

type UserController struct {
	Auth     *authService.AuthService
	Avatars  *userService.AvatarService
	Validate *validator.Validate
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{
		Auth:     authService.NewAuthService(db),
		Avatars:  userService.NewAvatarService(),
		Validate: validator.New(),
	}
}

// 🟢 GET /api/u/me
func (ctrl *UserController) Me(c *fiber.Ctx) error {
	userID, err := sessionUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	user, err := ctrl.Auth.Users.FindByID(c.UserContext(), userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		log.Printf("[ERROR] fetch profile: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch profile")
	}
	return helper.JsonOK(c, "", dto.ToUserResponse(user))
}

// 🟢 PUT /api/u/me
func (ctrl *UserController) UpdateMe(c *fiber.Ctx) error {
	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Invalid profile fields")
	}

	userID, err := sessionUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	user, err := ctrl.Auth.UpdateProfile(c.UserContext(), userID, authService.UpdateProfileInput{
		Name:        req.UserName,
		Phone:       req.Phone,
		Preferences: req.Preferences,
	})
	if err != nil {
		if errors.Is(err, authService.ErrValidation) {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		log.Printf("[ERROR] update profile: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update profile")
	}
	return helper.JsonUpdated(c, "Profile updated", dto.ToUserResponse(user))
}

// 🟢 POST /api/u/me/avatar (multipart field "avatar")
func (ctrl *UserController) UploadAvatar(c *fiber.Ctx) error {
	userID, err := sessionUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Missing avatar file")
	}

	url, err := ctrl.Avatars.SaveUpload(userID, fileHeader)
	if err != nil {
		log.Printf("[ERROR] avatar upload: %v", err)
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Could not process the image")
	}

	user, err := ctrl.Auth.Users.FindByID(c.UserContext(), userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}
	oldURL := user.AvatarURL
	user.AvatarURL = url
	if err := ctrl.Auth.Users.Update(c.UserContext(), user); err != nil {
		log.Printf("[ERROR] persist avatar url: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save avatar")
	}
	if oldURL != "" && oldURL != url {
		ctrl.Avatars.Remove(oldURL)
	}

	return helper.JsonUpdated(c, "Avatar updated", dto.ToUserResponse(user))
}

func sessionUserID(c *fiber.Ctx) (uuid.UUID, error) {
	v, _ := c.Locals("user_id").(string)
	return uuid.Parse(v)
}
