package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"mosque_backend/internals/features/home/notifications/dto"
	"mosque_backend/internals/features/home/notifications/model"
	helper "mosque_backend/internals/helpers"
)

type NotificationController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db, Validate: validator.New()}
}

// 🟢 GET /api/u/notifications — newest first, paginated
func (ctrl *NotificationController) GetAll(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 50)

	var total int64
	if err := ctrl.DB.Model(&model.NotificationModel{}).Count(&total).Error; err != nil {
		log.Println("[ERROR] counting notifications:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch notifications")
	}

	var rows []model.NotificationModel
	if err := ctrl.DB.
		Order("notification_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		log.Println("[ERROR] fetching notifications:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch notifications")
	}

	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Notifications fetched", dto.ToNotificationResponseList(rows), pagination)
}

// 🟢 POST /api/a/notifications — admin only
func (ctrl *NotificationController) Create(c *fiber.Ctx) error {
	var req dto.CreateNotificationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
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
	if !model.IsValidType(req.Type) {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Unknown notification type")
	}

	row := model.NotificationModel{
		NotificationTitle:       req.Title,
		NotificationDescription: req.Description,
		NotificationType:        req.Type,
		NotificationTags:        req.Tags,
	}
	if err := ctrl.DB.Create(&row).Error; err != nil {
		log.Println("[ERROR] creating notification:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create notification")
	}

	return helper.JsonCreated(c, "Notification created", dto.ToNotificationResponse(row))
}

// 🟢 DELETE /api/a/notifications/:id — admin only
func (ctrl *NotificationController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid notification id")
	}

	res := ctrl.DB.Where("notification_id = ?", id).Delete(&model.NotificationModel{})
	if res.Error != nil {
		log.Println("[ERROR] deleting notification:", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete notification")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Notification not found")
	}

	return helper.JsonDeleted(c, "Notification deleted", fiber.Map{"notification_id": id})
}
