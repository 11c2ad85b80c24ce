package dto

import (
	"time"

	"mosque_backend/internals/features/home/notifications/model"
)

type CreateNotificationRequest struct {
	Title       string   `json:"title" validate:"required,max=255"`
	Description string   `json:"description"`
	Type        int      `json:"type" validate:"required"`
	Tags        []string `json:"tags"`
}

type NotificationResponse struct {
	NotificationID string    `json:"notification_id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Type           int       `json:"type"`
	Tags           []string  `json:"tags"`
	CreatedAt      time.Time `json:"created_at"`
}

func ToNotificationResponse(m model.NotificationModel) NotificationResponse {
	return NotificationResponse{
		NotificationID: m.NotificationID.String(),
		Title:          m.NotificationTitle,
		Description:    m.NotificationDescription,
		Type:           m.NotificationType,
		Tags:           m.NotificationTags,
		CreatedAt:      m.NotificationCreatedAt,
	}
}

func ToNotificationResponseList(ms []model.NotificationModel) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToNotificationResponse(m))
	}
	return out
}
