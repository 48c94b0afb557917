package dto

import (
	"github.com/google/uuid"

	"scolaria_backend/internals/features/home/notifications/model"
)

// ================== REQUEST ==================
type AnnouncementRequest struct {
	UserID  uuid.UUID `json:"user_id" validate:"required"`
	Title   string    `json:"title" validate:"required,max=255"`
	Message string    `json:"message"`
	Tags    []string  `json:"tags"`
}

// ================ CONVERSION =================
func (r *AnnouncementRequest) ToModel() *model.NotificationModel {
	return &model.NotificationModel{
		NotificationUserID:  r.UserID,
		NotificationType:    model.NotificationTypeAnnouncement,
		NotificationTitle:   r.Title,
		NotificationMessage: r.Message,
		NotificationTags:    r.Tags,
	}
}
