package controller

import (
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"scolaria_backend/internals/features/home/notifications/dto"
	"scolaria_backend/internals/features/home/notifications/model"
	helper "scolaria_backend/internals/helpers"
)

type NotificationController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db, Validate: validator.New()}
}

// Announce stores an admin announcement targeted at one user.
func (ctrl *NotificationController) Announce(c *fiber.Ctx) error {
	var req dto.AnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	notif := req.ToModel()
	if err := ctrl.DB.Create(notif).Error; err != nil {
		log.Printf("[ERROR] create announcement: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save notification")
	}
	return helper.JsonCreated(c, "Announcement sent", notif)
}

// ListMine returns the authenticated user's notifications, newest first.
// ?unread=true narrows to unread ones.
func (ctrl *NotificationController) ListMine(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	q := ctrl.DB.Where("notification_user_id = ?", userID)
	if c.Query("unread") == "true" {
		q = q.Where("notification_is_read = FALSE")
	}

	var notifs []model.NotificationModel
	if err := q.Order("notification_created_at DESC").Limit(100).Find(&notifs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch notifications")
	}
	return helper.JsonOK(c, "Notifications fetched", notifs)
}

// MarkRead flags a single notification as read. Scoped to the owner.
func (ctrl *NotificationController) MarkRead(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	notifID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	now := time.Now()
	res := ctrl.DB.Model(&model.NotificationModel{}).
		Where("notification_id = ? AND notification_user_id = ?", notifID, userID).
		Updates(map[string]interface{}{
			"notification_is_read": true,
			"notification_read_at": now,
		})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update notification")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Notification not found")
	}
	return helper.JsonUpdated(c, "Notification marked as read", fiber.Map{
		"notification_id": notifID,
		"read_at":         now,
	})
}
