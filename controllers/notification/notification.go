package notificationController

import (
	"tms/database"
	"tms/middleware"
	"tms/models"

	"github.com/gofiber/fiber/v2"
)

// recipientType maps the caller's role to the notification recipient type.
func recipientType(role string) string {
	if role == models.RoleAdmin {
		return models.RecipientAdmin
	}
	return models.RecipientInstructor
}

// ListNotifications lists the caller's notifications with an unread count.
func ListNotifications(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	role, _ := c.Locals("role").(string)

	reqData, ok := c.Locals("validatedListNotifications").(*struct {
		Page       *int  `query:"page"`
		Limit      *int  `query:"limit"`
		UnreadOnly *bool `query:"unreadOnly"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	page, limit := 1, 10
	if reqData.Page != nil {
		page = *reqData.Page
	}
	if reqData.Limit != nil {
		limit = *reqData.Limit
	}
	offset := (page - 1) * limit

	query := database.Database.Db.Model(&models.Notification{}).
		Where("recipient_id = ? AND recipient_type = ? AND is_deleted = false", userID, recipientType(role))
	if reqData.UnreadOnly != nil && *reqData.UnreadOnly {
		query = query.Where("is_read = false")
	}

	var total int64
	query.Count(&total)

	var unread int64
	database.Database.Db.Model(&models.Notification{}).
		Where("recipient_id = ? AND recipient_type = ? AND is_read = false AND is_deleted = false", userID, recipientType(role)).
		Count(&unread)

	var notifications []models.Notification
	if err := query.Offset(offset).Limit(limit).
		Order("created_at desc").
		Find(&notifications).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch notifications!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Notifications fetched successfully!", fiber.Map{
		"notifications": notifications,
		"unreadCount":   unread,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// MarkRead flags a single notification as read.
func MarkRead(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	role, _ := c.Locals("role").(string)
	notificationID := c.Locals("notificationID").(uint)

	res := database.Database.Db.Model(&models.Notification{}).
		Where("id = ? AND recipient_id = ? AND recipient_type = ? AND is_deleted = false",
			notificationID, userID, recipientType(role)).
		Update("is_read", true)
	if res.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update notification!", nil)
	}
	if res.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Notification not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Notification marked as read!", nil)
}

// MarkAllRead flags all of the caller's notifications as read.
func MarkAllRead(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	role, _ := c.Locals("role").(string)

	if err := database.Database.Db.Model(&models.Notification{}).
		Where("recipient_id = ? AND recipient_type = ? AND is_read = false AND is_deleted = false", userID, recipientType(role)).
		Update("is_read", true).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update notifications!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "All notifications marked as read!", nil)
}
