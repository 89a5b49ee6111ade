package reviewController

import (
	"tms/config"
	"tms/database"
	"tms/middleware"
	"tms/models"
	"tms/utils"
	reviewValidator "tms/validators/review"
	"tms/workflow"

	"github.com/gofiber/fiber/v2"
)

func engine() *workflow.Engine {
	return workflow.New(database.Database.Db, utils.SMTPMailer{}, config.AppConfig.DepartmentEmails)
}

// ShareProgress opens a progress review for one of the calling instructor's
// trainees and notifies every admin.
func ShareProgress(c *fiber.Ctx) error {
	instructorID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedShareProgress").(*reviewValidator.ShareProgressRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	review, err := engine().ShareProgress(reqData.TraineeID, instructorID, reqData.Summary)
	if err != nil {
		code, msg := workflow.HTTPStatus(err)
		return middleware.JsonResponse(c, code, false, msg, nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Progress shared for review!", review)
}

// CompleteReview signs off a pending review.
func CompleteReview(c *fiber.Ctx) error {
	adminID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reviewID := c.Locals("reviewID").(uint)
	reqData, ok := c.Locals("validatedCompleteReview").(*reviewValidator.CompleteReviewRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	review, err := engine().CompleteReview(reviewID, adminID, reqData.Comments)
	if err != nil {
		code, msg := workflow.HTTPStatus(err)
		return middleware.JsonResponse(c, code, false, msg, nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Review completed successfully!", review)
}

// ListReviews lists progress reviews, scoped to the caller: instructors see
// the ones they shared, admins see all. Optional status filter.
func ListReviews(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	role, _ := c.Locals("role").(string)

	reqData, ok := c.Locals("validatedListReviews").(*struct {
		Page   *int    `query:"page"`
		Limit  *int    `query:"limit"`
		Status *string `query:"status"`
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

	query := database.Database.Db.Model(&models.ProgressReview{}).Where("is_deleted = false")
	if role != models.RoleAdmin {
		query = query.Where("instructor_id = ?", userID)
	}
	if reqData.Status != nil && *reqData.Status != "" {
		query = query.Where("status = ?", *reqData.Status)
	}

	var total int64
	query.Count(&total)

	var reviews []models.ProgressReview
	if err := query.Preload("Trainee").Preload("Instructor").
		Offset(offset).Limit(limit).
		Order("created_at desc").
		Find(&reviews).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch reviews!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reviews fetched successfully!", fiber.Map{
		"reviews": reviews,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}
