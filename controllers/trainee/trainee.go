package traineeController

import (
	"tms/config"
	"tms/database"
	"tms/middleware"
	"tms/models"
	"tms/utils"
	traineeValidator "tms/validators/trainee"
	"tms/workflow"

	"github.com/gofiber/fiber/v2"
)

func engine() *workflow.Engine {
	return workflow.New(database.Database.Db, utils.SMTPMailer{}, config.AppConfig.DepartmentEmails)
}

// RegisterTrainee registers a new trainee under the calling instructor. The
// trainee starts in PENDING status and every admin is notified.
func RegisterTrainee(c *fiber.Ctx) error {
	instructorID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedRegisterTrainee").(*traineeValidator.RegisterTraineeRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	trainee, err := engine().SubmitTrainee(instructorID, workflow.TraineeInput{
		Name:        reqData.Name,
		Email:       reqData.Email,
		Mobile:      reqData.Mobile,
		Institution: reqData.Institution,
		Degree:      reqData.Degree,
		Branch:      reqData.Branch,
	})
	if err != nil {
		code, msg := workflow.HTTPStatus(err)
		return middleware.JsonResponse(c, code, false, msg, nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Trainee registered successfully!", trainee)
}

// ListPendingApprovals lists trainees awaiting an admin decision.
func ListPendingApprovals(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedListTrainees").(*struct {
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

	db := database.Database.Db

	var total int64
	db.Model(&models.Trainee{}).
		Where("status = ? AND is_deleted = false", models.TraineeStatusPending).
		Count(&total)

	var trainees []models.Trainee
	if err := db.Where("status = ? AND is_deleted = false", models.TraineeStatusPending).
		Preload("Instructor").
		Offset(offset).Limit(limit).
		Order("created_at ASC").
		Find(&trainees).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch pending approvals!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Pending approvals fetched!", fiber.Map{
		"trainees": trainees,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// DecideTrainee approves or rejects a pending trainee.
func DecideTrainee(c *fiber.Ctx) error {
	adminID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	traineeID := c.Locals("traineeID").(uint)
	reqData, ok := c.Locals("validatedDecideTrainee").(*traineeValidator.DecideTraineeRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	trainee, err := engine().DecideTrainee(traineeID, adminID, reqData.Decision, reqData.Comments)
	if err != nil {
		code, msg := workflow.HTTPStatus(err)
		return middleware.JsonResponse(c, code, false, msg, nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Trainee decision recorded!", trainee)
}

// ListTrainees lists trainees, scoped to the caller: instructors see their
// own, admins see all. Optional status filter.
func ListTrainees(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	role, _ := c.Locals("role").(string)

	reqData, ok := c.Locals("validatedListTrainees").(*struct {
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

	query := database.Database.Db.Model(&models.Trainee{}).Where("is_deleted = false")
	if role != models.RoleAdmin {
		query = query.Where("instructor_id = ?", userID)
	}
	if reqData.Status != nil && *reqData.Status != "" {
		query = query.Where("status = ?", *reqData.Status)
	}

	var total int64
	query.Count(&total)

	var trainees []models.Trainee
	if err := query.Preload("Instructor").
		Offset(offset).Limit(limit).
		Order("created_at desc").
		Find(&trainees).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch trainees!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Trainees fetched successfully!", fiber.Map{
		"trainees": trainees,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// GetTrainee fetches a single trainee with its projects and documents.
func GetTrainee(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	role, _ := c.Locals("role").(string)
	traineeID := c.Locals("traineeID").(uint)

	query := database.Database.Db.Where("id = ? AND is_deleted = false", traineeID)
	if role != models.RoleAdmin {
		query = query.Where("instructor_id = ?", userID)
	}

	var trainee models.Trainee
	if err := query.Preload("Instructor").Preload("ApprovedBy").First(&trainee).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Trainee not found!", nil)
	}

	var projects []models.Project
	database.Database.Db.Where("trainee_id = ? AND is_deleted = false", traineeID).Find(&projects)

	var documents []models.Document
	database.Database.Db.Where("trainee_id = ? AND is_deleted = false", traineeID).Find(&documents)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Trainee fetched successfully!", fiber.Map{
		"trainee":   trainee,
		"projects":  projects,
		"documents": documents,
	})
}
