package adminController

import (
	"log"
	"tms/config"
	"tms/database"
	"tms/middleware"
	"tms/models"
	authValidator "tms/validators/auth"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// CreateInstructor registers an instructor account on behalf of the calling
// admin. The admin is recorded as the account's creator.
func CreateInstructor(c *fiber.Ctx) error {
	adminID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedSignup").(*authValidator.SignupRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	if err := db.Where("email = ?", reqData.Email).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	instructor := models.User{
		Name:        reqData.Name,
		Email:       reqData.Email,
		Mobile:      reqData.Mobile,
		Password:    string(hashedPassword),
		Role:        models.RoleInstructor,
		Department:  reqData.Department,
		Designation: reqData.Designation,
		CreatedByID: &adminID,
	}

	if err := db.Create(&instructor).Error; err != nil {
		log.Printf("Error saving instructor to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create instructor!", nil)
	}

	instructor.Password = ""

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Instructor created successfully!", instructor)
}

// ListInstructors lists instructor accounts.
func ListInstructors(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	if page < 1 || limit < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
	}
	offset := (page - 1) * limit

	db := database.Database.Db

	var total int64
	db.Model(&models.User{}).Where("role = ? AND is_deleted = false", models.RoleInstructor).Count(&total)

	var instructors []models.User
	if err := db.Where("role = ? AND is_deleted = false", models.RoleInstructor).
		Omit("password").
		Offset(offset).Limit(limit).
		Order("created_at desc").
		Find(&instructors).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch instructors!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Instructors fetched successfully!", fiber.Map{
		"instructors": instructors,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// Dashboard returns workload counts for the admin landing page.
func Dashboard(c *fiber.Ctx) error {
	db := database.Database.Db

	counts := fiber.Map{}

	type bucket struct {
		model  interface{}
		status string
		key    string
	}
	buckets := []bucket{
		{&models.Trainee{}, models.TraineeStatusPending, "pendingTrainees"},
		{&models.Trainee{}, models.TraineeStatusApproved, "approvedTrainees"},
		{&models.Trainee{}, models.TraineeStatusRejected, "rejectedTrainees"},
		{&models.Project{}, models.ProjectStatusAssigned, "assignedProjects"},
		{&models.Project{}, models.ProjectStatusInProgress, "inProgressProjects"},
		{&models.Project{}, models.ProjectStatusCompleted, "completedProjects"},
		{&models.ProgressReview{}, models.ReviewStatusInReview, "pendingReviews"},
		{&models.ProgressReview{}, models.ReviewStatusCompleted, "completedReviews"},
	}

	for _, b := range buckets {
		var n int64
		if err := db.Model(b.model).Where("status = ? AND is_deleted = false", b.status).Count(&n).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch dashboard counts!", nil)
		}
		counts[b.key] = n
	}

	var instructors int64
	db.Model(&models.User{}).Where("role = ? AND is_deleted = false", models.RoleInstructor).Count(&instructors)
	counts["instructors"] = instructors

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard fetched successfully!", counts)
}
