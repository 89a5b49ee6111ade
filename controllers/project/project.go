package projectController

import (
	"path/filepath"
	"tms/config"
	"tms/database"
	"tms/middleware"
	"tms/models"
	"tms/utils"
	projectValidator "tms/validators/project"
	"tms/workflow"

	"github.com/gofiber/fiber/v2"
)

func engine() *workflow.Engine {
	return workflow.New(database.Database.Db, utils.SMTPMailer{}, config.AppConfig.DepartmentEmails)
}

// CreateProject assigns a project to an approved trainee owned by the
// calling instructor.
func CreateProject(c *fiber.Ctx) error {
	instructorID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedCreateProject").(*projectValidator.CreateProjectRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// The trainee must belong to the calling instructor.
	var trainee models.Trainee
	if err := database.Database.Db.Where("id = ? AND instructor_id = ? AND is_deleted = false",
		reqData.TraineeID, instructorID).First(&trainee).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Trainee not found!", nil)
	}

	project, err := engine().CreateProject(reqData.TraineeID, instructorID, workflow.ProjectInput{
		Title:       reqData.Title,
		Description: reqData.Description,
	})
	if err != nil {
		code, msg := workflow.HTTPStatus(err)
		return middleware.JsonResponse(c, code, false, msg, nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Project created successfully!", project)
}

// RecordProgress appends a progress entry to a project.
func RecordProgress(c *fiber.Ctx) error {
	instructorID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	projectID := c.Locals("projectID").(uint)
	reqData, ok := c.Locals("validatedRecordProgress").(*projectValidator.RecordProgressRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if !ownsProject(projectID, instructorID) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Project not found!", nil)
	}

	entry, err := engine().RecordProgress(projectID, reqData.Description, *reqData.PercentageCompleted)
	if err != nil {
		code, msg := workflow.HTTPStatus(err)
		return middleware.JsonResponse(c, code, false, msg, nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Progress recorded successfully!", entry)
}

// CompleteProject closes a project. Both the report and the attendance
// sheet must be uploaded in the same multipart request.
func CompleteProject(c *fiber.Ctx) error {
	instructorID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	projectID := c.Locals("projectID").(uint)
	rating := c.Locals("performanceRating").(int)

	if !ownsProject(projectID, instructorID) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Project not found!", nil)
	}

	reportFile, reportErr := c.FormFile("reportFile")
	attendanceFile, attendanceErr := c.FormFile("attendanceFile")
	if reportErr != nil || attendanceErr != nil {
		return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Both documents required!", nil)
	}

	destDir := filepath.Join(config.AppConfig.UploadDir, "projects")

	reportPath, err := utils.SaveUploadedFile(reportFile, destDir)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save report file!", nil)
	}
	attendancePath, err := utils.SaveUploadedFile(attendanceFile, destDir)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save attendance file!", nil)
	}

	project, err := engine().CompleteProject(projectID, rating, reportPath, attendancePath)
	if err != nil {
		code, msg := workflow.HTTPStatus(err)
		return middleware.JsonResponse(c, code, false, msg, nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Project completed successfully!", project)
}

// GetProject fetches a project with its progress log.
func GetProject(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	role, _ := c.Locals("role").(string)
	projectID := c.Locals("projectID").(uint)

	query := database.Database.Db.Where("id = ? AND is_deleted = false", projectID)
	if role != models.RoleAdmin {
		query = query.Where("instructor_id = ?", userID)
	}

	var project models.Project
	if err := query.Preload("Trainee").Preload("Progress").First(&project).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Project not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Project fetched successfully!", project)
}

// ListProjects lists projects, scoped to the caller: instructors see their
// own, admins see all. Optional status filter.
func ListProjects(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	role, _ := c.Locals("role").(string)

	reqData, ok := c.Locals("validatedListProjects").(*struct {
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

	query := database.Database.Db.Model(&models.Project{}).Where("is_deleted = false")
	if role != models.RoleAdmin {
		query = query.Where("instructor_id = ?", userID)
	}
	if reqData.Status != nil && *reqData.Status != "" {
		query = query.Where("status = ?", *reqData.Status)
	}

	var total int64
	query.Count(&total)

	var projects []models.Project
	if err := query.Preload("Trainee").
		Offset(offset).Limit(limit).
		Order("created_at desc").
		Find(&projects).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch projects!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Projects fetched successfully!", fiber.Map{
		"projects": projects,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// ownsProject reports whether the project belongs to the calling instructor.
func ownsProject(projectID, instructorID uint) bool {
	var project models.Project
	err := database.Database.Db.Where("id = ? AND instructor_id = ? AND is_deleted = false",
		projectID, instructorID).First(&project).Error
	return err == nil
}
