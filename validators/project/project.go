package projectValidator

import (
	"strconv"
	"strings"
	"tms/middleware"
	"tms/validators"

	"github.com/gofiber/fiber/v2"
)

type CreateProjectRequest struct {
	TraineeID   uint   `json:"traineeId" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
}

func CreateProject() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateProjectRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := validators.CheckStruct(reqData); errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCreateProject", reqData)
		return c.Next()
	}
}

type RecordProgressRequest struct {
	Description         string `json:"description" validate:"required"`
	PercentageCompleted *int   `json:"percentageCompleted" validate:"required,min=0,max=100"`
}

func RecordProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		projectID, err := parseIDParam(c, "id")
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Project ID!", nil)
		}

		reqData := new(RecordProgressRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := validators.CheckStruct(reqData); errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("projectID", projectID)
		c.Locals("validatedRecordProgress", reqData)
		return c.Next()
	}
}

func CompleteProject() fiber.Handler {
	return func(c *fiber.Ctx) error {
		projectID, err := parseIDParam(c, "id")
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Project ID!", nil)
		}

		rating, err := strconv.Atoi(strings.TrimSpace(c.FormValue("performanceRating")))
		if err != nil {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"performanceRating": "Performance rating is required!",
			})
		}

		c.Locals("projectID", projectID)
		c.Locals("performanceRating", rating)
		return c.Next()
	}
}

func GetProject() fiber.Handler {
	return func(c *fiber.Ctx) error {
		projectID, err := parseIDParam(c, "id")
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Project ID!", nil)
		}

		c.Locals("projectID", projectID)
		return c.Next()
	}
}

func ListProjects() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Page   *int    `query:"page"`
			Limit  *int    `query:"limit"`
			Status *string `query:"status"`
		})

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		errors := make(map[string]string)

		if reqData.Page != nil && *reqData.Page < 1 {
			errors["page"] = "Page must be greater than 0!"
		}
		if reqData.Limit != nil && *reqData.Limit < 1 {
			errors["limit"] = "Limit must be greater than 0!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedListProjects", reqData)
		return c.Next()
	}
}

// parseIDParam validates a numeric path parameter
func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	idStr := strings.TrimSpace(c.Params(name))
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		return 0, fiber.ErrBadRequest
	}
	return uint(id), nil
}
