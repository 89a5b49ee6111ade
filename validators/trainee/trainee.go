package traineeValidator

import (
	"strconv"
	"strings"
	"tms/middleware"
	"tms/validators"

	"github.com/gofiber/fiber/v2"
)

type RegisterTraineeRequest struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Mobile      string `json:"mobile"`
	Institution string `json:"institution" validate:"required"`
	Degree      string `json:"degree"`
	Branch      string `json:"branch"`
}

func RegisterTrainee() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(RegisterTraineeRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := validators.CheckStruct(reqData); errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedRegisterTrainee", reqData)
		return c.Next()
	}
}

type DecideTraineeRequest struct {
	Decision string `json:"decision" validate:"required,oneof=APPROVED REJECTED"`
	Comments string `json:"comments"`
}

func DecideTrainee() fiber.Handler {
	return func(c *fiber.Ctx) error {
		traineeID, err := parseIDParam(c, "id")
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Trainee ID!", nil)
		}

		reqData := new(DecideTraineeRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := validators.CheckStruct(reqData); errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("traineeID", traineeID)
		c.Locals("validatedDecideTrainee", reqData)
		return c.Next()
	}
}

func GetTrainee() fiber.Handler {
	return func(c *fiber.Ctx) error {
		traineeID, err := parseIDParam(c, "id")
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Trainee ID!", nil)
		}

		c.Locals("traineeID", traineeID)
		return c.Next()
	}
}

func ListTrainees() fiber.Handler {
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

		c.Locals("validatedListTrainees", reqData)
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
