package reviewValidator

import (
	"strconv"
	"strings"
	"tms/middleware"
	"tms/validators"

	"github.com/gofiber/fiber/v2"
)

type ShareProgressRequest struct {
	TraineeID uint   `json:"traineeId" validate:"required"`
	Summary   string `json:"summary" validate:"required"`
}

func ShareProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ShareProgressRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := validators.CheckStruct(reqData); errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedShareProgress", reqData)
		return c.Next()
	}
}

type CompleteReviewRequest struct {
	Comments string `json:"comments"`
}

func CompleteReview() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reviewIDStr := strings.TrimSpace(c.Params("id"))
		reviewID, err := strconv.Atoi(reviewIDStr)
		if err != nil || reviewID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Review ID!", nil)
		}

		reqData := new(CompleteReviewRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		c.Locals("reviewID", uint(reviewID))
		c.Locals("validatedCompleteReview", reqData)
		return c.Next()
	}
}

func ListReviews() fiber.Handler {
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

		c.Locals("validatedListReviews", reqData)
		return c.Next()
	}
}
