package instagram

import (
	"errors"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/instalink/backend/internal/apperr"
)

// Controller exposes the workflows over HTTP.
type Controller struct {
	svc        *Service
	production bool
}

func NewController(svc *Service, production bool) *Controller {
	return &Controller{svc: svc, production: production}
}

func (ct *Controller) Mount(router fiber.Router) {
	router.Post("/setup", ct.Setup)
	router.Get("/posts/:userId", ct.Posts)
	router.Post("/upload", ct.Upload)
}

func (ct *Controller) Setup(c *fiber.Ctx) error {
	var body SetupBody
	if err := c.BodyParser(&body); err != nil {
		return ct.respondError(c, &apperr.ValidationError{
			Label:  "Missing required parameters: shortLivedToken, userId, or facebookPageId",
			Detail: err.Error(),
		}, "Failed to setup Instagram integration")
	}
	if err := body.Validate(); err != nil {
		return ct.respondError(c, &apperr.ValidationError{
			Label:  "Missing required parameters: shortLivedToken, userId, or facebookPageId",
			Detail: err.Error(),
		}, "Failed to setup Instagram integration")
	}

	account, err := ct.svc.Link(c.UserContext(), SetupInput{
		ShortLivedToken: body.ShortLivedToken,
		UserID:          body.UserID,
		FacebookPageID:  body.FacebookPageID,
	})
	if err != nil {
		log.Printf("Instagram setup error: %v", err)
		// A store failure here means the graph API calls succeeded but the
		// credentials were not persisted; the body says so explicitly.
		var storeErr *apperr.StoreError
		if errors.As(err, &storeErr) {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error":   "Failed to store Instagram credentials",
				"details": storeErr.Error(),
			})
		}
		return ct.respondError(c, err, "Failed to setup Instagram integration")
	}

	// The stored row is echoed once at creation, token included; the model
	// itself never serializes the token.
	return c.JSON(fiber.Map{
		"success":              true,
		"instagram_account_id": account.InstagramAccountID,
		"data": fiber.Map{
			"user_id":              account.UserID,
			"instagram_account_id": account.InstagramAccountID,
			"facebook_page_id":     account.FacebookPageID,
			"access_token":         account.AccessToken,
			"connected_at":         account.ConnectedAt,
		},
	})
}

func (ct *Controller) Posts(c *fiber.Ctx) error {
	userID := c.Params("userId")

	// Non-numeric or non-positive page silently falls back to the first page.
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		page = 1
	}

	result, err := ct.svc.List(c.UserContext(), userID, page)
	if err != nil {
		log.Printf("Instagram posts error: %v", err)
		return ct.respondError(c, err, "Failed to fetch Instagram posts")
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"profile":    result.Profile,
		"posts":      result.Posts,
		"pagination": result.Pagination,
	})
}

func (ct *Controller) Upload(c *fiber.Ctx) error {
	var body UploadBody
	if err := c.BodyParser(&body); err != nil {
		return ct.respondError(c, &apperr.ValidationError{
			Label:  "Missing required parameters: userId or imageUrl",
			Detail: err.Error(),
		}, "Failed to upload image to Instagram")
	}
	if err := body.Validate(); err != nil {
		return ct.respondError(c, &apperr.ValidationError{
			Label:  "Missing required parameters: userId or imageUrl",
			Detail: err.Error(),
		}, "Failed to upload image to Instagram")
	}

	postID, err := ct.svc.Publish(c.UserContext(), body.UserID, body.ImageURL, body.Caption)
	if err != nil {
		log.Printf("Instagram upload error: %v", err)
		return ct.respondError(c, err, "Failed to upload image to Instagram")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"post_id": postID,
		"message": "Image successfully posted to Instagram",
	})
}

// respondError maps the error taxonomy to HTTP statuses and structured
// bodies. label is the route-specific summary used for unclassified failures.
func (ct *Controller) respondError(c *fiber.Ctx, err error, label string) error {
	var (
		validation *apperr.ValidationError
		notLinked  *apperr.NotLinkedError
		badImage   *apperr.InvalidImageError
		upstream   *apperr.UpstreamError
		notFound   *apperr.NotFoundError
		storeErr   *apperr.StoreError
	)
	switch {
	case errors.As(err, &validation):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   validation.Label,
			"details": validation.Detail,
		})
	case errors.As(err, &badImage):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid Image",
			"details": badImage.Detail,
		})
	case errors.As(err, &notLinked):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Instagram API Error",
			"details": notLinked.Detail,
		})
	case errors.As(err, &upstream):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Instagram API Error",
			"details": upstream.Message,
			"code":    upstream.Code,
		})
	case errors.As(err, &notFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error":   "Not Found",
			"details": notFound.Detail,
		})
	case errors.As(err, &storeErr):
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   label,
			"details": storeErr.Error(),
		})
	}

	details := err.Error()
	if ct.production {
		details = "An unexpected error occurred"
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error":   label,
		"details": details,
	})
}
