package v1

import (
	"net/http"

	"ggenius-website/internal/delivery/http/middleware"
	"ggenius-website/internal/delivery/http/response"
	"ggenius-website/internal/domain"
	"ggenius-website/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the contact routes (public, no auth required)
func NewContactHandler(public gin.IRoutes, contactUC domain.ContactUsecase, limit middleware.RateLimitConfig) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	public.POST("/contact", middleware.RateLimitMiddleware(limit), handler.SubmitContact)
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Validate an early-access request. Accepted requests are logged only.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        contact  body      domain.ContactRequest  true  "Contact Form Data"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      429      {object}  response.Response
// @Router       /contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req domain.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperror.Validation(domain.ErrInvalidBody, nil))
		return
	}

	if _, err := h.contactUC.Submit(c.Request.Context(), &req); err != nil {
		_ = c.Error(err)
		return
	}

	response.Acknowledge(c, http.StatusOK, domain.ContactAckMessage, domain.ContactAckNextStep)
}
