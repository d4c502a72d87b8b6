package v1

import (
	"net/http"

	"ggenius-website/internal/domain"

	"github.com/gin-gonic/gin"
)

type PageHandler struct {
	pageUC domain.PageUsecase
}

func NewPageHandler(r gin.IRoutes, pageUC domain.PageUsecase) {
	handler := &PageHandler{
		pageUC: pageUC,
	}

	r.GET("/", handler.Index)
	r.HEAD("/", handler.Index)
}

// Index godoc
// @Summary      Landing page
// @Description  Rendered template, static index.html, or a generated placeholder, in that order.
// @Tags         pages
// @Produce      html
// @Success      200
// @Failure      500  {object}  response.Response
// @Router       / [get]
func (h *PageHandler) Index(c *gin.Context) {
	page, err := h.pageUC.Resolve(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	for k, v := range page.Headers {
		c.Header(k, v)
	}
	c.Data(http.StatusOK, page.ContentType, page.Body)
}
