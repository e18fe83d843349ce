package catalog

import (
	"net/http"

	"go-inventory-api/internal/pkg/apperror"
	"go-inventory-api/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

// List serves the inventory screen. The optional "q" query filters by
// name substring.
func (h *Handler) List(c *gin.Context) {
	query := c.Query("q")

	var items []Item
	if query == "" {
		items = h.service.List(c.Request.Context())
	} else {
		items = h.service.Search(c.Request.Context(), query)
	}

	res := ItemListResponse{Items: make([]ItemResponse, 0, len(items))}
	for _, item := range items {
		res.Items = append(res.Items, toItemResponse(item))
	}

	response.Success(c, http.StatusOK, "", res)
}

func (h *Handler) Get(c *gin.Context) {
	item, err := h.service.Get(c.Request.Context(), c.Param("itemId"))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, "", toItemResponse(item))
}
