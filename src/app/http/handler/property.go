package handler

import (
	"github.com/gin-gonic/gin"

	"lightbnb/src/app/http/dto"
	"lightbnb/src/app/http/response"
	"lightbnb/src/app/middleware"
	"lightbnb/src/core/usecase"
)

// PropertyHandler handles property search and creation.
type PropertyHandler struct {
	propertyService *usecase.PropertyService
}

func NewPropertyHandler(propertyService *usecase.PropertyService) *PropertyHandler {
	return &PropertyHandler{propertyService: propertyService}
}

// Search lists properties matching the query filters, cheapest first.
// GET /v1/properties
func (h *PropertyHandler) Search(c *gin.Context) {
	var q dto.PropertySearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "invalid query: "+err.Error(), middleware.GetRequestID(c))
		return
	}

	properties, err := h.propertyService.Search(c.Request.Context(), q.ToFilter(), q.Limit)
	if err != nil {
		fail(c, err)
		return
	}
	response.OKList(c, dto.NewPropertyListing(properties), len(properties))
}

// Create adds a property listing.
// POST /v1/properties
func (h *PropertyHandler) Create(c *gin.Context) {
	var req dto.CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid payload: "+err.Error(), middleware.GetRequestID(c))
		return
	}

	property, err := h.propertyService.Create(c.Request.Context(), req.ToDomain())
	if err != nil {
		fail(c, err)
		return
	}
	response.Created(c, dto.NewPropertyResponse(property))
}
