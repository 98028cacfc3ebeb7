package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bereketsol/Inkwell/internal/handler/http/dto"
	usecasecontract "github.com/bereketsol/Inkwell/internal/usecase/contract"
)

type CategoryHandler struct {
	categoryUC usecasecontract.ICategoryUseCase
}

func NewCategoryHandler(categoryUC usecasecontract.ICategoryUseCase) *CategoryHandler {
	return &CategoryHandler{
		categoryUC: categoryUC,
	}
}

// CreateCategory creates a category, optionally under a parent
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	cat, err := h.categoryUC.CreateCategory(c.Request.Context(), req.Name, req.Description, req.Icon, req.Color, req.ParentID)
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, dto.ToCategoryResponse(*cat))
}

// GetCategory fetches a single category by ID
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	cat, err := h.categoryUC.GetCategoryByID(c.Request.Context(), c.Param("categoryID"))
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToCategoryResponse(*cat))
}

// ListCategories lists categories; ?include_inactive=true includes
// deactivated ones
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	includeInactive, _ := strconv.ParseBool(c.DefaultQuery("include_inactive", "false"))
	cats, err := h.categoryUC.ListCategories(c.Request.Context(), !includeInactive)
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToCategoryResponses(cats))
}

// UpdateCategory applies partial updates to a category
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	var req dto.UpdateCategoryRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Icon != nil {
		updates["icon"] = *req.Icon
	}
	if req.Color != nil {
		updates["color"] = *req.Color
	}
	if req.ParentID != nil {
		updates["parent_id"] = *req.ParentID
	}

	cat, err := h.categoryUC.UpdateCategory(c.Request.Context(), c.Param("categoryID"), updates)
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToCategoryResponse(*cat))
}

// DeleteCategory deactivates by default; ?hard=true removes the document
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	hard, _ := strconv.ParseBool(c.DefaultQuery("hard", "false"))
	if err := h.categoryUC.DeleteCategory(c.Request.Context(), c.Param("categoryID"), !hard); err != nil {
		RespondError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "category deleted")
}
