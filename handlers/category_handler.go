package handlers

import (
	"faq-assistant/helper"
	"faq-assistant/models"
	"faq-assistant/services"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	categoryService services.CategoryService
	Helper     *helper.HTTPHelper
}

func NewCategoryHandler(categoryService services.CategoryService, h *helper.HTTPHelper) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService, Helper: h}
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req models.CreateCategoryRequest
	if !h.Helper.BindJSON(c, &req) {
		return
	}

	id, err := h.categoryService.Create(c.Request.Context(), helper.ActorID(c), req)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Category created successfully", models.IDResponse{ID: id})
}

func (h *CategoryHandler) GetCategories(c *gin.Context) {
	categories, err := h.categoryService.GetAll(c.Request.Context())
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", categories)
}

func (h *CategoryHandler) GetCategoryDetails(c *gin.Context) {
	params, ok := h.Helper.BindPage(c)
	if !ok {
		return
	}

	page, err := h.categoryService.List(c.Request.Context(), params)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	helper.SendPaged(h.Helper, c, "Success", page)
}

func (h *CategoryHandler) GetCategory(c *gin.Context) {
	id, ok := h.Helper.ParamUUID(c, "id")
	if !ok {
		return
	}

	category, err := h.categoryService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", category)
}

func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id, ok := h.Helper.ParamUUID(c, "id")
	if !ok {
		return
	}
	var req models.UpdateCategoryRequest
	if !h.Helper.BindJSON(c, &req) {
		return
	}

	updated, err := h.categoryService.Update(c.Request.Context(), helper.ActorID(c), id, req)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Category updated successfully", models.IDResponse{ID: updated})
}

func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, ok := h.Helper.ParamUUID(c, "id")
	if !ok {
		return
	}

	deleted, err := h.categoryService.Delete(c.Request.Context(), helper.ActorID(c), id)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Category deleted successfully", models.IDResponse{ID: deleted})
}
