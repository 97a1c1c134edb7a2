package handlers

import (
	"faq-assistant/helper"
	"faq-assistant/models"
	"faq-assistant/services"

	"github.com/gin-gonic/gin"
)

type TagHandler struct {
	tagService services.TagService
	Helper     *helper.HTTPHelper
}

func NewTagHandler(tagService services.TagService, h *helper.HTTPHelper) *TagHandler {
	return &TagHandler{tagService: tagService, Helper: h}
}

func (h *TagHandler) CreateTag(c *gin.Context) {
	var req models.CreateTagRequest
	if !h.Helper.BindJSON(c, &req) {
		return
	}

	id, err := h.tagService.Create(c.Request.Context(), helper.ActorID(c), req)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Tag created successfully", models.IDResponse{ID: id})
}

func (h *TagHandler) GetTags(c *gin.Context) {
	tags, err := h.tagService.GetAll(c.Request.Context())
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", tags)
}

func (h *TagHandler) GetTagDetails(c *gin.Context) {
	params, ok := h.Helper.BindPage(c)
	if !ok {
		return
	}

	page, err := h.tagService.List(c.Request.Context(), params)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	helper.SendPaged(h.Helper, c, "Success", page)
}

func (h *TagHandler) GetTag(c *gin.Context) {
	id, ok := h.Helper.ParamUUID(c, "id")
	if !ok {
		return
	}

	tag, err := h.tagService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", tag)
}

func (h *TagHandler) UpdateTag(c *gin.Context) {
	id, ok := h.Helper.ParamUUID(c, "id")
	if !ok {
		return
	}
	var req models.UpdateTagRequest
	if !h.Helper.BindJSON(c, &req) {
		return
	}

	updated, err := h.tagService.Update(c.Request.Context(), helper.ActorID(c), id, req)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Tag updated successfully", models.IDResponse{ID: updated})
}

func (h *TagHandler) DeleteTag(c *gin.Context) {
	id, ok := h.Helper.ParamUUID(c, "id")
	if !ok {
		return
	}

	deleted, err := h.tagService.Delete(c.Request.Context(), helper.ActorID(c), id)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Tag deleted successfully", models.IDResponse{ID: deleted})
}
