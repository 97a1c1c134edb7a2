package handlers

import (
	"faq-assistant/helper"
	"faq-assistant/models"
	"faq-assistant/services"

	"github.com/gin-gonic/gin"
)

type FaqHandler struct {
	faqService    services.FaqService
	answerService services.AnswerService
	Helper        *helper.HTTPHelper
}

func NewFaqHandler(faqService services.FaqService, answerService services.AnswerService, h *helper.HTTPHelper) *FaqHandler {
	return &FaqHandler{faqService: faqService, answerService: answerService, Helper: h}
}

func (h *FaqHandler) CreateFaq(c *gin.Context) {
	var req models.CreateFaqRequest
	if !h.Helper.BindJSON(c, &req) {
		return
	}

	id, err := h.faqService.Create(c.Request.Context(), helper.ActorID(c), req)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Faq created successfully", models.IDResponse{ID: id})
}

// GetFaqs lists faqs filtered by categoryId, tagId and searchValue.
func (h *FaqHandler) GetFaqs(c *gin.Context) {
	page, ok := h.Helper.BindPage(c)
	if !ok {
		return
	}
	categoryID, ok := h.Helper.QueryUUID(c, "categoryId")
	if !ok {
		return
	}
	tagID, ok := h.Helper.QueryUUID(c, "tagId")
	if !ok {
		return
	}

	params := models.FaqListParams{PageParams: page, CategoryID: categoryID, TagID: tagID}
	faqs, err := h.faqService.List(c.Request.Context(), params)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	helper.SendPaged(h.Helper, c, "Success", faqs)
}

func (h *FaqHandler) GetFaq(c *gin.Context) {
	id, ok := h.Helper.ParamUUID(c, "id")
	if !ok {
		return
	}

	faq, err := h.faqService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", faq)
}

func (h *FaqHandler) UpdateFaq(c *gin.Context) {
	id, ok := h.Helper.ParamUUID(c, "id")
	if !ok {
		return
	}
	var req models.UpdateFaqRequest
	if !h.Helper.BindJSON(c, &req) {
		return
	}

	updated, err := h.faqService.Update(c.Request.Context(), helper.ActorID(c), id, req)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Faq updated successfully", models.IDResponse{ID: updated})
}

func (h *FaqHandler) DeleteFaq(c *gin.Context) {
	id, ok := h.Helper.ParamUUID(c, "id")
	if !ok {
		return
	}

	deleted, err := h.faqService.Delete(c.Request.Context(), helper.ActorID(c), id)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Faq deleted successfully", models.IDResponse{ID: deleted})
}

func (h *FaqHandler) RateFaq(c *gin.Context) {
	id, ok := h.Helper.ParamUUID(c, "id")
	if !ok {
		return
	}
	var req models.RateFaqRequest
	if !h.Helper.BindJSON(c, &req) {
		return
	}

	rated, err := h.faqService.Rate(c.Request.Context(), helper.ActorID(c), id, *req.IsUpvote)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Faq rated successfully", models.IDResponse{ID: rated})
}

func (h *FaqHandler) AskAI(c *gin.Context) {
	id, ok := h.Helper.ParamUUID(c, "id")
	if !ok {
		return
	}

	answer, err := h.answerService.AskAI(c.Request.Context(), id)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", answer)
}
