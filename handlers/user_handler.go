package handlers

import (
	"faq-assistant/helper"
	"faq-assistant/models"
	"faq-assistant/services"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService services.UserService
	Helper      *helper.HTTPHelper
}

func NewUserHandler(userService services.UserService, h *helper.HTTPHelper) *UserHandler {
	return &UserHandler{userService: userService, Helper: h}
}

func (h *UserHandler) GetUsers(c *gin.Context) {
	params, ok := h.Helper.BindPage(c)
	if !ok {
		return
	}

	page, err := h.userService.List(c.Request.Context(), params)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	helper.SendPaged(h.Helper, c, "Success", page)
}

func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := h.Helper.ParamUUID(c, "id")
	if !ok {
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", user)
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := h.Helper.ParamUUID(c, "id")
	if !ok {
		return
	}
	var req models.UpdateUserRequest
	if !h.Helper.BindJSON(c, &req) {
		return
	}

	updated, err := h.userService.Update(c.Request.Context(), helper.ActorID(c), id, req)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "User updated successfully", models.IDResponse{ID: updated})
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := h.Helper.ParamUUID(c, "id")
	if !ok {
		return
	}

	deleted, err := h.userService.Delete(c.Request.Context(), helper.ActorID(c), id)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "User deleted successfully", models.IDResponse{ID: deleted})
}
