package helper

import (
	"errors"
	"strings"

	"faq-assistant/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gopkg.in/go-playground/validator.v9"
)

// BindJSON decodes and validates the request body into req. It answers the
// request itself and returns false when the body is unusable.
func (u *HTTPHelper) BindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		u.SendBadRequest(c, "Invalid request body: "+err.Error(), u.EmptyJsonMap())
		return false
	}
	if err := u.Validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			u.SendValidationError(c, verrs)
			return false
		}
		u.SendBadRequest(c, err.Error(), u.EmptyJsonMap())
		return false
	}
	return true
}

// ParamUUID reads a uuid path parameter, answering 400 when it is malformed.
func (u *HTTPHelper) ParamUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		u.SendBadRequest(c, "Invalid "+name+".", u.EmptyJsonMap())
		return uuid.Nil, false
	}
	return id, true
}

// QueryUUID reads an optional uuid query parameter.
func (u *HTTPHelper) QueryUUID(c *gin.Context, name string) (*uuid.UUID, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		u.SendBadRequest(c, "Invalid "+name+".", u.EmptyJsonMap())
		return nil, false
	}
	return &id, true
}

// BindPage reads pageNumber, pageSize and searchValue from the query string.
func (u *HTTPHelper) BindPage(c *gin.Context) (models.PageParams, bool) {
	var params models.PageParams
	if err := c.ShouldBindQuery(&params); err != nil {
		u.SendBadRequest(c, "Invalid paging parameters.", u.EmptyJsonMap())
		return params, false
	}
	params.Search = strings.TrimSpace(params.Search)
	return params.Normalize(), true
}

// ActorID returns the authenticated user id stored by the auth middleware,
// or uuid.Nil.
func ActorID(c *gin.Context) uuid.UUID {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return uuid.Nil
	}
	id, _ := v.(uuid.UUID)
	return id
}

const (
	ContextUserID   = "user_id"
	ContextUsername = "username"
)
