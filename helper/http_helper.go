package helper

import (
	"errors"
	"log/slog"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"faq-assistant/models"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"gopkg.in/go-playground/validator.v9"
	en_translations "gopkg.in/go-playground/validator.v9/translations/en"
)

const (
	textError = `error`
	textOk    = `ok`

	codeSuccess           = 200
	codeBadRequestError   = 400
	codeUnauthorizedError = 401
	codeForbiddenError    = 403
	codeNotFound          = 404
	codeConflictError     = 409
	codeValidationError   = 422
	codeInternalError     = 500
	codeDependencyError   = 502

	msgInternalError = "Something went wrong. Please try again later."
)

// ResponseHelper ...
type ResponseHelper struct {
	C        *gin.Context
	Status   string
	Message  string
	Data     interface{}
	Code     int // not the http code
	CodeType string
}

// HTTPHelper ...
type HTTPHelper struct {
	Validate   *validator.Validate
	Translator ut.Translator
}

// NewHTTPHelper builds a helper with an english translator for validation
// errors. Field names are reported by their json tag.
func NewHTTPHelper() *HTTPHelper {
	english := en.New()
	translator, _ := ut.New(english, english).GetTranslator("en")

	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := en_translations.RegisterDefaultTranslations(validate, translator); err != nil {
		slog.Error("register validation translations", "error", err)
	}

	return &HTTPHelper{Validate: validate, Translator: translator}
}

// GetStatusCode maps a service error to its http status.
func (u *HTTPHelper) GetStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}
	var (
		unauthorized models.ErrorUnauthorized
		forbidden    models.ErrorForbidden
		notFound     models.ErrorNotFound
		conflict     models.ErrorConflict
		validation   models.ErrorValidation
		dependency   models.ErrorDependency
	)
	switch {
	case errors.As(err, &unauthorized):
		return http.StatusUnauthorized
	case errors.As(err, &forbidden):
		return http.StatusForbidden
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &conflict):
		return http.StatusConflict
	case errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.As(err, &dependency):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// SetResponse ...
// Set response data.
func (u *HTTPHelper) SetResponse(c *gin.Context, status string, message string, data interface{}, code int, codeType string) ResponseHelper {
	return ResponseHelper{c, status, message, data, code, codeType}
}

// SendError ...
// Send error response to consumers.
func (u *HTTPHelper) SendError(c *gin.Context, message string, data interface{}, code int, codeType string) error {
	res := u.SetResponse(c, textError, message, data, code, codeType)

	return u.SendResponse(res)
}

// SendBadRequest ...
// Send bad request response to consumers.
func (u *HTTPHelper) SendBadRequest(c *gin.Context, message string, data interface{}) error {
	return u.SendError(c, message, data, codeBadRequestError, `badRequest`)
}

// SendValidationError ...
// Send validation error response to consumers.
func (u *HTTPHelper) SendValidationError(c *gin.Context, validationErrors validator.ValidationErrors) error {
	errorResponse := map[string][]string{}
	errorTranslation := validationErrors.Translate(u.Translator)
	for _, err := range validationErrors {
		errKey := err.Field()
		errorResponse[errKey] = append(errorResponse[errKey], errorTranslation[err.Namespace()])
	}

	c.JSON(http.StatusBadRequest, map[string]interface{}{
		"status":       textError,
		"code":         codeValidationError,
		"code_type":    "validationError",
		"code_message": errorResponse,
		"data":         u.EmptyJsonMap(),
	})
	return nil
}

// SendUnauthorizedError ...
// Send unauthorized response to consumers.
func (u *HTTPHelper) SendUnauthorizedError(c *gin.Context, message string, data interface{}) error {
	return u.SendError(c, message, data, codeUnauthorizedError, `unAuthorized`)
}

// SendNotFoundError ...
// Send not found response to consumers.
func (u *HTTPHelper) SendNotFoundError(c *gin.Context, message string, data interface{}) error {
	return u.SendError(c, message, data, codeNotFound, `notFound`)
}

// SendServiceError ...
// Send the response matching a service error. Unknown errors are logged and
// answered with a generic message.
func (u *HTTPHelper) SendServiceError(c *gin.Context, err error) error {
	status := u.GetStatusCode(err)
	switch status {
	case http.StatusUnauthorized:
		return u.SendUnauthorizedError(c, err.Error(), u.EmptyJsonMap())
	case http.StatusForbidden:
		return u.SendError(c, err.Error(), u.EmptyJsonMap(), codeForbiddenError, `forbidden`)
	case http.StatusNotFound:
		return u.SendNotFoundError(c, err.Error(), u.EmptyJsonMap())
	case http.StatusConflict:
		return u.SendError(c, err.Error(), u.EmptyJsonMap(), codeConflictError, `conflict`)
	case http.StatusBadRequest:
		return u.SendBadRequest(c, err.Error(), u.EmptyJsonMap())
	case http.StatusBadGateway:
		slog.Warn("dependency failure", "path", c.FullPath(), "error", err)
		return u.SendError(c, err.Error(), u.EmptyJsonMap(), codeDependencyError, `dependencyError`)
	}

	var cfgErr models.ErrorConfiguration
	if errors.As(err, &cfgErr) {
		slog.Error("configuration error", "path", c.FullPath(), "error", err)
		return u.SendError(c, cfgErr.Message, u.EmptyJsonMap(), codeInternalError, `configurationError`)
	}
	slog.Error("request failed", "method", c.Request.Method, "path", c.FullPath(), "error", err)
	return u.SendError(c, msgInternalError, u.EmptyJsonMap(), codeInternalError, `internalServerError`)
}

// SendSuccess ...
// Send success response to consumers.
func (u *HTTPHelper) SendSuccess(c *gin.Context, message string, data interface{}) error {
	res := u.SetResponse(c, textOk, message, data, codeSuccess, `success`)

	return u.SendResponse(res)
}

// SendPaged ...
// Send a page of items together with the paging block.
func SendPaged[T any](u *HTTPHelper, c *gin.Context, message string, page models.PagedResult[T]) error {
	return u.SendSuccess(c, message, map[string]interface{}{
		"items":  page.Items,
		"paging": u.GeneratePaging(c, page.PageInfo),
	})
}

// SendResponse ...
// Send response. The http status follows Code for every known code.
func (u *HTTPHelper) SendResponse(res ResponseHelper) error {
	if len(res.Message) == 0 {
		res.Message = `success`
	}

	resCode := res.Code
	if http.StatusText(resCode) == "" {
		resCode = http.StatusBadRequest
	}

	res.C.JSON(resCode, map[string]interface{}{
		"status":       res.Status,
		"code":         res.Code,
		"code_type":    res.CodeType,
		"code_message": res.Message,
		"data":         res.Data,
	})
	return nil
}

func (u *HTTPHelper) EmptyJsonMap() map[string]interface{} {
	return make(map[string]interface{})
}

// GetPagingUrl rebuilds the current url for another page, keeping the
// other query parameters.
func (u *HTTPHelper) GetPagingUrl(c *gin.Context, page, size int) string {
	r := c.Request
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	query := r.URL.Query()
	query.Set("pageNumber", strconv.Itoa(page))
	query.Set("pageSize", strconv.Itoa(size))
	return scheme + "://" + r.Host + r.URL.Path + "?" + query.Encode()
}

// GeneratePaging ...
// Set pagination response.
func (u *HTTPHelper) GeneratePaging(c *gin.Context, info models.PageInfo) map[string]interface{} {
	prevURL, nextURL, firstURL, lastURL := "", "", "", ""

	if info.HasPreviousPage && info.TotalPages > 0 {
		prev := info.PageNumber - 1
		if prev > info.TotalPages {
			prev = info.TotalPages
		}
		prevURL = u.GetPagingUrl(c, prev, info.PageSize)
		firstURL = u.GetPagingUrl(c, 1, info.PageSize)
	}

	if info.HasNextPage {
		nextURL = u.GetPagingUrl(c, info.PageNumber+1, info.PageSize)
		lastURL = u.GetPagingUrl(c, info.TotalPages, info.PageSize)
	}

	links := map[string]interface{}{
		"previous": prevURL,
		"next":     nextURL,
		"first":    firstURL,
		"last":     lastURL,
	}

	return map[string]interface{}{
		"total_records":     info.TotalCount,
		"per_page":          info.PageSize,
		"current_page":      info.PageNumber,
		"total_pages":       info.TotalPages,
		"has_next_page":     info.HasNextPage,
		"has_previous_page": info.HasPreviousPage,
		"links":             links,
	}
}
