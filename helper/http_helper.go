package helper

import (
	"errors"
	"log"
	"math"
	"net/http"
	"strconv"
	"time"

	"campus-news-api/models"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"gopkg.in/go-playground/validator.v9"
	en_translations "gopkg.in/go-playground/validator.v9/translations/en"
)

// HTTPHelper owns the response envelope and the request validator. Every
// endpoint responds through it, so success and failure always share one shape:
//
//	{ "success": true,  "data": ..., "timestamp": ... }
//	{ "success": false, "error": { "code", "message", "details" }, "timestamp": ... }
type HTTPHelper struct {
	Validate   *validator.Validate
	Translator ut.Translator

	// Diagnostic allows internal error detail to reach callers. Off in
	// production deployments.
	Diagnostic bool
}

func NewHTTPHelper(diagnostic bool) *HTTPHelper {
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")

	validate := validator.New()
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		log.Println("Failed to register validator translations:", err)
	}

	return &HTTPHelper{
		Validate:   validate,
		Translator: trans,
		Diagnostic: diagnostic,
	}
}

func statusFromKind(kind models.ErrorKind) int {
	switch kind {
	case models.ErrUnauthenticated:
		return http.StatusUnauthorized
	case models.ErrForbidden:
		return http.StatusForbidden
	case models.ErrNotFound:
		return http.StatusNotFound
	case models.ErrValidationFailed, models.ErrBadRequest:
		return http.StatusBadRequest
	case models.ErrMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case models.ErrConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// SendSuccess wraps data in the success envelope with status 200.
func (u *HTTPHelper) SendSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"data":      data,
		"timestamp": timestamp(),
	})
}

// SendAPIError maps any error to the failure envelope. Unknown errors become
// INTERNAL_ERROR; their underlying message is surfaced only in diagnostic mode.
func (u *HTTPHelper) SendAPIError(c *gin.Context, err error) {
	var apiErr *models.APIError
	if !errors.As(err, &apiErr) {
		apiErr = models.Internal("internal server error")
		if u.Diagnostic {
			apiErr.Details = err.Error()
		}
	}

	if apiErr.Kind == models.ErrInternal {
		log.Println("internal error:", err)
	}

	body := gin.H{
		"code":    apiErr.Kind,
		"message": apiErr.Message,
	}
	if apiErr.Details != nil {
		body["details"] = apiErr.Details
	}

	c.JSON(statusFromKind(apiErr.Kind), gin.H{
		"success":   false,
		"error":     body,
		"timestamp": timestamp(),
	})
}

// SendValidationError reports the complete list of field violations, keyed by
// the snake_cased struct field name.
func (u *HTTPHelper) SendValidationError(c *gin.Context, validationErrors validator.ValidationErrors) {
	errorResponse := map[string][]string{}
	errorTranslation := validationErrors.Translate(u.Translator)
	for _, err := range validationErrors {
		errKey := Underscore(err.StructField())
		errorResponse[errKey] = append(errorResponse[errKey], errorTranslation[err.Namespace()])
	}

	u.SendAPIError(c, models.ValidationFailed(errorResponse))
}

// BindAndValidate decodes the JSON body into obj and validates it against the
// declared schema. It writes the failure envelope itself and reports whether
// the handler may proceed.
func (u *HTTPHelper) BindAndValidate(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		u.SendAPIError(c, models.BadRequest("invalid request body"))
		return false
	}

	if err := u.Validate.Struct(obj); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			u.SendValidationError(c, validationErrors)
		} else {
			u.SendAPIError(c, models.BadRequest("invalid request body"))
		}
		return false
	}

	return true
}

// get pagination URL
func (u *HTTPHelper) GetPagingUrl(c *gin.Context, page, limit int) string {
	r := c.Request
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	currentURL := scheme + "://" + r.Host + r.URL.Path + "?page=" + strconv.Itoa(page) + "&limit=" + strconv.Itoa(limit)
	return currentURL
}

// Set paginantion response
func (u *HTTPHelper) GeneratePaging(c *gin.Context, prev, next, limit, page, totalRecord int) map[string]interface{} {

	prevURL, nextURL, firstURL, lastURL := "", "", "", ""

	totalPages := int(math.Ceil(float64(totalRecord) / float64(limit)))

	if page > 1 {
		prev = page - 1
		if page < totalPages {
			next = page + 1
		} else {
			next = totalPages
		}
	}

	if totalPages >= page && page > 1 {
		prevURL = u.GetPagingUrl(c, prev, limit)
	}

	if totalPages > page {
		nextURL = u.GetPagingUrl(c, next, limit)
	}

	if totalPages >= page && page > 1 {
		firstURL = u.GetPagingUrl(c, 1, limit)
	}

	if totalPages >= page && totalPages != page {
		lastURL = u.GetPagingUrl(c, totalPages, limit)
	}

	links := map[string]interface{}{
		"previous": prevURL,
		"next":     nextURL,
		"first":    firstURL,
		"last":     lastURL,
	}

	pagination := map[string]interface{}{
		"total_records": totalRecord,
		"per_page":      limit,
		"current_page":  page,
		"total_pages":   totalPages,
		"links":         links,
	}

	return pagination
}
