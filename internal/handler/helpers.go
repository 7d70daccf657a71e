package handler

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/ridwanfathin/gst-billing-service/internal/domain"
	"github.com/ridwanfathin/gst-billing-service/internal/middleware"
	"github.com/ridwanfathin/gst-billing-service/internal/model"
	"github.com/ridwanfathin/gst-billing-service/internal/service"
)

var registerTagNames sync.Once

// getPathParam retrieves a path parameter and validates it's not empty
func getPathParam(c *gin.Context, paramName string) (string, error) {
	value := strings.TrimSpace(c.Param(paramName))
	if value == "" {
		return "", fmt.Errorf("%s is required", paramName)
	}
	return value, nil
}

// getQueryInt retrieves a non-negative integer query parameter with a default value
func getQueryInt(c *gin.Context, paramName string, defaultValue int) (int, error) {
	valueStr := c.Query(paramName)
	if valueStr == "" {
		return defaultValue, nil
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: must be an integer", paramName)
	}
	if value < 0 {
		return 0, fmt.Errorf("invalid %s: must not be negative", paramName)
	}

	return value, nil
}

// bindJSON binds JSON request body to a struct and reports validation
// failures per field, named by their JSON keys
func bindJSON(c *gin.Context, obj interface{}) ([]model.ErrorDetail, error) {
	registerTagNames.Do(useJSONFieldNames)

	if err := c.ShouldBindJSON(obj); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return buildValidationErrors(validationErrs), fmt.Errorf("validation failed")
		}
		return nil, fmt.Errorf("invalid JSON format: %v", err)
	}
	return nil, nil
}

// useJSONFieldNames makes validator report json tag names instead of Go field names
func useJSONFieldNames() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// buildValidationErrors converts validation errors to ErrorDetail slice
func buildValidationErrors(errs validator.ValidationErrors) []model.ErrorDetail {
	details := make([]model.ErrorDetail, 0, len(errs))
	for _, fe := range errs {
		// drop the request type prefix, e.g. CreateInvoiceRequest.products[0].quantity
		field := fe.Namespace()
		if i := strings.Index(field, "."); i >= 0 {
			field = field[i+1:]
		}

		message := fmt.Sprintf("failed %s validation", fe.Tag())
		if fe.Tag() == "required" {
			message = "field required"
		}

		details = append(details, newErrorDetail(field, message))
	}
	return details
}

// respondServiceError maps service failures onto HTTP responses
func respondServiceError(c *gin.Context, op string, err error, notFoundMessage string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		respondNotFound(c, notFoundMessage)
		return
	case errors.Is(err, domain.ErrDuplicateInvoiceNumber):
		respondConflict(c, ErrInvoiceNumberTaken)
		return
	case errors.Is(err, service.ErrArchiveDisabled):
		respondServiceUnavailable(c, ErrArchiveUnavailable)
		return
	}

	logError(c, op, err, nil)
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		respondWithError(c, StatusGatewayTimeout, ErrRequestTimeout)
	default:
		respondInternalServerError(c, ErrInternalServer)
	}
}

// logError records a failed request with its correlation id
func logError(c *gin.Context, event string, err error, fields map[string]interface{}) {
	zapFields := []zap.Field{
		zap.String("event", event),
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
	}
	if requestID := c.GetString(middleware.RequestIDKey); requestID != "" {
		zapFields = append(zapFields, zap.String(middleware.RequestIDKey, requestID))
	}
	for key, value := range fields {
		zapFields = append(zapFields, zap.Any(key, value))
	}

	zap.L().Error("request failed", zapFields...)
	_ = c.Error(err)
}
