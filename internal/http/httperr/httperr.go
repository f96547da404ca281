// Package httperr renders service errors as JSON responses.
package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"auctionhousego/internal/apperr"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type ErrorResponse struct {
	Detail string `json:"detail" example:"Not found."`
} // @name ErrorResponse

// FieldErrorsResponse documents the per-field 400 body, e.g. {"closing_date": ["..."]}.
type FieldErrorsResponse map[string][]string // @name FieldErrorsResponse

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// Write maps err onto a status code and body and aborts the request.
func Write(c *gin.Context, err error) {
	var (
		fe *apperr.FieldError
		re *apperr.RuleError
	)
	switch {
	case errors.As(err, &fe):
		c.AbortWithStatusJSON(http.StatusBadRequest, fe.Fields)
	case errors.As(err, &re):
		c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Detail: re.Message})
	case errors.Is(err, apperr.ErrUnauthorized):
		c.Header("WWW-Authenticate", `Bearer realm="api"`)
		c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Detail: err.Error()})
	case errors.Is(err, apperr.ErrForbidden):
		c.AbortWithStatusJSON(http.StatusForbidden, ErrorResponse{Detail: err.Error()})
	case errors.Is(err, apperr.ErrNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, ErrorResponse{Detail: "Not found."})
	default:
		zap.L().Error("request_failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err))
		c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Detail: "A server error occurred."})
	}
}

// BadRequest reports a body, path or query value that could not be bound.
func BadRequest(c *gin.Context, err error) {
	var (
		ves validator.ValidationErrors
		ute *json.UnmarshalTypeError
	)
	switch {
	case errors.As(err, &ves):
		c.AbortWithStatusJSON(http.StatusBadRequest, validationFields(ves))
	case errors.As(err, &ute) && ute.Field != "":
		c.AbortWithStatusJSON(http.StatusBadRequest, map[string][]string{
			ute.Field: {fmt.Sprintf("Expected a value of type %s.", ute.Type)},
		})
	case apperr.IsFieldError(err):
		Write(c, err)
	default:
		c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Detail: "JSON parse error - " + err.Error()})
	}
}

func validationFields(ves validator.ValidationErrors) map[string][]string {
	out := make(map[string][]string, len(ves))
	for _, v := range ves {
		name := v.Field()
		out[name] = append(out[name], message(v))
	}
	return out
}

func message(v validator.FieldError) string {
	switch v.Tag() {
	case "required":
		return "This field is required."
	case "max":
		if v.Kind() == reflect.String {
			return fmt.Sprintf("Ensure this field has no more than %s characters.", v.Param())
		}
		return fmt.Sprintf("Ensure this value is less than or equal to %s.", v.Param())
	case "min":
		if v.Kind() == reflect.String {
			return fmt.Sprintf("Ensure this field has at least %s characters.", v.Param())
		}
		return fmt.Sprintf("Ensure this value is greater than or equal to %s.", v.Param())
	case "url":
		return "Enter a valid URL."
	case "email":
		return "Enter a valid email address."
	default:
		return "Invalid value."
	}
}
