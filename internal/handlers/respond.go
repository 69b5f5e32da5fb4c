package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/joblinkhq/joblink/internal/apperr"
)

// fail translates service errors into HTTP responses. Authorization
// failures are terminal 403s; validation and business-rule failures carry
// enough detail for the caller to correct and resubmit.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperr.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	case errors.Is(err, apperr.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, apperr.ErrProfileRequired):
		c.JSON(http.StatusForbidden, gin.H{"error": apperr.ErrProfileRequired.Error()})
	case errors.Is(err, apperr.ErrAlreadyApplied):
		c.JSON(http.StatusConflict, gin.H{"error": apperr.ErrAlreadyApplied.Error()})
	case errors.Is(err, apperr.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": apperr.ErrInvalidCredentials.Error()})
	case errors.Is(err, apperr.ErrEmailTaken):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": gin.H{"email": apperr.ErrEmailTaken.Error()}})
	case errors.Is(err, apperr.ErrRegistrationTaken):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": gin.H{"registration_number": apperr.ErrRegistrationTaken.Error()}})
	default:
		if ve, ok := apperr.AsValidation(err); ok {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": ve.Fields})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// bindingFail reports gin binding failures as field-keyed 422s so clients
// see which inputs to fix.
func bindingFail(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[fe.Field()] = validationMessage(fe)
		}
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": fields})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format: " + err.Error()})
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "too short or too small (min " + fe.Param() + ")"
	case "max":
		return "too long or too large (max " + fe.Param() + ")"
	case "len":
		return "must be exactly " + fe.Param() + " characters"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "url":
		return "must be a valid URL"
	case "datetime":
		return "must be a date in YYYY-MM-DD format"
	default:
		return "is invalid"
	}
}
