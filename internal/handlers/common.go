package handlers

import (
	"net/http"

	"github.com/SSRGNG/ssrg-sub002/internal/actions"
	"github.com/SSRGNG/ssrg-sub002/internal/models"
	"github.com/SSRGNG/ssrg-sub002/internal/utils"
)

// WriteActionResult maps the uniform action result onto HTTP: the given
// success status for {success, data}, and the code-appropriate status with
// the error envelope otherwise.
func WriteActionResult(w http.ResponseWriter, res actions.Result, successStatus int) {
	if res.Success {
		utils.JSON(w, successStatus, res)
		return
	}

	status := http.StatusInternalServerError
	switch res.Code {
	case actions.CodeValidation:
		status = http.StatusUnprocessableEntity
	case actions.CodeUnauthorized:
		status = http.StatusForbidden
	case actions.CodeConflict:
		status = http.StatusConflict
	case actions.CodeNotFound:
		status = http.StatusNotFound
	}

	utils.JSON(w, status, models.ErrorResponse{
		Code:    res.Code,
		Message: res.Error,
		Details: res.FieldErrors.Details(),
	})
}
