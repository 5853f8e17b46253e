// Package actions holds the mutating operations behind the portal and admin
// forms. Every action validates its full payload first (no partial writes),
// opens one transaction when multiple tables are touched, and returns a
// uniform result the HTTP layer maps onto status codes. Actions never panic
// across their boundary.
package actions

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/SSRGNG/ssrg-sub002/internal/validation"
)

// Result codes, mapped to HTTP statuses by the handlers.
const (
	CodeValidation   = "validation_failed"
	CodeUnauthorized = "unauthorized"
	CodeConflict     = "conflict"
	CodeNotFound     = "not_found"
	CodeInternal     = "internal_error"
)

// Result is the uniform action outcome: {Success, Data} or {Error, Code}.
type Result struct {
	Success     bool                   `json:"success"`
	Data        any                    `json:"data,omitempty"`
	Error       string                 `json:"error,omitempty"`
	Code        string                 `json:"-"`
	FieldErrors validation.FieldErrors `json:"field_errors,omitempty"`
}

func ok(data any) Result { return Result{Success: true, Data: data} }

func fail(code, msg string) Result { return Result{Error: msg, Code: code} }

func invalid(fe validation.FieldErrors) Result {
	return Result{Error: "Validation failed", Code: CodeValidation, FieldErrors: fe}
}

// Actions bundles the dependencies every mutating operation needs.
type Actions struct {
	DB     *gorm.DB
	Logger *zap.Logger
}

func New(db *gorm.DB, logger *zap.Logger) *Actions {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Actions{DB: db, Logger: logger}
}

// internalError logs the real cause and returns the generic message; raw
// database errors are not safe to show users.
func (a *Actions) internalError(op string, err error) Result {
	a.Logger.Error("action failed", zap.String("op", op), zap.Error(err))
	return fail(CodeInternal, "Something went wrong")
}
