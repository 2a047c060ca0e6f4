package handlers

import (
	"fmt"

	"github.com/SscSPs/workorder_tracker/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the domain-specific binding tags (workstatus, progressstep,
// userrole) to gin's validator. It is safe to call more than once.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}
	if err := v.RegisterValidation("workstatus", func(fl validator.FieldLevel) bool {
		return domain.WorkItemStatus(fl.Field().String()).IsValid()
	}); err != nil {
		return err
	}
	if err := v.RegisterValidation("progressstep", func(fl validator.FieldLevel) bool {
		return domain.ValidProgressStep(int(fl.Field().Int()))
	}); err != nil {
		return err
	}
	return v.RegisterValidation("userrole", func(fl validator.FieldLevel) bool {
		return domain.Role(fl.Field().String()).IsValid()
	})
}
