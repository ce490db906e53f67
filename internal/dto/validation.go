package dto

import (
	"github.com/campus-reslife/reslife_backend/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidations wires domain enum checks into gin's binding
// validator so malformed enum values are rejected at bind time.
func RegisterCustomValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("parceltype", func(fl validator.FieldLevel) bool {
		return domain.ParcelType(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("shippingtype", func(fl validator.FieldLevel) bool {
		return domain.ShippingType(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("custodystatus", func(fl validator.FieldLevel) bool {
		return domain.PackageStatus(fl.Field().String()).IsValid()
	})
}
