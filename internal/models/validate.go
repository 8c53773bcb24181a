package models

import (
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// Validate checks the struct tags of v (a Recruitment or a Chat).
func Validate(v any) error {
	validateOnce.Do(func() {
		validate = validator.New()
	})
	return validate.Struct(v)
}
