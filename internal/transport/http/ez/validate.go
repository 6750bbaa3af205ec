package ez

import (
	"regexp"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	phoneRe      = regexp.MustCompile(`^\+?[0-9 ()\-]{0,20}$`)
	registerOnce sync.Once
)

// RegisterValidators adds the custom binding rules to gin's validator.
func RegisterValidators() {
	registerOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			_ = v.RegisterValidation("phone", validPhone)
		}
	})
}

func validPhone(fl validator.FieldLevel) bool {
	return phoneRe.MatchString(fl.Field().String())
}
