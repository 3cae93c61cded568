package apperror

import (
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var initOnce sync.Once

// Init points gin's validator at json tag names so MapValidationError can
// report "basic_salary" rather than "BasicSalary". Safe to call repeatedly.
func Init() {
	initOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(jsonFieldName)
	})
}

func jsonFieldName(fld reflect.StructField) string {
	for _, key := range []string{"json", "form"} {
		tag, ok := fld.Tag.Lookup(key)
		if !ok {
			continue
		}
		name, _, _ := strings.Cut(tag, ",")
		switch name {
		case "-":
			return ""
		case "":
			continue
		}
		return name
	}
	return fld.Name
}
