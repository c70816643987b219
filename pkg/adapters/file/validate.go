package file

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report the keys users actually write, not Go field names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}

func toAggregate(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	aggr := &AggregateError{}
	for _, fe := range verrs {
		aggr.Errors = append(aggr.Errors, &FieldError{
			Key:    fieldKey(fe.Namespace()),
			Reason: reasonFor(fe),
		})
	}
	return aggr
}

// fieldKey drops the root struct name: "fileDefinition.states[0].name" -> "states[0].name".
func fieldKey(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func reasonFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "len":
		return "must be exactly " + fe.Param() + " character"
	default:
		return "failed " + fe.Tag() + " check"
	}
}
