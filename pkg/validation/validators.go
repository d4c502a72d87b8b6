package validation

import (
	"github.com/go-playground/validator/v10"
)

// New returns a validator with the site's custom tags registered.
func New(interests []string) (*validator.Validate, error) {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := RegisterValidators(v, interests); err != nil {
		return nil, err
	}
	return v, nil
}

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate, interests []string) error {
	return v.RegisterValidation("interest", OneOfSet(interests))
}

// OneOfSet accepts a string field only if it equals one of allowed.
// Unlike the builtin oneof tag the set is not baked into a struct tag.
func OneOfSet(allowed []string) validator.Func {
	set := make(map[string]struct{}, len(allowed))
	for _, a := range allowed {
		set[a] = struct{}{}
	}
	return func(fl validator.FieldLevel) bool {
		_, ok := set[fl.Field().String()]
		return ok
	}
}
