// Package validate implements the request validation rules shared by the HTTP
// handlers: strict field allow-lists, struct-level required checks with
// readable messages, and store-identifier well-formedness.
package validate

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	once       sync.Once
	validate   *validator.Validate
	translator ut.Translator
)

func lazyinit() {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		// Report fields by their json names so messages match the wire format
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		enLocale := en.New()
		uni := ut.New(enLocale, enLocale)
		translator, _ = uni.GetTranslator("en")

		en_translations.RegisterDefaultTranslations(validate, translator)

		validate.RegisterTranslation("required", translator, func(ut ut.Translator) error {
			return ut.Add("required", "{0} is required", true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T("required", fe.Field())
			return t
		})
	})
}

// Struct runs tag-based validation on v and returns the first failure as a
// translated, human-readable error.
func Struct(v any) error {
	lazyinit()

	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		return errors.New(validationErrs[0].Translate(translator))
	}

	return err
}

// Fields rejects any payload property outside the allowed set. Each offending
// property is reported as "property <name> should not exist"; multiple
// offenders are joined into a single message.
func Fields(payload []byte, allowed ...string) error {
	allowedSet := make(map[string]struct{}, len(allowed))
	for _, name := range allowed {
		allowedSet[name] = struct{}{}
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(payload, &raw); err != nil {
		return errors.New("request body must be a JSON object")
	}

	var unknown []string
	for name := range raw {
		if _, ok := allowedSet[name]; !ok {
			unknown = append(unknown, name)
		}
	}

	if len(unknown) == 0 {
		return nil
	}

	sort.Strings(unknown)

	messages := make([]string, 0, len(unknown))
	for _, name := range unknown {
		messages = append(messages, fmt.Sprintf("property %s should not exist", name))
	}

	return errors.New(strings.Join(messages, "; "))
}

// ObjectID reports whether id parses as a Mongo ObjectID (24-char hex).
func ObjectID(id string) bool {
	_, err := primitive.ObjectIDFromHex(id)
	return err == nil
}
