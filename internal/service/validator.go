package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"inspoboard/internal/model"

	"github.com/go-playground/validator/v10"
)

const messageRules = "required,notblank,max=40"

// Validator checks payloads before anything is written. Every failure comes
// back as a *ValidationError.
type Validator struct {
	v *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// Registration only fails for an empty tag or nil func.
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return &Validator{v: v}
}

// ValidateCardMessage applies the message rules used on both create and update.
func (val *Validator) ValidateCardMessage(text string) error {
	return val.field("message", text, messageRules)
}

// ValidateBoardFields requires a non-blank title and owner.
func (val *Validator) ValidateBoardFields(title, owner string) error {
	return val.ValidateBoardCreate(BoardCreate{Title: title, Owner: owner})
}

func (val *Validator) ValidateBoardCreate(p BoardCreate) error {
	return translate(val.v.Struct(p))
}

// ValidateBoardUpdate checks only the supplied fields.
func (val *Validator) ValidateBoardUpdate(p BoardUpdate) error {
	if err := val.optional("title", p.Title, "required,notblank"); err != nil {
		return err
	}
	return val.optional("owner", p.Owner, "required,notblank")
}

func (val *Validator) ValidateCardCreate(p CardCreate) error {
	return translate(val.v.Struct(p))
}

func (val *Validator) ValidateCardUpdate(p CardUpdate) error {
	return val.optional("message", p.Message, messageRules)
}

func (val *Validator) ValidateReassign(p ReassignRequest) error {
	return translate(val.v.Struct(p))
}

func (val *Validator) optional(name string, o Optional[string], rules string) error {
	if !o.Set {
		return nil
	}
	if o.Null {
		return &ValidationError{Field: name, Reason: name + " must not be null"}
	}
	return val.field(name, o.Value, rules)
}

func (val *Validator) field(name, value, rules string) error {
	err := val.v.Var(value, rules)
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return &ValidationError{Field: name, Reason: reason(name, verrs[0])}
	}
	return err
}

func translate(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return &ValidationError{Field: fe.Field(), Reason: reason(fe.Field(), fe)}
	}
	return &ValidationError{Reason: err.Error()}
}

func reason(name string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return name + " is required"
	case "max":
		if name == "message" {
			return fmt.Sprintf("message exceeds %d characters", model.MaxMessageLength)
		}
		return fmt.Sprintf("%s exceeds %s characters", name, fe.Param())
	case "min":
		if fe.Kind() == reflect.Slice {
			return name + " must not be empty"
		}
		return fmt.Sprintf("%s must be at least %s", name, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", name)
	}
}
