package services

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validation = validator.New(validator.WithRequiredStructEnabled())

func init() {
	validation.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
}

type PostForm struct {
	Text       string `json:"text" form:"text" validate:"required,max=16384"`
	GroupID    *uint  `json:"group" form:"group"`
	ClearImage bool   `json:"image_clear" form:"image-clear"`
}

type CommentForm struct {
	Text string `json:"text" form:"text" validate:"required,max=4096"`
}

// ValidateNewPost checks a post submission before it is stored.
func ValidateNewPost(form *PostForm) error {
	form.Text = strings.TrimSpace(form.Text)
	return checkForm(form)
}

// ValidateEditPost applies the same rules as creation, clearing the image is only
// meaningful when editing.
func ValidateEditPost(form *PostForm) error {
	form.Text = strings.TrimSpace(form.Text)
	return checkForm(form)
}

func ValidateNewComment(form *CommentForm) error {
	form.Text = strings.TrimSpace(form.Text)
	return checkForm(form)
}

func checkForm(form any) error {
	err := validation.Struct(form)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	out := &ValidationError{Fields: make(map[string]string, len(fieldErrs))}
	for _, fe := range fieldErrs {
		out.Fields[fe.Field()] = describeFieldError(fe)
	}
	return out
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	default:
		return fmt.Sprintf("failed on the %s rule", fe.Tag())
	}
}
