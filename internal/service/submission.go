package service

import (
	"errors"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/0tsuro/SparkCar/internal/model"
)

const (
	MinNameLength    = 2
	MinMessageLength = 10
)

var (
	ErrMalformedInput   = errors.New("malformed contact submission")
	ErrValidationFailed = errors.New("contact submission failed validation")
)

// frenchPhone accepts +33, 0033 or 0 followed by a non-zero digit and four
// pairs of digits, optionally separated by spaces, dots or hyphens.
var frenchPhone = regexp.MustCompile(`^(?:(?:\+|00)33|0)\s*[1-9](?:[\s.-]*\d{2}){4}$`)

type ValidationCode string

const (
	InvalidName    ValidationCode = "invalid_name"
	InvalidPhone   ValidationCode = "invalid_phone"
	InvalidMessage ValidationCode = "invalid_message"
)

type FieldError struct {
	Field   string
	Code    ValidationCode
	Message string // user guidance shown next to the field
	Summary string // short form used as the response error
}

// ValidationErrors lists every invalid field in form order (name, phone, message).
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	codes := make([]string, len(v))
	for i, fe := range v {
		codes[i] = string(fe.Code)
	}
	return "validation failed: " + strings.Join(codes, ", ")
}

func (v ValidationErrors) Is(target error) bool {
	return target == ErrValidationFailed
}

// Fields maps field name to user guidance.
func (v ValidationErrors) Fields() map[string]string {
	out := make(map[string]string, len(v))
	for _, fe := range v {
		out[fe.Field] = fe.Message
	}
	return out
}

func (v ValidationErrors) Has(code ValidationCode) bool {
	for _, fe := range v {
		if fe.Code == code {
			return true
		}
	}
	return false
}

var (
	nameError = FieldError{
		Field:   "name",
		Code:    InvalidName,
		Message: "Le nom doit contenir au moins 2 caractères",
		Summary: "Nom invalide",
	}
	phoneError = FieldError{
		Field:   "phone",
		Code:    InvalidPhone,
		Message: "Veuillez entrer un numéro de téléphone valide",
		Summary: "Téléphone invalide",
	}
	messageError = FieldError{
		Field:   "message",
		Code:    InvalidMessage,
		Message: "Le message doit contenir au moins 10 caractères",
		Summary: "Message invalide",
	}
)

// ParseSubmission extracts the contact fields from an untyped body.
// Only a JSON object is accepted; missing or non-string fields become empty.
func ParseSubmission(raw any) (model.Submission, error) {
	fields, ok := raw.(map[string]any)
	if !ok {
		return model.Submission{}, ErrMalformedInput
	}
	return model.Submission{
		Name:    stringField(fields, "name"),
		Phone:   stringField(fields, "phone"),
		Message: stringField(fields, "message"),
	}, nil
}

func stringField(fields map[string]any, key string) string {
	s, _ := fields[key].(string)
	return strings.TrimSpace(s)
}

// ValidateSubmission checks every field and returns nil when all pass.
// Lengths count characters, not bytes.
func ValidateSubmission(s model.Submission) ValidationErrors {
	var errs ValidationErrors

	if utf8.RuneCountInString(s.Name) < MinNameLength {
		errs = append(errs, nameError)
	}
	if !ValidPhone(s.Phone) {
		errs = append(errs, phoneError)
	}
	if utf8.RuneCountInString(s.Message) < MinMessageLength {
		errs = append(errs, messageError)
	}

	return errs
}

// ValidPhone reports whether phone is a French number once whitespace is removed.
func ValidPhone(phone string) bool {
	compact := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, phone)
	return frenchPhone.MatchString(compact)
}
