// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/plant-pal/models"
)

const (
	FieldEmail     = "email"
	FieldFirstName = "first_name"
	FieldLastName  = "last_name"
	FieldPassword  = "password"

	minPasswordLength = 6
	maxPasswordLength = 30
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	nameRegex  = regexp.MustCompile(`^[a-zA-Z]{2,12}$`)
)

// UserValidator checks registration and login requests.
type UserValidator struct{}

func NewUserValidator() Validator {
	return &UserValidator{}
}

func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegisterRequest(value, fields...)
	case *models.RegisterRequest:
		return v.validateRegisterRequest(*value, fields...)

	case models.LoginRequest:
		return v.validateLoginRequest(value)
	case *models.LoginRequest:
		return v.validateLoginRequest(*value)

	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateRegisterRequest(request models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldFirstName, FieldLastName, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if !emailRegex.MatchString(strings.TrimSpace(request.Email)) {
				return ErrInvalidEmail
			}
		case FieldFirstName:
			if !nameRegex.MatchString(strings.TrimSpace(request.FirstName)) {
				return ErrInvalidFirstName
			}
		case FieldLastName:
			if !nameRegex.MatchString(strings.TrimSpace(request.LastName)) {
				return ErrInvalidLastName
			}
		case FieldPassword:
			if !validPassword(request.Password) {
				return ErrInvalidPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validPassword: at least 6 characters ignoring surrounding blanks, at most
// 30 characters in total.
func validPassword(password string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(password)) >= minPasswordLength &&
		utf8.RuneCountInString(password) <= maxPasswordLength
}

func (v *UserValidator) validateLoginRequest(request models.LoginRequest) error {
	if strings.TrimSpace(request.Email) == "" || request.Password == "" {
		return ErrMissingCredentials
	}
	return nil
}
