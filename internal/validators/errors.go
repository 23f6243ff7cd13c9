// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidEmail       = errors.New("please enter a valid email address")
	ErrInvalidFirstName   = errors.New("first name must be 2-12 letters")
	ErrInvalidLastName    = errors.New("last name must be 2-12 letters")
	ErrInvalidPassword    = errors.New("password must be between 6-30 characters")
	ErrMissingCredentials = errors.New("email and password are required")
	ErrEmptyPlantName     = errors.New("plant name is required")
	ErrInvalidPlantID     = errors.New("invalid plant id")
	ErrInvalidSpeciesID   = errors.New("invalid species id")
	ErrInvalidImageURL    = errors.New("image url must be an http or https address")
	ErrInvalidUserID      = errors.New("invalid user id")
	ErrEmptyPrompt        = errors.New("prompt is required")
	ErrInvalidChatRole    = errors.New("chat role must be user or assistant")
	ErrEmptyChatTurn      = errors.New("chat history entries must have content")
	ErrChatHistoryTooLong = errors.New("chat history is too long")
	ErrPromptTooLong      = errors.New("prompt is too long")
)
