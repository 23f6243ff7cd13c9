// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/plant-pal/models"
)

const (
	FieldPrompt  = "prompt"
	FieldHistory = "history"

	maxPromptLength  = 4000
	maxHistoryLength = 100
)

// ChatValidator checks advisor chat requests.
type ChatValidator struct{}

func NewChatValidator() Validator {
	return &ChatValidator{}
}

func (v *ChatValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ChatRequest:
		return v.validateChatRequest(value, fields...)
	case *models.ChatRequest:
		return v.validateChatRequest(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *ChatValidator) validateChatRequest(request models.ChatRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPrompt, FieldHistory}
	}

	for _, f := range fields {
		switch f {
		case FieldPrompt:
			if strings.TrimSpace(request.Prompt) == "" {
				return ErrEmptyPrompt
			}
			if utf8.RuneCountInString(request.Prompt) > maxPromptLength {
				return ErrPromptTooLong
			}
		case FieldHistory:
			if len(request.History) > maxHistoryLength {
				return ErrChatHistoryTooLong
			}
			for i, turn := range request.History {
				if !turn.Role.Valid() {
					return fmt.Errorf("history entry %d: %w", i, ErrInvalidChatRole)
				}
				if strings.TrimSpace(turn.Content) == "" {
					return fmt.Errorf("history entry %d: %w", i, ErrEmptyChatTurn)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
