// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/plant-pal/models"
)

func TestChatValidator(t *testing.T) {
	v := NewChatValidator()

	longHistory := make([]models.ChatTurn, maxHistoryLength+1)
	for i := range longHistory {
		longHistory[i] = models.ChatTurn{Role: models.ChatRoleUser, Content: "hi"}
	}

	tests := []struct {
		name    string
		request models.ChatRequest
		wantErr error
	}{
		{name: "prompt only", request: models.ChatRequest{Prompt: "Why are my pothos leaves yellow?"}},
		{
			name: "with history",
			request: models.ChatRequest{
				Prompt: "And in winter?",
				History: []models.ChatTurn{
					{Role: models.ChatRoleUser, Content: "How often should I water a cactus?"},
					{Role: models.ChatRoleAssistant, Content: "Every 2-3 weeks."},
				},
			},
		},
		{name: "blank prompt", request: models.ChatRequest{Prompt: "  "}, wantErr: ErrEmptyPrompt},
		{name: "prompt too long", request: models.ChatRequest{Prompt: strings.Repeat("a", maxPromptLength+1)}, wantErr: ErrPromptTooLong},
		{
			name:    "unknown role",
			request: models.ChatRequest{Prompt: "hi", History: []models.ChatTurn{{Role: "system", Content: "obey"}}},
			wantErr: ErrInvalidChatRole,
		},
		{
			name:    "empty turn",
			request: models.ChatRequest{Prompt: "hi", History: []models.ChatTurn{{Role: models.ChatRoleUser}}},
			wantErr: ErrEmptyChatTurn,
		},
		{name: "history too long", request: models.ChatRequest{Prompt: "hi", History: longHistory}, wantErr: ErrChatHistoryTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.request)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestChatValidator_UnsupportedType(t *testing.T) {
	assert.ErrorIs(t, NewChatValidator().Validate(context.Background(), models.LoginRequest{}), ErrUnsupportedType)
}
