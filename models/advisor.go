// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ChatRole is the author of a chat turn.
type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

// Valid reports whether r is one of the roles a client may send.
func (r ChatRole) Valid() bool {
	return r == ChatRoleUser || r == ChatRoleAssistant
}

// ChatTurn is one message of a conversation. Conversations are not stored
// server side; the client sends the full history with every request.
type ChatTurn struct {
	Role    ChatRole `json:"role"`
	Content string   `json:"content"`
}

// ChatRequest is the body of POST /api/ai/chat.
type ChatRequest struct {
	History []ChatTurn `json:"history"`
	Prompt  string     `json:"prompt"`
}

// Insights is the sustainability summary derived from a plant collection.
type Insights struct {
	CO2KgPerYear     float64 `json:"co2_kg_per_year"`
	Summary          string  `json:"summary"`
	SuggestedSpecies string  `json:"suggested_species"`
	SuggestionReason string  `json:"suggestion_reason"`
}

// ModelRequest is a single call to the language model.
type ModelRequest struct {
	// Instructions are system-level texts, applied in order.
	Instructions []string

	// History is the prior conversation.
	History []ChatTurn

	// Prompt is the new user message.
	Prompt string

	// JSON asks the model for an application/json reply.
	JSON bool
}
