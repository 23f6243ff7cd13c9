// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/MKhiriev/plant-pal/internal/config"
	"github.com/MKhiriev/plant-pal/internal/logger"
	"github.com/MKhiriev/plant-pal/internal/metrics"
	"github.com/MKhiriev/plant-pal/models"
)

const (
	geminiService = "gemini"
	geminiRole    = "model"
	jsonMIMEType  = "application/json"
)

// GeminiModel is the [LanguageModel] backed by the Gemini API.
type GeminiModel struct {
	client    *genai.Client
	modelName string
	timeout   time.Duration
	recorder  metrics.Recorder
	logger    *logger.Logger
}

// NewGeminiModel creates the Gemini client. Without cfg.APIKey no client is
// created and Generate returns [ErrMissingCredential].
func NewGeminiModel(ctx context.Context, cfg config.Gemini, recorder metrics.Recorder, log *logger.Logger) (*GeminiModel, error) {
	if recorder == nil {
		recorder = metrics.Nop{}
	}
	g := &GeminiModel{
		modelName: cfg.Model,
		timeout:   cfg.Timeout,
		recorder:  recorder,
		logger:    log,
	}

	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		log.Warn().Str("func", "NewGeminiModel").Msg("gemini API key is not set, advisor endpoints are disabled")
		return g, nil
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("error creating gemini client: %w", err)
	}
	g.client = client

	return g, nil
}

// Configured implements [LanguageModel].
func (g *GeminiModel) Configured() bool {
	return g.client != nil
}

// Generate implements [LanguageModel]. Instructions become the system
// instruction, history turns are replayed as the chat history and the prompt
// is sent as the new user message.
func (g *GeminiModel) Generate(ctx context.Context, req models.ModelRequest) (text string, err error) {
	if !g.Configured() {
		return "", ErrMissingCredential
	}

	start := time.Now()
	defer func() {
		g.recorder.ObserveUpstream(geminiService, outcome(err), time.Since(start))
	}()

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	model := g.client.GenerativeModel(g.modelName)
	if instruction := systemInstruction(req.Instructions); instruction != nil {
		model.SystemInstruction = instruction
	}
	if req.JSON {
		model.ResponseMIMEType = jsonMIMEType
	}

	session := model.StartChat()
	session.History = chatHistory(req.History)

	resp, err := session.SendMessage(ctx, genai.Text(req.Prompt))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*GeminiModel.Generate").Msg("language model request failed")
		return "", fmt.Errorf("%w: %w", ErrUpstream, err)
	}

	return firstText(resp)
}

// Close releases the underlying client.
func (g *GeminiModel) Close() error {
	if g.client == nil {
		return nil
	}
	return g.client.Close()
}

func systemInstruction(instructions []string) *genai.Content {
	parts := make([]genai.Part, 0, len(instructions))
	for _, text := range instructions {
		if strings.TrimSpace(text) != "" {
			parts = append(parts, genai.Text(text))
		}
	}
	if len(parts) == 0 {
		return nil
	}
	return &genai.Content{Parts: parts}
}

// chatHistory maps chat turns to model contents. Blank turns are dropped,
// the API rejects empty parts.
func chatHistory(turns []models.ChatTurn) []*genai.Content {
	history := make([]*genai.Content, 0, len(turns))
	for _, turn := range turns {
		if strings.TrimSpace(turn.Content) == "" {
			continue
		}
		role := string(models.ChatRoleUser)
		if turn.Role == models.ChatRoleAssistant {
			role = geminiRole
		}
		history = append(history, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(turn.Content)},
		})
	}
	return history
}

func firstText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", ErrEmptyModelResponse
	}
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if text, ok := part.(genai.Text); ok && strings.TrimSpace(string(text)) != "" {
				return strings.TrimSpace(string(text)), nil
			}
		}
	}
	return "", ErrEmptyModelResponse
}
