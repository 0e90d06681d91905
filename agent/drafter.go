// Package agent drafts spoken-style briefings from analysis reports using
// the Gemini API.
package agent

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

const systemInstruction = `You are a personal finance narrator. You receive
markdown reports about a user's cash balance, idle funds and ranked
investment suggestions. Turn them into a short, friendly briefing that could
be read out loud in under a minute. Mention the idle amount, the top two or
three suggestions with their risk level, and every risk warning. Never invent
numbers that are not in the report. This is not financial advice and the
briefing must say so once at the end.`

// ScriptDrafter holds a chat session that turns markdown reports into
// briefing scripts.
type ScriptDrafter struct {
	ModelName string
	Config    *genai.GenerateContentConfig
	chat      *genai.Chat
}

// NewScriptDrafter returns a drafter on the default model.
func NewScriptDrafter() *ScriptDrafter {
	return &ScriptDrafter{
		ModelName: DefaultModel,
		Config: &genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{
				Parts: []*genai.Part{{Text: systemInstruction}},
			},
		},
	}
}

// Start creates the chat session.
func (d *ScriptDrafter) Start(ctx context.Context, client *genai.Client) error {
	chat, err := client.Chats.Create(ctx, d.ModelName, d.Config, nil)
	if err != nil {
		return err
	}
	d.chat = chat
	return nil
}

// Draft sends the markdown reports to the model and returns the briefing
// script.
func (d *ScriptDrafter) Draft(ctx context.Context, reports ...string) (string, error) {
	if d.chat == nil {
		return "", fmt.Errorf("drafter not started")
	}
	parts := make([]*genai.Part, 0, len(reports))
	for _, r := range reports {
		parts = append(parts, &genai.Part{Text: r})
	}
	resp, err := d.chat.Send(ctx, parts...)
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from model %s", d.ModelName)
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}
