package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// ITriage suggests a category and priority for a new support ticket so the
// admin queue is pre-sorted. Callers degrade to defaults on any error.
type ITriage interface {
	TriageTicket(ctx context.Context, subject string, body string) (*Triage, error)
}

type Triage struct {
	Category string `json:"category"`
	Priority string `json:"priority"`
}

var (
	Categories = []string{"billing", "prediction", "account", "general"}
	Priorities = []string{"low", "normal", "high"}
)

type triageService struct {
	client *openai.Client
	model  string
}

func New() ITriage {
	apiKey := os.Getenv("OPENAI_API_KEY")
	model := os.Getenv("OPENAI_CHAT_MODEL")
	if model == "" {
		model = openai.GPT4
	}

	return &triageService{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

const triagePrompt = `You are the support triage system of a dental imaging SaaS.
Classify the ticket into one category (billing, prediction, account, general)
and one priority (low, normal, high). Respond with ONLY a JSON object:
{"category": "...", "priority": "..."}`

func (t *triageService) TriageTicket(ctx context.Context, subject string, body string) (*Triage, error) {
	resp, err := t.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: t.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: triagePrompt},
			{Role: openai.ChatMessageRoleUser, Content: "Subject: " + subject + "\n\n" + body},
		},
	})
	if err != nil {
		return nil, err
	}

	if len(resp.Choices) == 0 {
		return nil, errors.New("no response from triage model")
	}

	return ParseTriageResponse(resp.Choices[0].Message.Content)
}

// ParseTriageResponse extracts the triage JSON from a model reply that may
// carry surrounding prose, and rejects values outside the known sets.
func ParseTriageResponse(response string) (*Triage, error) {
	jsonStart := strings.Index(response, "{")
	jsonEnd := strings.LastIndex(response, "}")

	if jsonStart == -1 || jsonEnd == -1 || jsonEnd <= jsonStart {
		return nil, errors.New("cannot find valid JSON in response")
	}

	var triage Triage
	if err := json.Unmarshal([]byte(response[jsonStart:jsonEnd+1]), &triage); err != nil {
		return nil, err
	}

	if !contains(Categories, triage.Category) {
		return nil, errors.New("unknown triage category: " + triage.Category)
	}
	if !contains(Priorities, triage.Priority) {
		return nil, errors.New("unknown triage priority: " + triage.Priority)
	}

	return &triage, nil
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
