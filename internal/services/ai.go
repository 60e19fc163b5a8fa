package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/yungbote/quizdeck-backend/internal/apierr"
	"github.com/yungbote/quizdeck-backend/internal/clients/openai"
	"github.com/yungbote/quizdeck-backend/internal/logger"
)

const extractTopicsPrompt = `You are a topic extraction assistant. Please analyze the following text and extract 3-4 key topics that would be suitable for creating quiz questions.
Only extract topics that are relevant to the text content.

Output format:
{
    "topics": ["Topic 1", "Topic 2", "Topic 3", "Topic 4"]
}

If the following topics are relevant, include them in the output exactly as they are without any modification along with any new topics you find:

%s

Text content:
%s`

const generateQuizQuestionPrompt = `You are a quiz generator. Please generate a single question based on the following topic: %s.

OUTPUTFORMAT:

{
    "question": "What is the capital of France?",
    "options": ["Paris", "London", "Berlin", "Madrid"],
    "answer": "Paris"
}

Generate exactly one question, in the output format. No other text or explanation.

The quiz should be based only on the text content, and not on any other information.
Make sure you do not repeat the previous questions.

The previous questions are:

%s

The text content is:

%s.`

const generateDocumentNamePrompt = `You are a document naming assistant. Please analyze the following text and generate a concise title (maximum 60 characters) that captures the main topic or theme of the document.
Generate a clear, professional title that would help users identify this document. Return only the title, no quotes or additional text.

Text content:
%s...`

// documentNameInputLimit caps how much of the document the naming prompt
// carries.
const documentNameInputLimit = 1000

// QuizQuestion is one generated multiple-choice question. Topic echoes the
// topic the caller asked for.
type QuizQuestion struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   string   `json:"answer"`
	Topic    string   `json:"topic"`
}

// AIService wraps the completion client with the three prompt flows the app
// uses. A nil client means no credential was configured; every call then
// fails fast instead of dialing out.
type AIService struct {
	log    *logger.Logger
	client openai.Client
}

func NewAIService(log *logger.Logger, client openai.Client) *AIService {
	return &AIService{
		log:    log.With("service", "AIService"),
		client: client,
	}
}

func (s *AIService) complete(ctx context.Context, prompt string) (string, error) {
	if s.client == nil {
		return "", apierr.GatewayUnavailable("AI gateway is not configured")
	}
	reply, err := s.client.Complete(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("ai completion: %w", err)
	}
	if strings.TrimSpace(reply) == "" {
		return "", apierr.EmptyResponse("AI returned an empty response")
	}
	return reply, nil
}

// ExtractTopics asks the model for 3-4 quiz-worthy topics, carrying any
// already-known topics through unchanged.
func (s *AIService) ExtractTopics(ctx context.Context, textContent string, currentTopics []string) ([]string, error) {
	existing := "None"
	if len(currentTopics) > 0 {
		existing = strings.Join(currentTopics, ", ")
	}
	prompt := fmt.Sprintf(extractTopicsPrompt, existing, textContent)

	reply, err := s.complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Topics []string `json:"topics"`
	}
	if err := json.Unmarshal([]byte(stripCodeFences(reply)), &parsed); err != nil {
		s.log.Error("Failed to parse topics response", "error", err, "reply", reply)
		return nil, apierr.MalformedResponse(fmt.Errorf("parse topics response: %w", err))
	}
	if parsed.Topics == nil {
		parsed.Topics = []string{}
	}
	return parsed.Topics, nil
}

// GenerateQuizQuestion asks the model for one multiple-choice question on
// topic, steering it away from previousQuestions.
func (s *AIService) GenerateQuizQuestion(ctx context.Context, textContent, topic string, previousQuestions []string) (*QuizQuestion, error) {
	prompt := fmt.Sprintf(generateQuizQuestionPrompt, topic, strings.Join(previousQuestions, "\n"), textContent)

	reply, err := s.complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var question QuizQuestion
	if err := json.Unmarshal([]byte(stripCodeFences(reply)), &question); err != nil {
		s.log.Error("Failed to parse quiz question response", "error", err, "reply", reply)
		return nil, apierr.MalformedResponse(fmt.Errorf("parse quiz question response: %w", err))
	}
	question.Topic = topic
	return &question, nil
}

// GenerateDocumentName asks the model for a short title. The reply is plain
// text, not JSON; surrounding quotes are stripped.
func (s *AIService) GenerateDocumentName(ctx context.Context, textContent string) (string, error) {
	excerpt := textContent
	if len(excerpt) > documentNameInputLimit {
		excerpt = excerpt[:documentNameInputLimit]
	}
	prompt := fmt.Sprintf(generateDocumentNamePrompt, excerpt)

	reply, err := s.complete(ctx, prompt)
	if err != nil {
		return "", err
	}

	title := strings.TrimSpace(reply)
	title = strings.Trim(title, `"'`)
	return title, nil
}

// stripCodeFences removes the ```json fences models wrap JSON replies in.
func stripCodeFences(reply string) string {
	out := strings.TrimSpace(reply)
	out = strings.TrimPrefix(out, "```json")
	out = strings.TrimPrefix(out, "```")
	out = strings.TrimSuffix(out, "```")
	return strings.TrimSpace(out)
}
