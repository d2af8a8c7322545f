// Package narrator turns a completed assessment into a short personalized
// profile message via the configured LLM provider. One call per completed
// assessment; callers treat failure as "no narrative" and show the static
// fallback instead.
package narrator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"text/template"

	"github.com/abhisek/cognitrain/internal/assessment"
	"github.com/abhisek/cognitrain/internal/llm"
)

// Fallback is the display-only sentence shown when the narrator fails or
// returns nothing. It is never persisted as a narrative.
const Fallback = "Based on your assessment, you're on a great path to cognitive fitness! Continue to challenge yourself with varied exercises to maintain and improve your brain health."

// Config holds generation parameters.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   256,
		Temperature: 0.7,
	}
}

// Service generates profile narratives.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// New creates a narrator backed by the given provider.
func New(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// narrativeOutput is the raw LLM response.
type narrativeOutput struct {
	Message string `json:"message"`
}

// Narrate requests one profile message for the score set.
func (s *Service) Narrate(ctx context.Context, scores assessment.ScoreSet) (string, error) {
	ctx = llm.WithPurpose(ctx, "profile-narrative")

	userMsg, err := buildProfileMessage(scores)
	if err != nil {
		return "", fmt.Errorf("build profile prompt: %w", err)
	}

	resp, err := s.provider.Generate(ctx, llm.Request{
		System: profileSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      ProfileSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("generate profile narrative: %w", err)
	}

	var raw narrativeOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return "", fmt.Errorf("parse narrative response: %w", err)
	}

	msg := strings.TrimSpace(raw.Message)
	if msg == "" {
		return "", &llm.ErrInvalidResponse{Content: resp.Content, Err: fmt.Errorf("empty narrative message")}
	}
	return msg, nil
}

const profileSystemPrompt = `You are a cognitive health expert analyzing brain assessment results for an adult aged 40-75.
Provide a professional, warm, and encouraging personalized message (2-3 sentences max) that highlights their strongest and weakest cognitive areas, and gently suggests what this means for their brain health journey.
Avoid jargon and use a science-backed, supportive tone, celebrating progress without judgment.
The scores are percentages (0-100); for speed, reaction time was converted so that higher is better.`

var profileUserTemplate = template.Must(template.New("profile").Parse(`Assessment Scores:
- Memory (Numbers): {{printf "%.0f" .Scores.MemoryNumbers}}%
- Memory (Words): {{printf "%.0f" .Scores.MemoryWords}}%
- Speed: {{printf "%.0f" .Scores.Speed}}%
- Logic: {{printf "%.0f" .Scores.Logic}}%
- Working Memory: {{printf "%.0f" .Scores.WorkingMemory}}%

Their strongest area appears to be {{.Strongest}} and their area for growth is {{.Weakest}}.

Please provide the personalized message now.`))

type scoredArea struct {
	Name  string
	Score float64
}

func buildProfileMessage(scores assessment.ScoreSet) (string, error) {
	areas := []scoredArea{
		{"Memory (Numbers)", scores.MemoryNumbers},
		{"Memory (Words)", scores.MemoryWords},
		{"Speed", scores.Speed},
		{"Logic", scores.Logic},
		{"Working Memory", scores.WorkingMemory},
	}
	sort.SliceStable(areas, func(i, j int) bool {
		return areas[i].Score > areas[j].Score
	})

	var buf bytes.Buffer
	err := profileUserTemplate.Execute(&buf, struct {
		Scores    assessment.ScoreSet
		Strongest string
		Weakest   string
	}{scores, areas[0].Name, areas[len(areas)-1].Name})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
