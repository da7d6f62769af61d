package intelligence

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/tempo/internal/llm"
)

// SubtaskDraft is one proposed subtask from a decomposition.
type SubtaskDraft struct {
	Title        string `json:"title"`
	EstimatedMin int    `json:"estimated_min"`
}

// Decomposition is the validated result of breaking a task down.
type Decomposition struct {
	Subtasks []SubtaskDraft `json:"subtasks"`
}

// TotalMinutes sums the estimates of all subtasks.
func (d Decomposition) TotalMinutes() int {
	total := 0
	for _, s := range d.Subtasks {
		total += s.EstimatedMin
	}
	return total
}

const (
	maxSubtasks       = 12
	maxSubtaskMinutes = 480
)

// DecomposeService breaks a task into schedulable subtasks using an LLM.
type DecomposeService interface {
	Decompose(ctx context.Context, title, notes string) (*Decomposition, error)
}

type decomposeService struct {
	client llm.Client
}

// NewDecomposeService creates a DecomposeService backed by an LLM client.
func NewDecomposeService(client llm.Client) DecomposeService {
	return &decomposeService{client: client}
}

func (s *decomposeService) Decompose(ctx context.Context, title, notes string) (*Decomposition, error) {
	var prompt strings.Builder
	prompt.WriteString("Task: ")
	prompt.WriteString(title)
	if strings.TrimSpace(notes) != "" {
		prompt.WriteString("\nContext: ")
		prompt.WriteString(notes)
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskDecompose,
		SystemPrompt: decomposeSystemPrompt,
		UserPrompt:   prompt.String(),
	})
	if err != nil {
		return nil, fmt.Errorf("llm decompose failed: %w", err)
	}

	result, err := llm.ExtractJSON[Decomposition](resp.Text, validateDecomposition)
	if err != nil {
		return nil, fmt.Errorf("failed to extract subtasks: %w", err)
	}
	return &result, nil
}

func validateDecomposition(d Decomposition) error {
	if len(d.Subtasks) == 0 {
		return fmt.Errorf("no subtasks returned")
	}
	if len(d.Subtasks) > maxSubtasks {
		return fmt.Errorf("too many subtasks: %d", len(d.Subtasks))
	}
	for i, s := range d.Subtasks {
		if strings.TrimSpace(s.Title) == "" {
			return fmt.Errorf("subtask %d has an empty title", i+1)
		}
		if s.EstimatedMin <= 0 || s.EstimatedMin > maxSubtaskMinutes {
			return fmt.Errorf("subtask %q has estimate %d min, want 1-%d",
				s.Title, s.EstimatedMin, maxSubtaskMinutes)
		}
	}
	return nil
}
