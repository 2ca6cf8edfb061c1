// Package adapters provides implementations for external service integrations.
package adapters

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/transaction-categorizer/backend/internal/application/adapter"
	"github.com/transaction-categorizer/backend/internal/domain/entity"
)

// completionModel abstracts the single text-completion call the classifier
// issues, so the parsing and caching logic is testable without the network.
type completionModel interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// GeminiClassifier resolves transaction descriptions to categories using
// Google Gemini, backed by the persistent category mapping cache.
type GeminiClassifier struct {
	mappingRepo adapter.CategoryMappingRepository
	model       completionModel
}

// NewGeminiClassifier creates a new Gemini-backed classifier instance.
func NewGeminiClassifier(apiKey string, modelName string, mappingRepo adapter.CategoryMappingRepository) *GeminiClassifier {
	return &GeminiClassifier{
		mappingRepo: mappingRepo,
		model: &geminiModel{
			apiKey:    apiKey,
			modelName: modelName,
		},
	}
}

// Categorize resolves a category for every input description.
//
// Descriptions already present in the mapping cache are taken verbatim.
// The remainder is sent to Gemini in a single batched request; parsed
// results are written back to the cache best-effort. If the external call
// fails or returns nothing usable, every uncached description falls back
// to Miscellaneous and nothing is cached. The returned map always covers
// the full input.
func (c *GeminiClassifier) Categorize(ctx context.Context, descriptions []string) map[string]string {
	result := make(map[string]string, len(descriptions))

	cached, err := c.mappingRepo.FindAllByDescriptions(ctx, descriptions)
	if err != nil {
		// A cache outage must not block classification.
		slog.Warn("Category cache lookup failed, classifying all descriptions",
			"error", err,
		)
		cached = nil
	}
	for _, mapping := range cached {
		result[mapping.Description] = mapping.Category
	}

	uncached := make([]string, 0, len(descriptions))
	for _, description := range descriptions {
		if _, ok := result[description]; !ok {
			uncached = append(uncached, description)
		}
	}

	// Nothing left to resolve: skip the external call entirely.
	if len(uncached) == 0 {
		return result
	}

	content, err := c.model.Complete(ctx, buildPrompt(uncached))
	if err != nil || strings.TrimSpace(content) == "" {
		slog.Warn("Classifier call failed, defaulting to Miscellaneous",
			"descriptions", len(uncached),
			"error", err,
		)
		for _, description := range uncached {
			result[description] = entity.CategoryMiscellaneous
		}
		return result
	}

	requested := make(map[string]struct{}, len(uncached))
	for _, description := range uncached {
		requested[description] = struct{}{}
	}

	for _, mapping := range parseCategoryLines(content) {
		if _, ok := requested[mapping.Description]; !ok {
			slog.Warn("Classifier returned an unrequested description, dropping it",
				"description", mapping.Description,
			)
			continue
		}
		result[mapping.Description] = mapping.Category
		c.saveMapping(mapping)
	}

	// Descriptions the response skipped still need a category.
	for _, description := range uncached {
		if _, ok := result[description]; !ok {
			result[description] = entity.CategoryMiscellaneous
		}
	}

	return result
}

// saveMapping persists a resolved mapping without blocking or failing the
// categorize call. Write failures are logged and otherwise ignored.
func (c *GeminiClassifier) saveMapping(mapping *entity.CategoryMapping) {
	go func() {
		if err := c.mappingRepo.Save(context.Background(), mapping); err != nil {
			slog.Warn("Failed to cache category mapping",
				"description", mapping.Description,
				"category", mapping.Category,
				"error", err,
			)
		}
	}()
}

// buildPrompt creates the batched classification prompt.
func buildPrompt(descriptions []string) string {
	var sb strings.Builder

	sb.WriteString("You are tasked with categorizing the following transaction descriptions.\n")
	sb.WriteString("For each description, provide the category from the following list:\n")
	sb.WriteString(strings.Join(entity.Categories, ", "))
	sb.WriteString(".\n\nDescriptions:\n")
	sb.WriteString(strings.Join(descriptions, "\n"))
	sb.WriteString("\n\nReturn the response in the format:\n")
	sb.WriteString("\"description: category\" for each description, one per line.\n")
	sb.WriteString("Do not add any other text and do not wrap the response in Markdown.\n")

	return sb.String()
}

// parseCategoryLines parses the free-text model response into mappings.
// Each line splits on the first colon; both sides are trimmed and a blank
// category becomes Miscellaneous.
func parseCategoryLines(content string) []*entity.CategoryMapping {
	lines := strings.Split(strings.TrimSpace(content), "\n")
	mappings := make([]*entity.CategoryMapping, 0, len(lines))

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		description := line
		category := ""
		if idx := strings.Index(line, ":"); idx >= 0 {
			description = strings.TrimSpace(line[:idx])
			category = strings.TrimSpace(line[idx+1:])
		}
		if category == "" {
			category = entity.CategoryMiscellaneous
		}

		mappings = append(mappings, &entity.CategoryMapping{
			Description: description,
			Category:    category,
		})
	}

	return mappings
}

// geminiModel issues a single completion request against the Gemini API.
type geminiModel struct {
	apiKey    string
	modelName string
}

// Complete sends the prompt and returns the raw text of the first candidate.
func (m *geminiModel) Complete(ctx context.Context, prompt string) (string, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(m.apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(m.modelName)
	model.SetTemperature(0)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty response from gemini")
	}

	var textContent string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			textContent = string(text)
			break
		}
	}
	if textContent == "" {
		return "", fmt.Errorf("no text content in response")
	}

	// Strip markdown code fences the model sometimes adds anyway.
	textContent = strings.TrimSpace(textContent)
	textContent = strings.TrimPrefix(textContent, "```")
	textContent = strings.TrimSuffix(textContent, "```")

	return strings.TrimSpace(textContent), nil
}
