// Package gemini answers natural language questions about extracted pages
// using the Gemini API, and counts tokens with the local Gemini tokenizer.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/pagemark/pagemark"
)

// Ensure Asker implements pagemark.Asker at compile time.
var _ pagemark.Asker = (*Asker)(nil)

// Asker implements pagemark.Asker using Google Gemini.
type Asker struct {
	client *genai.Client
	model  string
}

// NewAsker creates a new Asker using the given model.
func NewAsker(client *genai.Client, model string) *Asker {
	return &Asker{client: client, model: model}
}

// Ask answers a natural language question using the extracted markdown as
// the only context.
func (a *Asker) Ask(ctx context.Context, document, question string) (string, error) {
	if document == "" {
		return "", pagemark.Errorf(pagemark.EINVALID, "document required")
	}
	if question == "" {
		return "", pagemark.Errorf(pagemark.EINVALID, "question required")
	}

	prompt := BuildUserPrompt(document, question)
	config := BuildConfig()

	result, err := a.client.Models.GenerateContent(ctx, a.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", pagemark.Errorf(pagemark.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.4)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are a helpful assistant answering questions about the content of a web page. Answer based only on the page content provided. If the answer is not in the page, say so.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildUserPrompt builds the user prompt containing the page and question.
func BuildUserPrompt(document, question string) string {
	var sb strings.Builder
	sb.WriteString("<page>\n")
	sb.WriteString(document)
	sb.WriteString("\n</page>\n\n")
	fmt.Fprintf(&sb, "Question: %s", question)
	return sb.String()
}
