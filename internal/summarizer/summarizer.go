package summarizer

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/nmvinh214/batchscribe/internal/report"
)

const summaryPrompt = `You are an expert at analysing audio transcriptions. The text below is the
transcript of one or more recordings, stitched together from fixed-length
chunks in playback order. Write a DETAILED markdown summary.

Requirements:
- Start with a one-sentence title describing the overall topic
- List ALL main points in the order they appear
- Expand each point with the relevant details, caveats and numbers
- Keep domain terminology as spoken
- Use markdown formatting: headings, bullet points, bold for key terms
- End with an "Important notes" section if anything needs emphasis

Transcript:
---
%s
---`

// Summarize joins all successful transcripts, asks Gemini for a summary,
// and writes a markdown file to destPath.
func (s *implSummarizer) Summarize(ctx context.Context, results []report.Result, destPath string) error {
	if len(s.apiKeys) == 0 {
		return fmt.Errorf("no Gemini API keys configured")
	}

	transcript := joinTranscripts(results)
	if transcript == "" {
		s.logger.Info(ctx, "No transcript text to summarize")
		return nil
	}

	s.logger.Info(ctx, "Summarizing %d transcript chunk(s)...", len(results))

	summary, err := s.callGemini(ctx, transcript)
	if err != nil {
		return fmt.Errorf("summarize transcript: %w", err)
	}

	md := fmt.Sprintf("# Transcription Summary\n\n_%s_\n\n%s\n",
		time.Now().Format("2006-01-02 15:04"),
		strings.TrimSpace(summary),
	)

	if err := os.WriteFile(destPath, []byte(md), 0644); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}

	s.logger.Info(ctx, "Summary saved to %s", destPath)
	return nil
}

// joinTranscripts concatenates the text of successful chunks in
// submission order. Failed chunks contribute nothing.
func joinTranscripts(results []report.Result) string {
	var parts []string
	for _, r := range results {
		if text := r.Text(); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, "\n")
}

// callGemini sends the transcript to Gemini and returns the summary text.
// Rotates API keys on 429 / quota errors.
func (s *implSummarizer) callGemini(ctx context.Context, transcript string) (string, error) {
	prompt := fmt.Sprintf(summaryPrompt, transcript)

	attempts := len(s.apiKeys)
	var lastErr error

	for range attempts {
		key := s.apiKeys[s.currentKey]

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			s.rotateKey()
			continue
		}

		result, err := client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), nil)
		if err != nil {
			errMsg := err.Error()
			if strings.Contains(errMsg, "429") || strings.Contains(errMsg, "quota") || strings.Contains(errMsg, "RESOURCE_EXHAUSTED") {
				s.logger.Warn(ctx, "Key %d rate limited, rotating...", s.currentKey+1)
				s.rotateKey()
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var text string
			for _, part := range result.Candidates[0].Content.Parts {
				if part.Text != "" {
					text += part.Text
				}
			}
			return text, nil
		}

		return "", fmt.Errorf("empty response from Gemini")
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func (s *implSummarizer) rotateKey() {
	s.currentKey = (s.currentKey + 1) % len(s.apiKeys)
}
