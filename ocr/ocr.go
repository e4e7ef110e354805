package ocr

import (
	"context"
	"encoding/base64"
	"fmt"
	"path/filepath"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"github.com/skolapp/backend/logger"
	"github.com/skolapp/backend/sheetstore"
)

// TextExtractor converts uploaded answer-sheet files into raw text.
// Implementations are best-effort: partial or empty text is a valid result,
// callers must not treat it as fatal.
type TextExtractor interface {
	ExtractText(ctx context.Context, fileKeys []string) (string, error)
}

// VisionOcr extracts handwriting via a vision-capable chat model. Each file
// is downloaded from the sheet store and sent as an inline data URL.
type VisionOcr struct {
	api    *openai.Client
	model  string
	sheets sheetstore.Storage
}

func NewVisionOcr(api *openai.Client, model string, sheets sheetstore.Storage) *VisionOcr {
	return &VisionOcr{
		api:    api,
		model:  model,
		sheets: sheets,
	}
}

const transcribePrompt = "Transcribe all handwritten and printed text on this exam answer sheet. " +
	"Keep question numbers and the order of answers exactly as written. " +
	"Output plain text only, no commentary."

func (o *VisionOcr) ExtractText(ctx context.Context, fileKeys []string) (string, error) {
	log := logger.FromContext(ctx)
	var pages []string
	for _, key := range fileKeys {
		text, err := o.extractOne(ctx, key)
		if err != nil {
			// one unreadable page should not lose the rest of the sheet
			log.Warn("failed to extract text from sheet file", "key", key, "error", err)
			continue
		}
		pages = append(pages, text)
	}
	if len(pages) == 0 && len(fileKeys) > 0 {
		return "", fmt.Errorf("no text extracted from %d file(s)", len(fileKeys))
	}
	return strings.Join(pages, "\n"), nil
}

func (o *VisionOcr) extractOne(ctx context.Context, key string) (string, error) {
	content, err := o.sheets.Download(ctx, key)
	if err != nil {
		return "", fmt.Errorf("failed to download sheet file: %w", err)
	}

	mediaType := mediaTypeForKey(key)
	dataURL := fmt.Sprintf("data:%s;base64,%s", mediaType, base64.StdEncoding.EncodeToString(content))

	resp, err := o.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{Type: openai.ChatMessagePartTypeText, Text: transcribePrompt},
					{
						Type: openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{
							URL:    dataURL,
							Detail: openai.ImageURLDetailHigh,
						},
					},
				},
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("OCR API call: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("OCR model returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

func mediaTypeForKey(key string) string {
	switch strings.ToLower(filepath.Ext(key)) {
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	case ".pdf":
		return "application/pdf"
	default:
		return "image/jpeg"
	}
}
