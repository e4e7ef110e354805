package llm

import openai "github.com/sashabaranov/go-openai"

// Api exposes the underlying OpenAI client for callers that build raw
// multimodal requests themselves, like the vision OCR extractor.
func (c *Client) Api() *openai.Client {
	return c.api
}

// Model returns the configured chat model.
func (c *Client) Model() string {
	return c.model
}
