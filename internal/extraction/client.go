// Package extraction talks to an OpenAI-compatible chat completions endpoint
// that reads invoice images. Its output is an untrusted suggestion: every
// field is parsed strictly and nothing is coerced.
package extraction

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"
)

const maxResponseBytes = 1 << 20

const systemPrompt = `You read photos and scans of invoices and receipts for home renovation purchases.
Reply with a single JSON object and nothing else, using exactly these keys:
{"date": "YYYY-MM-DD" or null, "supplier_name": string or null, "invoice_number": string or null,
 "currency": ISO 4217 code or null, "subtotal": number or null, "tax": number or null,
 "total_amount": number or null,
 "line_items": [{"name": string, "quantity": number, "unit_price": number, "total_price": number or null}]}
Use a dot as the decimal separator. Do not guess values you cannot read; use null.`

// Client calls the extraction endpoint.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewClient creates a client for the chat completions API at baseURL.
func NewClient(baseURL, apiKey, model string, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		model:      model,
		httpClient: httpClient,
	}
}

type chatRequest struct {
	Model          string            `json:"model"`
	Temperature    float64           `json:"temperature"`
	ResponseFormat map[string]string `json:"response_format"`
	Messages       []chatMessage     `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

type contentPart struct {
	Type     string            `json:"type"`
	Text     string            `json:"text,omitempty"`
	ImageURL map[string]string `json:"image_url,omitempty"`
}

// Extract sends one image and parses the model's reply. A reply that cannot
// be parsed yields a *ParseError carrying the raw content.
func (c *Client) Extract(ctx context.Context, image []byte, contentType string) (*Suggestion, error) {
	if contentType == "" {
		contentType = http.DetectContentType(image)
	}
	dataURL := "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(image)

	body, err := json.Marshal(chatRequest{
		Model:          c.model,
		ResponseFormat: map[string]string{"type": "json_object"},
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: []contentPart{
				{Type: "text", Text: "Extract the invoice details from this image."},
				{Type: "image_url", ImageURL: map[string]string{"url": dataURL}},
			}},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("marshaling extraction request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling extraction endpoint: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("reading extraction response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &ParseError{Raw: string(raw), Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	content := gjson.GetBytes(raw, "choices.0.message.content")
	if content.Type != gjson.String {
		return nil, &ParseError{Raw: string(raw), Err: fmt.Errorf("response has no message content")}
	}
	return ParseInvoice(content.String())
}
