// Package imagen generates ad creatives through Google Imagen with
// brand-appropriate prompt styling. Upstream failures are reported as
// structured results with remediation hints, never as errors, so the
// agent can relay them to the user.
package imagen

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"strings"

	"google.golang.org/genai"

	"github.com/chroniclife/marketing-studio/internal/log"
)

// styleModifiers maps the fixed style set to prompt-augmentation clauses.
// Unknown styles fall back to "modern".
var styleModifiers = map[string]string{
	"modern":    "Clean, minimal design with soft warm colors. Professional but approachable. No text overlays.",
	"emotional": "Warm, empathetic imagery. Soft lighting, human connection. Supportive and hopeful tone.",
	"community": "Diverse people supporting each other. Togetherness, understanding. Inclusive representation.",
	"data":      "Clean infographic aesthetic. Soft data visualization. Approachable health tracking theme.",
}

// brandContext carries the brand colors from knowledge/brand/guidelines.md.
const brandContext = `
    Brand Colors:
    - Primary (Dark Navy): #20132E
    - Background (Warm Cream): #FDFBF9
    - Accent Peach: #E8974F
    - Accent Blue: #A4C8D8
    - Accent Purple: #D0BDF4
    `

// EnhancePrompt wraps a raw theme into the full brand-constrained Imagen
// prompt for Reddit ad creatives.
func EnhancePrompt(prompt, style string) string {
	modifier, ok := styleModifiers[style]
	if !ok {
		modifier = styleModifiers["modern"]
	}

	return fmt.Sprintf(`Create a Reddit ad image (1200x628 aspect ratio) for a chronic illness symptom tracker app called "Chronic Life".

Theme: %s
Style: %s

%s

Important:
- No text in the image (text will be added separately)
- Warm, supportive aesthetic (not clinical)
- Suitable for chronic illness communities (endometriosis, PCOS, fibromyalgia, long COVID)
- Avoid toxic positivity imagery
- No medical imagery (hospitals, pills, stethoscopes)
- Premium, fintech-like clarity
`, prompt, modifier, brandContext)
}

// Generator produces raw image bytes for a prompt. The narrow interface
// keeps the Imagen API at arm's length so tests can substitute a fake.
type Generator interface {
	GenerateImage(ctx context.Context, prompt string) ([]byte, error)
}

// Client calls the Imagen API through the Gemini backend.
type Client struct {
	client *genai.Client
	model  string
}

// NewClient creates an Imagen client. GEMINI_API_KEY is read from the
// environment by the underlying SDK.
func NewClient(ctx context.Context, model string) (*Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating genai client: %w", err)
	}
	return &Client{client: client, model: model}, nil
}

// GenerateImage renders one 16:9 image for the prompt.
func (c *Client) GenerateImage(ctx context.Context, prompt string) ([]byte, error) {
	resp, err := c.client.Models.GenerateImages(ctx, c.model, prompt, &genai.GenerateImagesConfig{
		NumberOfImages:    1,
		AspectRatio:       "16:9",
		SafetyFilterLevel: genai.SafetyFilterLevelBlockMediumAndAbove,
	})
	if err != nil {
		return nil, err
	}
	if len(resp.GeneratedImages) == 0 || resp.GeneratedImages[0].Image == nil {
		return nil, fmt.Errorf("no image generated - may have been filtered for safety or API quota exceeded")
	}
	return resp.GeneratedImages[0].Image.ImageBytes, nil
}

// Result is the structured outcome of an image generation request.
type Result struct {
	Status          string `json:"status"`
	PromptUsed      string `json:"prompt_used"`
	Style           string `json:"style,omitempty"`
	ImageBase64     string `json:"image_base64,omitempty"`
	MIMEType        string `json:"mime_type,omitempty"`
	RecommendedSize string `json:"recommended_size,omitempty"`
	Instructions    string `json:"instructions,omitempty"`
	Error           string `json:"error,omitempty"`
	ErrorDetails    string `json:"error_details,omitempty"`
	Hint            string `json:"hint,omitempty"`
}

// Service turns prompts into structured image results.
type Service struct {
	gen    Generator
	logger log.Logger
}

// NewService creates a Service over a Generator.
func NewService(gen Generator, logger log.Logger) *Service {
	if logger == nil {
		logger = log.NewNop()
	}
	return &Service{gen: gen, logger: logger}
}

// Generate renders an ad image for prompt in the given style. It never
// returns an error: missing credentials, safety filtering, and upstream
// failures all come back as Results with status "error" and a hint.
func (s *Service) Generate(ctx context.Context, prompt, style string) Result {
	if os.Getenv("GEMINI_API_KEY") == "" {
		return Result{
			Status:     "error",
			Error:      "GEMINI_API_KEY not configured. Please set it in your .env file.",
			PromptUsed: prompt,
			Hint:       "Get your API key from https://aistudio.google.com/app/apikey",
		}
	}

	enhanced := EnhancePrompt(prompt, style)
	imageBytes, err := s.gen.GenerateImage(ctx, enhanced)
	if err != nil {
		s.logger.Warn("image generation failed", "error", err)
		return errorResult(prompt, err)
	}

	return Result{
		Status:          "success",
		PromptUsed:      prompt,
		Style:           style,
		ImageBase64:     base64.StdEncoding.EncodeToString(imageBytes),
		MIMEType:        "image/png",
		RecommendedSize: "1200x628 for Reddit ads",
		Instructions:    "Save the base64 data as a PNG file.",
	}
}

// errorResult classifies upstream errors into plain-language messages.
// The raw error text is preserved in ErrorDetails only.
func errorResult(prompt string, err error) Result {
	errStr := err.Error()
	lower := strings.ToLower(errStr)

	var msg string
	switch {
	case strings.Contains(errStr, "API key") || strings.Contains(lower, "authentication"):
		msg = "API key authentication failed. Please verify your GEMINI_API_KEY is correct."
	case strings.Contains(lower, "quota") || strings.Contains(lower, "limit"):
		msg = "API quota exceeded. Please check your Google Cloud quota limits."
	case strings.Contains(lower, "permission") || strings.Contains(lower, "not enabled"):
		msg = "Imagen API not enabled. Enable it at https://console.cloud.google.com/apis/library"
	default:
		msg = "Image generation failed: " + errStr
	}

	return Result{
		Status:       "error",
		Error:        msg,
		PromptUsed:   prompt,
		ErrorDetails: errStr,
		Hint:         "Ensure GEMINI_API_KEY is set correctly and Imagen API is enabled for your project.",
	}
}
