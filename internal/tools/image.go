package tools

import (
	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/genkit"

	"github.com/chroniclife/marketing-studio/internal/imagen"
)

func registerImageTools(g *genkit.Genkit, images *imagen.Service) {
	genkit.DefineTool(
		g,
		"generate_image",
		"Create an ad image using Imagen 3. The prompt is automatically enhanced "+
			"with Chronic Life brand guidelines (colors, no text, no medical imagery). "+
			"Styles: modern, emotional, community, data. "+
			"Failures come back as structured errors with a troubleshooting hint.",
		func(ctx *ai.ToolContext, input struct {
			Prompt string `json:"prompt" jsonschema_description:"Image theme, e.g. 'person resting peacefully while their phone tracks symptoms'"`
			Style  string `json:"style,omitempty" jsonschema_description:"Visual style: modern, emotional, community, or data. Defaults to modern."`
		},
		) (imagen.Result, error) {
			if input.Style == "" {
				input.Style = "modern"
			}
			return images.Generate(ctx.Context, input.Prompt, input.Style), nil
		},
	)
}
