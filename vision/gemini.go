package vision

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
	genai "google.golang.org/genai"

	"github.com/checkmotor/checkmotor/model"
)

// extractionPrompt is the fixed instruction sent with every capture. The
// response schema below forces all four keys even when nothing was found.
const extractionPrompt = `Atue como um perito veicular. Analise a imagem e extraia rigorosamente os dados solicitados em formato JSON.
Extraia a placa (padrão Mercosul ou antigo), a marca do veículo, o modelo e qualquer número de IMEI visível em etiquetas de rastreadores.
Se algum campo não for identificado, retorne como string vazia ou array vazio para IMEI.
NÃO inclua nenhuma explicação adicional fora do JSON.`

var extractionSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"placa":  {Type: genai.TypeString, Description: "License plate of the vehicle"},
		"marca":  {Type: genai.TypeString, Description: "Car brand/make"},
		"modelo": {Type: genai.TypeString, Description: "Car model"},
		"imei": {
			Type:        genai.TypeArray,
			Items:       &genai.Schema{Type: genai.TypeString},
			Description: "List of detected IMEIs",
		},
	},
	Required: []string{"placa", "marca", "modelo", "imei"},
}

// Gemini is a thin wrapper around the official genai client. One call per
// capture, no retry or backoff of its own.
type Gemini struct {
	cli   *genai.Client
	model string
}

func NewGemini(ctx context.Context, apiKey, modelName string) (*Gemini, error) {
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, errors.Wrap(err, "vision: gemini client")
	}
	return &Gemini{cli: cli, model: modelName}, nil
}

// Analyze sends the captured frame inline and asks for a strict JSON
// extraction. A response with no usable text yields (nil, nil).
func (g *Gemini) Analyze(ctx context.Context, imageDataURI string) (*model.AIResult, error) {
	img, err := imagePayload(imageDataURI)
	if err != nil {
		return nil, err
	}

	resp, err := g.cli.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{{Parts: []*genai.Part{
			{InlineData: &genai.Blob{MIMEType: "image/jpeg", Data: img}},
			{Text: extractionPrompt},
		}}},
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   extractionSchema,
		},
	)
	if err != nil {
		return nil, errors.Wrap(err, "vision: generate content")
	}
	if len(resp.Candidates) == 0 ||
		resp.Candidates[0].Content == nil ||
		len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, nil
	}

	text := resp.Candidates[0].Content.Parts[0].Text
	if text == "" {
		return nil, nil
	}

	result := &model.AIResult{}
	if err := json.Unmarshal([]byte(text), result); err != nil {
		return nil, errors.Wrap(err, "vision: parse extraction")
	}
	return result, nil
}
