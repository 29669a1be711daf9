package gemini

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-builder-api/internal/config"
	"google.golang.org/genai"
)

// GeminiIntegrator é o colaborador do motor de decisão: recebe a instrução de
// sistema e o contexto de decisão serializado e devolve o texto bruto da
// resposta. O raciocínio do motor é opaco; só o contrato de
// requisição/resposta importa aqui
type GeminiIntegrator struct {
	cfg    *config.Config
	client *genai.Client
}

func New(cfg *config.Config) (*GeminiIntegrator, error) {
	if cfg.Decision.GeminiAPIKey == "" {
		return nil, fmt.Errorf("chave de API do Gemini não configurada")
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey: cfg.Decision.GeminiAPIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao criar cliente do Gemini: %w", err)
	}

	return &GeminiIntegrator{
		cfg:    cfg,
		client: client,
	}, nil
}

// GeneratePlan envia a instrução de sistema e o payload JSON do contexto de
// decisão e retorna o texto bruto produzido pelo motor
func (s *GeminiIntegrator) GeneratePlan(ctx context.Context, systemInstruction string, payload []byte) (string, error) {
	timeout := time.Duration(s.cfg.Decision.TimeoutSeconds) * time.Second
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	generateConfig := &genai.GenerateContentConfig{
		Temperature:       genai.Ptr(float32(s.cfg.Decision.Temperature)),
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
	}

	started := time.Now()
	resp, err := s.client.Models.GenerateContent(ctx, s.cfg.Decision.GeminiModel, genai.Text(string(payload)), generateConfig)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"model": s.cfg.Decision.GeminiModel,
			"error": err.Error(),
		}).Error("decision: failed to call decision engine")
		return "", fmt.Errorf("erro ao consultar o motor de decisão: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("motor de decisão retornou resposta vazia")
	}

	logrus.WithFields(logrus.Fields{
		"model":       s.cfg.Decision.GeminiModel,
		"duration_ms": time.Since(started).Milliseconds(),
	}).Debug("decision: engine response received")

	return text, nil
}
