// Package relay encaminha prompts do chat para o webhook do assistente
// externo e normaliza a resposta num único campo de texto.
package relay

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"ultraai/internal/codec"
	"ultraai/internal/logger"
)

const userAgent = "UltraAI-Relay/1.0"

// Error indica falha na chamada ao webhook: rede, status não-2xx ou corpo
// sem um campo de texto utilizável.
type Error struct {
	Reason string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Reason, e.Err)
	}
	return e.Reason
}

func (e *Error) Unwrap() error {
	return e.Err
}

type Input struct {
	Prompt            string
	WebhookURL        string
	Username          string
	PasswordEncrypted string
}

type Output struct {
	AIResponse string `json:"aiResponse"`
}

type Dispatcher struct {
	client *resty.Client
	logger logger.Logger
}

func NewDispatcher(timeout time.Duration) *Dispatcher {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	client := resty.New()
	client.SetRedirectPolicy(resty.FlexibleRedirectPolicy(15))
	client.SetTimeout(timeout)
	client.SetRetryCount(0)

	return &Dispatcher{
		client: client,
		logger: logger.NewForComponent("RelayDispatcher"),
	}
}

// Relay faz um único POST com o prompt e espera a resposta de forma
// síncrona. Sem retry e sem fila: uma tentativa por prompt enviado.
func (d *Dispatcher) Relay(ctx context.Context, input Input) (*Output, error) {
	if strings.TrimSpace(input.Prompt) == "" {
		return nil, &Error{Reason: "prompt não pode ser vazio"}
	}

	if !isValidWebhookURL(input.WebhookURL) {
		return nil, &Error{Reason: fmt.Sprintf("URL de webhook inválida: %s", input.WebhookURL)}
	}

	req := d.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("User-Agent", userAgent).
		SetBody(map[string]string{"prompt": input.Prompt})

	if input.Username != "" {
		password, err := d.decodePassword(input.PasswordEncrypted)
		if err != nil {
			return nil, &Error{Reason: "erro ao decodificar credenciais do webhook", Err: err}
		}
		req.SetBasicAuth(input.Username, password)
	}

	d.logger.Debug("Enviando prompt ao webhook", "url", input.WebhookURL, "basicAuth", input.Username != "")

	resp, err := req.Post(input.WebhookURL)
	if err != nil {
		d.logger.Warn("Falha de rede ao chamar webhook", "url", input.WebhookURL, "error", err)
		return nil, &Error{Reason: "erro de rede ao chamar o webhook", Err: err}
	}

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		d.logger.Warn("Webhook respondeu com status inválido", "url", input.WebhookURL, "statusCode", resp.StatusCode())
		return nil, &Error{Reason: fmt.Sprintf("webhook respondeu com status %d", resp.StatusCode())}
	}

	output, err := parseReply(resp.Body())
	if err != nil {
		return nil, err
	}

	d.logger.Info("Resposta do assistente recebida", "url", input.WebhookURL, "duration", resp.Time())
	return output, nil
}

func (d *Dispatcher) decodePassword(encrypted string) (string, error) {
	if encrypted == "" {
		return "", nil
	}
	return codec.Decode(encrypted)
}

// parseReply extrai o campo textual da resposta. Endpoints estilo n8n
// costumam responder em "output"; o contrato primário é "aiResponse".
func parseReply(body []byte) (*Output, error) {
	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, &Error{Reason: "resposta do webhook não é JSON válido", Err: err}
	}

	for _, key := range []string{"aiResponse", "output", "response", "text"} {
		if value, ok := payload[key].(string); ok && value != "" {
			return &Output{AIResponse: value}, nil
		}
	}

	return nil, &Error{Reason: "resposta do webhook não contém um campo de texto"}
}

func isValidWebhookURL(raw string) bool {
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
}
