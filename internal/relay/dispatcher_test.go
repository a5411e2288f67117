package relay

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ultraai/internal/codec"
)

func newTestDispatcher() *Dispatcher {
	return NewDispatcher(5 * time.Second)
}

func TestRelaySuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "Olá, assistente!", payload["prompt"])

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"aiResponse":"Olá, humano!"}`))
	}))
	defer server.Close()

	output, err := newTestDispatcher().Relay(context.Background(), Input{
		Prompt:     "Olá, assistente!",
		WebhookURL: server.URL,
	})

	require.NoError(t, err)
	assert.Equal(t, "Olá, humano!", output.AIResponse)
}

func TestRelaySendsBasicAuth(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, password, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "usuario", username)
		assert.Equal(t, "senha-secreta", password)

		w.Write([]byte(`{"aiResponse":"ok"}`))
	}))
	defer server.Close()

	_, err := newTestDispatcher().Relay(context.Background(), Input{
		Prompt:            "oi",
		WebhookURL:        server.URL,
		Username:          "usuario",
		PasswordEncrypted: codec.Encode("senha-secreta"),
	})

	require.NoError(t, err)
}

func TestRelayWithoutCredentialsOmitsAuthHeader(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Write([]byte(`{"aiResponse":"ok"}`))
	}))
	defer server.Close()

	_, err := newTestDispatcher().Relay(context.Background(), Input{
		Prompt:     "oi",
		WebhookURL: server.URL,
	})

	require.NoError(t, err)
}

func TestRelayUsernameWithEmptyPassword(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, password, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "usuario", username)
		assert.Empty(t, password)

		w.Write([]byte(`{"aiResponse":"ok"}`))
	}))
	defer server.Close()

	_, err := newTestDispatcher().Relay(context.Background(), Input{
		Prompt:     "oi",
		WebhookURL: server.URL,
		Username:   "usuario",
	})

	require.NoError(t, err)
}

func TestRelayCorruptedCredentials(t *testing.T) {
	_, err := newTestDispatcher().Relay(context.Background(), Input{
		Prompt:            "oi",
		WebhookURL:        "https://example.com/webhook",
		Username:          "usuario",
		PasswordEncrypted: "não-veio-do-codec",
	})

	var relayErr *Error
	require.ErrorAs(t, err, &relayErr)
	assert.Contains(t, relayErr.Reason, "credenciais")
}

func TestRelayNon2xxStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "erro interno", http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := newTestDispatcher().Relay(context.Background(), Input{
		Prompt:     "oi",
		WebhookURL: server.URL,
	})

	var relayErr *Error
	require.ErrorAs(t, err, &relayErr)
	assert.Contains(t, relayErr.Reason, "500")
}

func TestRelayInvalidJSONReply(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("isto não é JSON"))
	}))
	defer server.Close()

	_, err := newTestDispatcher().Relay(context.Background(), Input{
		Prompt:     "oi",
		WebhookURL: server.URL,
	})

	var relayErr *Error
	require.ErrorAs(t, err, &relayErr)
}

func TestRelayReplyWithoutTextField(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"done","count":3}`))
	}))
	defer server.Close()

	_, err := newTestDispatcher().Relay(context.Background(), Input{
		Prompt:     "oi",
		WebhookURL: server.URL,
	})

	var relayErr *Error
	require.ErrorAs(t, err, &relayErr)
}

func TestRelayNetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	_, err := newTestDispatcher().Relay(context.Background(), Input{
		Prompt:     "oi",
		WebhookURL: server.URL,
	})

	var relayErr *Error
	require.ErrorAs(t, err, &relayErr)
	assert.Error(t, relayErr.Unwrap())
}

func TestRelayEmptyPrompt(t *testing.T) {
	for _, prompt := range []string{"", "   ", "\n\t"} {
		_, err := newTestDispatcher().Relay(context.Background(), Input{
			Prompt:     prompt,
			WebhookURL: "https://example.com/webhook",
		})

		var relayErr *Error
		require.ErrorAs(t, err, &relayErr)
	}
}

func TestRelayInvalidWebhookURL(t *testing.T) {
	for _, rawURL := range []string{"", "não é url", "ftp://example.com/x", "/caminho/relativo"} {
		_, err := newTestDispatcher().Relay(context.Background(), Input{
			Prompt:     "oi",
			WebhookURL: rawURL,
		})

		var relayErr *Error
		require.ErrorAs(t, err, &relayErr, "URL: %q", rawURL)
	}
}

func TestParseReplyFallbackKeys(t *testing.T) {
	cases := []struct {
		body     string
		expected string
	}{
		{`{"aiResponse":"primário"}`, "primário"},
		{`{"output":"estilo n8n"}`, "estilo n8n"},
		{`{"response":"alternativo"}`, "alternativo"},
		{`{"text":"texto puro"}`, "texto puro"},
		{`{"aiResponse":"vence","output":"perde"}`, "vence"},
		{`{"aiResponse":"","output":"não vazio vence"}`, "não vazio vence"},
	}

	for _, tc := range cases {
		output, err := parseReply([]byte(tc.body))
		require.NoError(t, err, "body: %s", tc.body)
		assert.Equal(t, tc.expected, output.AIResponse)
	}
}

func TestNewDispatcherDefaultTimeout(t *testing.T) {
	d := NewDispatcher(0)
	assert.Equal(t, 30*time.Second, d.client.GetClient().Timeout)
}
