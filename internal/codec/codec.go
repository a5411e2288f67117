// Package codec guarda senhas de Basic Auth de webhooks de forma reversível.
// Não é criptografia forte: o dispatcher de relay precisa recuperar o texto
// original para montar o header Authorization. Em produção o transform pode
// ser trocado por criptografia autenticada mantendo o mesmo contrato.
package codec

import (
	"encoding/base64"
	"fmt"
	"strings"
)

const prefix = "enc.v1:"

// Encode transforma a senha em texto claro numa representação opaca.
// Encode("") resulta no prefixo puro e nunca colide com uma senha não vazia.
func Encode(plaintext string) string {
	return prefix + base64.StdEncoding.EncodeToString([]byte(plaintext))
}

// Decode reverte o valor gerado por Encode.
func Decode(opaque string) (string, error) {
	if !strings.HasPrefix(opaque, prefix) {
		return "", fmt.Errorf("valor não foi codificado por este codec")
	}

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(opaque, prefix))
	if err != nil {
		return "", fmt.Errorf("erro ao decodificar senha: %w", err)
	}

	return string(decoded), nil
}

// IsEncoded informa se o valor já passou pelo Encode.
func IsEncoded(opaque string) bool {
	return strings.HasPrefix(opaque, prefix)
}
