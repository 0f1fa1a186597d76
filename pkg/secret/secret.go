// Package secret cifra as API keys das contas antes de gravar no banco.
package secret

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/hkdf"
	"golang.org/x/crypto/nacl/secretbox"
)

const (
	// sealedPrefix marca valores cifrados; qualquer outro valor é lido como texto puro
	sealedPrefix = "sb1:"
	nonceSize    = 24
	keyInfo      = "mail-insights-api/account-api-key"
)

var (
	ErrEmptySecret   = errors.New("SECRET_KEY não configurada")
	ErrInvalidSealed = errors.New("valor cifrado inválido")
)

type Sealer interface {
	Seal(plain string) (string, error)
	Open(stored string) (string, error)
}

type BoxSealer struct {
	key [32]byte
}

// NewSealer deriva a chave de cifragem de secretKey com HKDF-SHA256
func NewSealer(secretKey string) (*BoxSealer, error) {
	if strings.TrimSpace(secretKey) == "" {
		return nil, ErrEmptySecret
	}

	reader := hkdf.New(sha256.New, []byte(secretKey), nil, []byte(keyInfo))

	s := &BoxSealer{}
	if _, err := io.ReadFull(reader, s.key[:]); err != nil {
		return nil, fmt.Errorf("falha ao derivar chave: %w", err)
	}
	return s, nil
}

func (s *BoxSealer) Seal(plain string) (string, error) {
	if plain == "" {
		return "", nil
	}

	var nonce [nonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return "", fmt.Errorf("falha ao gerar nonce: %w", err)
	}

	box := secretbox.Seal(nonce[:], []byte(plain), &nonce, &s.key)
	return sealedPrefix + base64.RawStdEncoding.EncodeToString(box), nil
}

// Open devolve o texto puro. Valores sem o prefixo são anteriores à cifragem e voltam como estão.
func (s *BoxSealer) Open(stored string) (string, error) {
	if !IsSealed(stored) {
		return stored, nil
	}

	box, err := base64.RawStdEncoding.DecodeString(strings.TrimPrefix(stored, sealedPrefix))
	if err != nil || len(box) < nonceSize+secretbox.Overhead {
		return "", ErrInvalidSealed
	}

	var nonce [nonceSize]byte
	copy(nonce[:], box[:nonceSize])

	plain, ok := secretbox.Open(nil, box[nonceSize:], &nonce, &s.key)
	if !ok {
		return "", ErrInvalidSealed
	}
	return string(plain), nil
}

func IsSealed(value string) bool {
	return strings.HasPrefix(value, sealedPrefix)
}

// Mask esconde tudo menos os quatro últimos caracteres, para logs
func Mask(value string) string {
	if value == "" {
		return ""
	}
	if len(value) <= 4 {
		return "****"
	}
	return "****..." + value[len(value)-4:]
}
