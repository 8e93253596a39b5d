package auth

import (
	"crypto/rand"
	"encoding/base64"
	"strings"

	"planner/config"
	"planner/internal/domain/service"
	"planner/internal/errors"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/nacl/secretbox"
)

const (
	sealedPrefix = "sb1:"
	saltSize     = 16
	nonceSize    = 24
	keySize      = 32

	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
)

// ErrSealedTokenInvalid is returned when a stored token cannot be opened with the configured key.
var ErrSealedTokenInvalid = errors.New("sealed token cannot be opened")

// secretboxSealer encrypts tokens with NaCl secretbox under a key derived
// from the configured passphrase with Argon2id. Each seal uses a fresh salt and nonce.
type secretboxSealer struct {
	passphrase []byte
}

// plainSealer stores tokens as they are. Used when no encryption key is configured.
type plainSealer struct{}

// NewTokenSealer returns a secretbox sealer when session.encryptionKey is set and a pass-through otherwise.
func NewTokenSealer(cfg *config.Config) service.TokenSealer {
	key := strings.TrimSpace(cfg.Session.EncryptionKey)
	if key == "" {
		return plainSealer{}
	}

	return &secretboxSealer{passphrase: []byte(key)}
}

func (s *secretboxSealer) Seal(plain string) (string, error) {
	var salt [saltSize]byte
	if _, err := rand.Read(salt[:]); err != nil {
		return "", errors.Wrap(err, "read salt")
	}
	var nonce [nonceSize]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return "", errors.Wrap(err, "read nonce")
	}

	key := s.derive(salt[:])
	out := make([]byte, 0, saltSize+nonceSize+len(plain)+secretbox.Overhead)
	out = append(out, salt[:]...)
	out = append(out, nonce[:]...)
	out = secretbox.Seal(out, []byte(plain), &nonce, key)

	return sealedPrefix + base64.RawStdEncoding.EncodeToString(out), nil
}

func (s *secretboxSealer) Open(sealed string) (string, error) {
	encoded, ok := strings.CutPrefix(sealed, sealedPrefix)
	if !ok {
		return "", ErrSealedTokenInvalid
	}
	raw, err := base64.RawStdEncoding.DecodeString(encoded)
	if err != nil || len(raw) < saltSize+nonceSize+secretbox.Overhead {
		return "", ErrSealedTokenInvalid
	}

	var nonce [nonceSize]byte
	copy(nonce[:], raw[saltSize:saltSize+nonceSize])
	key := s.derive(raw[:saltSize])

	plain, ok := secretbox.Open(nil, raw[saltSize+nonceSize:], &nonce, key)
	if !ok {
		return "", ErrSealedTokenInvalid
	}

	return string(plain), nil
}

func (s *secretboxSealer) derive(salt []byte) *[keySize]byte {
	var key [keySize]byte
	copy(key[:], argon2.IDKey(s.passphrase, salt, argonTime, argonMemory, argonThreads, keySize))

	return &key
}

func (plainSealer) Seal(plain string) (string, error) {
	return plain, nil
}

func (plainSealer) Open(sealed string) (string, error) {
	if strings.HasPrefix(sealed, sealedPrefix) {
		return "", ErrSealedTokenInvalid
	}

	return sealed, nil
}
