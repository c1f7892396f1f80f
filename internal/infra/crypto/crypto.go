// Package crypto seals task snapshots with AES-256-GCM.
package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
)

const (
	// NonceSize is the size of the nonce for AES-GCM (12 bytes).
	NonceSize = 12
	// KeySize is the size of the AES-256 key (32 bytes).
	KeySize = 32
)

// header prefixes every sealed payload so plain snapshots stay readable.
var header = []byte("TFENC1\n")

var (
	// ErrInvalidKey is returned when the encryption key is invalid.
	ErrInvalidKey = errors.New("invalid encryption key: must be 32 bytes (64 hex characters)")
	// ErrDecryptionFailed is returned when decryption fails.
	ErrDecryptionFailed = errors.New("decryption failed: invalid ciphertext or key")
	// ErrCiphertextTooShort is returned when the ciphertext is too short.
	ErrCiphertextTooShort = errors.New("ciphertext too short")
)

// Sealer encrypts and decrypts snapshot payloads.
// Sealing the same plaintext twice in a row returns the same bytes,
// so an unchanged snapshot keeps its blob hash.
type Sealer struct {
	gcm      cipher.AEAD
	lastHash [sha256.Size]byte
	lastSeal []byte
	mu       sync.Mutex
}

// New creates a Sealer from a hex-encoded 32-byte key.
func New(hexKey string) (*Sealer, error) {
	key, err := hex.DecodeString(strings.TrimSpace(hexKey))
	if err != nil || len(key) != KeySize {
		return nil, ErrInvalidKey
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create GCM: %w", err)
	}

	return &Sealer{gcm: gcm}, nil
}

// GenerateKey returns a new random key in hex form.
func GenerateKey() (string, error) {
	key := make([]byte, KeySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return "", fmt.Errorf("generate key: %w", err)
	}
	return hex.EncodeToString(key), nil
}

// Seal encrypts plaintext.
// Returns: header + nonce (12 bytes) + ciphertext + auth tag
func (s *Sealer) Seal(plaintext []byte) ([]byte, error) {
	hash := sha256.Sum256(plaintext)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.lastSeal != nil && hash == s.lastHash {
		return bytes.Clone(s.lastSeal), nil
	}

	nonce := make([]byte, NonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	out := make([]byte, 0, len(header)+NonceSize+len(plaintext)+s.gcm.Overhead())
	out = append(out, header...)
	out = append(out, nonce...)
	out = s.gcm.Seal(out, nonce, plaintext, nil)

	s.lastHash = hash
	s.lastSeal = bytes.Clone(out)
	return out, nil
}

// Open decrypts a payload produced by Seal.
func (s *Sealer) Open(sealed []byte) ([]byte, error) {
	if !IsSealed(sealed) {
		return nil, ErrDecryptionFailed
	}
	body := sealed[len(header):]
	if len(body) < NonceSize {
		return nil, ErrCiphertextTooShort
	}

	plaintext, err := s.gcm.Open(nil, body[:NonceSize], body[NonceSize:], nil)
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	return plaintext, nil
}

// IsSealed reports whether data carries the sealed payload header.
func IsSealed(data []byte) bool {
	return bytes.HasPrefix(data, header)
}
