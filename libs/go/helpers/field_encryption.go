package helpers

import (
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"

	"github.com/pkg/errors"
	"golang.org/x/crypto/chacha20poly1305"
)

// FieldEncryptionKeySize is the key length required by FieldCipher
const FieldEncryptionKeySize = chacha20poly1305.KeySize

var (
	// ErrInvalidEncryptionKey is returned for keys that are not 32 bytes
	ErrInvalidEncryptionKey = errors.New("field encryption key must be 32 bytes")
	// ErrCiphertextTooShort is returned when a stored value cannot hold a nonce
	ErrCiphertextTooShort = errors.New("ciphertext too short")
)

// FieldCipher encrypts individual column values with XChaCha20-Poly1305. Each value
// gets a random nonce stored in front of the ciphertext, and is bound to its row
// through the associated data so a value copied to another row fails to decrypt.
type FieldCipher struct {
	aead cipher.AEAD
}

// NewFieldCipher creates a cipher from a raw 32-byte key
func NewFieldCipher(key []byte) (*FieldCipher, error) {
	if len(key) != FieldEncryptionKeySize {
		return nil, ErrInvalidEncryptionKey
	}
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create field cipher")
	}
	return &FieldCipher{aead: aead}, nil
}

// NewFieldCipherFromBase64 creates a cipher from a standard base64 encoded key,
// the form in which the key is kept in Secrets Manager
func NewFieldCipherFromBase64(encoded string) (*FieldCipher, error) {
	key, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode field encryption key")
	}
	return NewFieldCipher(key)
}

// GenerateFieldEncryptionKey returns a new random key, base64 encoded
func GenerateFieldEncryptionKey() (string, error) {
	key := make([]byte, FieldEncryptionKeySize)
	if _, err := rand.Read(key); err != nil {
		return "", errors.Wrap(err, "failed to generate field encryption key")
	}
	return base64.StdEncoding.EncodeToString(key), nil
}

// Encrypt seals plaintext bound to associatedData (e.g. the row's primary key)
func (c *FieldCipher) Encrypt(plaintext, associatedData string) ([]byte, error) {
	nonce := make([]byte, c.aead.NonceSize(), c.aead.NonceSize()+len(plaintext)+c.aead.Overhead())
	if _, err := rand.Read(nonce); err != nil {
		return nil, errors.Wrap(err, "failed to generate nonce")
	}
	return c.aead.Seal(nonce, nonce, []byte(plaintext), []byte(associatedData)), nil
}

// Decrypt opens a value produced by Encrypt with the same associatedData
func (c *FieldCipher) Decrypt(ciphertext []byte, associatedData string) (string, error) {
	nonceSize := c.aead.NonceSize()
	if len(ciphertext) < nonceSize+c.aead.Overhead() {
		return "", ErrCiphertextTooShort
	}
	nonce, sealed := ciphertext[:nonceSize], ciphertext[nonceSize:]
	plaintext, err := c.aead.Open(nil, nonce, sealed, []byte(associatedData))
	if err != nil {
		return "", errors.Wrap(err, "failed to decrypt field")
	}
	return string(plaintext), nil
}
