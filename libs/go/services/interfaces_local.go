package services

// Local interfaces to avoid circular dependency with interfaces package

// FieldEncryptor encrypts single column values bound to their row key
type FieldEncryptor interface {
	Encrypt(plaintext, associatedData string) ([]byte, error)
	Decrypt(ciphertext []byte, associatedData string) (string, error)
}
