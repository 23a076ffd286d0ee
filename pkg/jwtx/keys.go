package jwtx

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"os"
	"path/filepath"
)

// GenerateKey returns a fresh Ed25519 private key. Sessions signed with an
// ephemeral key do not survive a restart, which is acceptable for the
// backoffice: collaborators just sign in again.
func GenerateKey() (ed25519.PrivateKey, error) {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("jwtx: failed to generate key: %w", err)
	}
	return priv, nil
}

// LoadOrGenerateKey loads a PKCS8 PEM Ed25519 key from path, generating and
// persisting one on first run. An empty path yields an ephemeral key.
func LoadOrGenerateKey(path string) (ed25519.PrivateKey, error) {
	if path == "" {
		return GenerateKey()
	}

	path = filepath.Clean(path)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		priv, err := GenerateKey()
		if err != nil {
			return nil, err
		}
		if err := writeKey(path, priv); err != nil {
			return nil, err
		}
		return priv, nil
	}
	if err != nil {
		return nil, fmt.Errorf("jwtx: failed to read key file: %w", err)
	}

	block, _ := pem.Decode(data)
	if block == nil {
		return nil, fmt.Errorf("jwtx: key file %s is not PEM", path)
	}
	parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("jwtx: failed to parse key: %w", err)
	}
	priv, ok := parsed.(ed25519.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("jwtx: key file %s is not an Ed25519 key", path)
	}
	return priv, nil
}

func writeKey(path string, priv ed25519.PrivateKey) error {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return err
	}

	der, err := x509.MarshalPKCS8PrivateKey(priv)
	if err != nil {
		return fmt.Errorf("jwtx: failed to marshal key: %w", err)
	}
	pemBytes := pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der})
	return os.WriteFile(path, pemBytes, 0600)
}
