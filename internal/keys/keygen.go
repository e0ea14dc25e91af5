package keys

import (
	"fmt"
	"os"
	"path/filepath"
)

// File names written by WriteKeyPair, matching the node's account layout.
const (
	SecretKeyFile    = "secret_key.pem"
	PublicKeyFile    = "public_key.pem"
	PublicKeyHexFile = "public_key_hex"
)

// WriteKeyPair stores key under dir as secret_key.pem, public_key.pem and
// public_key_hex, creating dir if needed. Unless force is set, it refuses
// to overwrite any of the three files.
func WriteKeyPair(dir string, key SecretKey, force bool) error {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create key directory: %w", err)
	}

	names := []string{SecretKeyFile, PublicKeyFile, PublicKeyHexFile}
	if !force {
		for _, name := range names {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s already exists; use --force to overwrite", path)
			}
		}
	}

	secretPEM, err := EncodeSecretKeyPEM(key)
	if err != nil {
		return err
	}
	pub := key.PublicKey()
	publicPEM, err := EncodePublicKeyPEM(pub)
	if err != nil {
		return err
	}

	if err := os.WriteFile(filepath.Join(dir, SecretKeyFile), secretPEM, 0o600); err != nil {
		return fmt.Errorf("write secret key: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, PublicKeyFile), publicPEM, 0o644); err != nil {
		return fmt.Errorf("write public key: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, PublicKeyHexFile), []byte(pub.Hex()), 0o644); err != nil {
		return fmt.Errorf("write public key hex: %w", err)
	}
	return nil
}
