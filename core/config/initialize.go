package config

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
)

// Initialize writes the default configuration into dir if the pieces don't
// exist yet, generating an SSH host key for serve mode as it goes. Existing
// files are kept as-is so it's safe to re-run.
func Initialize(dir string, logger *log.Logger) (*Config, error) {
	configPath := filepath.Join(dir, ConfigurationName)
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		logger.Printf("Writing default configuration to %s", configPath)
		if err := ioutil.WriteFile(configPath, defaultConfigData, 0600); err != nil {
			return nil, err
		}
	} else {
		logger.Printf("Configuration already exists at %s", configPath)
	}

	keyPath := filepath.Join(dir, HostKeyName)
	if _, err := os.Stat(keyPath); os.IsNotExist(err) {
		logger.Printf("Generating SSH host key at %s", keyPath)
		keyPem, err := generateHostKey()
		if err != nil {
			return nil, err
		}
		if err := ioutil.WriteFile(keyPath, keyPem, 0600); err != nil {
			return nil, err
		}
	} else {
		logger.Printf("Host key already exists at %s", keyPath)
	}

	return Load(dir)
}

func generateHostKey() ([]byte, error) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return nil, err
	}

	return pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(key),
	}), nil
}
