package session

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"golang.org/x/crypto/pbkdf2"
)

const deviceHashIterations = 4096

// DeviceHash derives a stable identifier for anonymous sessions. A random
// salt is generated once and persisted under the data directory, then
// stretched together with the hostname so the hash stays the same across
// runs on the same machine without exposing anything identifying.
func DeviceHash(dataDir string) (string, error) {
	if err := os.MkdirAll(dataDir, 0o700); err != nil {
		return "", fmt.Errorf("failed to create data dir: %w", err)
	}
	saltPath := filepath.Join(dataDir, "device-salt")

	salt, err := os.ReadFile(saltPath)
	if os.IsNotExist(err) {
		salt = []byte(uuid.New().String())
		if err := os.WriteFile(saltPath, salt, 0o600); err != nil {
			return "", fmt.Errorf("failed to persist device salt: %w", err)
		}
	} else if err != nil {
		return "", fmt.Errorf("failed to read device salt: %w", err)
	}

	hostname, err := os.Hostname()
	if err != nil {
		hostname = "talkam-device"
	}

	key := pbkdf2.Key([]byte(hostname), salt, deviceHashIterations, 32, sha256.New)
	return hex.EncodeToString(key), nil
}
