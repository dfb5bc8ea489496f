package model

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// checksumSuffix names the optional sidecar next to an artifact, written by
// `sha256sum xgb_model.json > xgb_model.json.sha256`.
const checksumSuffix = ".sha256"

// verifySidecar checks data against <path>.sha256 when that file exists.
func verifySidecar(path string, data []byte) error {
	sidecar, err := os.ReadFile(path + checksumSuffix)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read checksum file: %w", err)
	}

	expected, ok := lookupChecksum(parseChecksums(sidecar), filepath.Base(path))
	if !ok {
		// A bare digest with no file name is accepted too.
		fields := strings.Fields(string(sidecar))
		if len(fields) != 1 {
			return fmt.Errorf("%w: no entry for %s in %s%s", ErrChecksum, filepath.Base(path), filepath.Base(path), checksumSuffix)
		}
		expected = fields[0]
	}
	return verifyChecksum(data, expected)
}

// lookupChecksum finds the digest recorded for base. sha256sum keeps the
// path it was given, so "models/xgb_model.json" matches "xgb_model.json".
func lookupChecksum(sums map[string]string, base string) (string, bool) {
	if sum, ok := sums[base]; ok {
		return sum, true
	}
	for name, sum := range sums {
		if filepath.Base(filepath.FromSlash(name)) == base {
			return sum, true
		}
	}
	return "", false
}

// parseChecksums reads sha256sum output into a file name → hex digest map.
func parseChecksums(data []byte) map[string]string {
	result := make(map[string]string)
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) != 2 {
			continue
		}
		// sha256sum marks binary mode with a leading '*'.
		result[strings.TrimPrefix(parts[1], "*")] = strings.ToLower(parts[0])
	}
	return result
}

func verifyChecksum(data []byte, expectedHex string) error {
	actual := digest(data)
	if actual != strings.ToLower(expectedHex) {
		return fmt.Errorf("%w: expected %s, got %s", ErrChecksum, expectedHex, actual)
	}
	return nil
}

func digest(data []byte) string {
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}
