package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

func HashDataJSON(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}

	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
