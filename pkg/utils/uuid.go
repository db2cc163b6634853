package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	idLength   = 10
)

func GenerateID() (string, error) {
	return gonanoid.Generate(characters, idLength)
}

// GeneratePrefixedID gera ids legíveis como "wch_Ab3dE9kQ2z"
func GeneratePrefixedID(prefix string) (string, error) {
	id, err := GenerateID()
	if err != nil {
		return "", err
	}
	return prefix + "_" + id, nil
}
