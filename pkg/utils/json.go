package utils

import (
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// PrettyJSON serializa com indentação para saída em terminal
func PrettyJSON(in any) (string, error) {
	buffer, err := json.MarshalIndent(in, "", "  ")
	if err != nil {
		return "", err
	}
	return string(buffer), nil
}
