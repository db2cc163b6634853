//go:build tools

package tools

// Dependências de ferramentas: mockgen para go generate e o CLI do goose para migrações manuais.
import (
	_ "github.com/pressly/goose/v3/cmd/goose"
	_ "go.uber.org/mock/mockgen"
)
