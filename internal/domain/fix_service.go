package domain

import "time"

// FixServiceType é a etiqueta do catálogo referenciada pelos vazamentos
type FixServiceType string

// FixService é uma entrada do catálogo estático de serviços de correção
type FixService struct {
	Type        FixServiceType `json:"type"`
	Name        string         `json:"name"`
	Price       float64        `json:"price"`
	Description string         `json:"description"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func (f *FixService) IsValid() bool {
	return f != nil && f.Type != "" && f.Price > 0
}
