package domain

import (
	"math"
	"time"
)

// Partner é o registro local de um parceiro/revendedor sincronizado da API de parceiros.
// CommissionRate nulo indica que o parceiro usa a taxa padrão.
type Partner struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	CommissionRate  *float64  `json:"commission_rate"`
	ReferredUsers   int       `json:"referred_users"`
	TotalCommission float64   `json:"total_commission"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ClampCommissionRate limita a taxa de comissão a [0,100]; NaN vira 0
func ClampCommissionRate(rate float64) float64 {
	if math.IsNaN(rate) || rate < 0 {
		return 0
	}
	if rate > 100 {
		return 100
	}
	return rate
}
