package auditdomain

type FixService struct {
	Type        string  `json:"type"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

type Partner struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	CommissionRate  *float64 `json:"commissionRate"`
	ReferredUsers   int      `json:"referredUsers"`
	TotalCommission float64  `json:"totalCommission"`
}
