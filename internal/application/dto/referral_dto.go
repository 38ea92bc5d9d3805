package dto

import "time"

// RegisterReferralRequest entrada para registrar uma indicação: o tenant
// indicado informa o código de quem o indicou.
type RegisterReferralRequest struct {
	ReferralCode string `json:"referral_code" validate:"required"`
}

// ReferralResponse saída de uma indicação.
type ReferralResponse struct {
	ID                string     `json:"id"`
	ReferredEmpresaID string     `json:"referred_empresa_id"`
	Status            string     `json:"status"`
	Points            int        `json:"points"`
	CreatedAt         time.Time  `json:"created_at"`
	ConvertedAt       *time.Time `json:"converted_at,omitempty"`
}

// ReferralAccountResponse pontuação e nível do programa.
type ReferralAccountResponse struct {
	EmpresaID    string `json:"empresa_id"`
	TotalPoints  int    `json:"total_points"`
	Level        string `json:"level"`
	NextLevel    string `json:"next_level,omitempty"`
	PointsToNext int    `json:"points_to_next,omitempty"`
}

// RedeemRewardRequest entrada para resgatar um benefício por pontos.
type RedeemRewardRequest struct {
	Description string `json:"description" validate:"required"`
	PointsCost  int    `json:"points_cost" validate:"required,gt=0"`
}

// RewardResponse um benefício resgatado.
type RewardResponse struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	PointsCost  int       `json:"points_cost"`
	RedeemedAt  time.Time `json:"redeemed_at"`
}

// ReferralListResponse lista paginada de indicações.
type ReferralListResponse struct {
	Items []ReferralResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
