package gateway

import (
	"context"
	"net/http"
)

// ===============================
// Pagamento (preferência)
// ===============================

type CreatePreferenceParams struct {
	CompanyID string  `json:"company_id"`
	BookingID string  `json:"booking_id"`
	Title     string  `json:"title"`
	Amount    float64 `json:"amount"`
	BackURL   string  `json:"back_url"`
}

type PreferenceResponse struct {
	PreferenceID string `json:"preference_id"`
	InitPoint    string `json:"init_point"`
}

// CreatePreference pede ao backend a preferência de pagamento na conta
// vinculada da empresa. PROPAGA: sem init_point não há o que abrir.
func (c *Client) CreatePreference(
	ctx context.Context,
	params CreatePreferenceParams,
) (*PreferenceResponse, error) {

	var out PreferenceResponse
	if err := c.do(ctx, http.MethodPost, "/payments/preference", params, &out); err != nil {
		return nil, c.finish("payment.create_preference", err)
	}

	if out.InitPoint == "" {
		return nil, c.finish("payment.create_preference", ErrInvalidResponse)
	}

	c.count("payment.create_preference", "ok")
	return &out, nil
}
