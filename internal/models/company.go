package models

import "time"

// MPAccount é o vínculo da empresa com a conta MercadoPago (salesman).
// Nunca vai para o armazenamento local junto com a empresa.
type MPAccount struct {
	UserID      string `json:"user_id"`
	PublicKey   string `json:"public_key"`
	AccessToken string `json:"access_token,omitempty"`
	Linked      bool   `json:"linked"`
}

type Company struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Category string `json:"category"`
	LogoURL  string `json:"logo_url"`
	Role     string `json:"role"`
	Timezone string `json:"timezone"`

	// Presente apenas quando a empresa vinculou pagamento.
	MercadoPago *MPAccount `json:"mercado_pago,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StripSensitive devolve uma cópia sem o sub-objeto de pagamento,
// que é o formato persistido localmente.
func (c Company) StripSensitive() Company {
	c.MercadoPago = nil
	return c
}

// PaymentLinked indica se a empresa tem conta de pagamento vinculada.
func (c Company) PaymentLinked() bool {
	return c.MercadoPago != nil && c.MercadoPago.Linked
}
