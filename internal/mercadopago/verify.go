// Package mercadopago verifica o retorno de pagamento: quando o browser
// volta do checkout com payment_id/status/payment_type na query, o
// agente consulta o pagamento direto no provedor antes de confiar.
package mercadopago

import (
	"context"
	"log"
	"strconv"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	mppayment "github.com/mercadopago/sdk-go/pkg/payment"
)

type ReturnParams struct {
	PaymentID   string
	Status      string
	PaymentType string
}

type Result struct {
	PaymentID    string  `json:"payment_id"`
	Status       string  `json:"status"`
	StatusDetail string  `json:"status_detail,omitempty"`
	PaymentType  string  `json:"payment_type"`
	Amount       float64 `json:"amount,omitempty"`

	// Verified indica que o status veio do provedor, não da query.
	Verified bool `json:"verified"`
}

type Verifier struct {
	payments mppayment.Client
}

// NewVerifier devolve nil quando não há token configurado; o retorno
// passa a valer pelo que veio na query, sem verificação.
func NewVerifier(accessToken string) *Verifier {
	if accessToken == "" {
		return nil
	}

	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		log.Printf("mercadopago: token inválido, retorno sem verificação: %v", err)
		return nil
	}

	return &Verifier{payments: mppayment.NewClient(cfg)}
}

// VerifyReturn consulta o pagamento no provedor. Qualquer falha é
// logada e o resultado cai no que a query trouxe (não verificado).
func (v *Verifier) VerifyReturn(ctx context.Context, params ReturnParams) Result {
	unverified := Result{
		PaymentID:   params.PaymentID,
		Status:      params.Status,
		PaymentType: params.PaymentType,
	}

	if v == nil {
		return unverified
	}

	id, err := strconv.Atoi(params.PaymentID)
	if err != nil {
		log.Printf("mercadopago: payment_id inválido %q", params.PaymentID)
		return unverified
	}

	resource, err := v.payments.Get(ctx, id)
	if err != nil {
		log.Printf("mercadopago: consulta do pagamento %d falhou: %v", id, err)
		return unverified
	}

	return Result{
		PaymentID:    params.PaymentID,
		Status:       resource.Status,
		StatusDetail: resource.StatusDetail,
		PaymentType:  resource.PaymentTypeID,
		Amount:       resource.TransactionAmount,
		Verified:     true,
	}
}
