package payment

import (
	"context"

	"github.com/uturns/booking-agent/internal/activity"
	"github.com/uturns/booking-agent/internal/mercadopago"
)

// Return processa a volta do checkout: o browser chega com
// payment_id, status e payment_type na query do redirect.
type Return struct {
	verifier *mercadopago.Verifier
	activity *activity.Dispatcher
}

func NewReturn(verifier *mercadopago.Verifier, act *activity.Dispatcher) *Return {
	return &Return{verifier: verifier, activity: act}
}

func (uc *Return) Execute(ctx context.Context, params mercadopago.ReturnParams) mercadopago.Result {
	result := uc.verifier.VerifyReturn(ctx, params)

	uc.activity.Dispatch(activity.Event{
		Kind:     "payment",
		Action:   "payment_return",
		Metadata: result,
	})

	return result
}
