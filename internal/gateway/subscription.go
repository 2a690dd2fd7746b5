package gateway

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// ===============================
// Assinatura da plataforma
// ===============================
//
// Todos ENGOLEM a falha: a tela de assinatura mostra "tente de novo".

type Subscription struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"company_id"`
	Plan      string    `json:"plan"`
	Status    string    `json:"status"`
	RenewsAt  time.Time `json:"renews_at"`
}

func (c *Client) CreateSubscription(ctx context.Context, companyID, plan string) *Subscription {
	body := map[string]string{"company_id": companyID, "plan": plan}

	var out Subscription
	if err := c.do(ctx, http.MethodPost, "/subscriptions", body, &out); err != nil {
		c.swallow("subscription.create", err)
		return nil
	}
	c.count("subscription.create", "ok")
	return &out
}

func (c *Client) CancelSubscription(ctx context.Context, subscriptionID string) *Subscription {
	path := fmt.Sprintf("/subscriptions/%s/cancel", subscriptionID)

	var out Subscription
	if err := c.do(ctx, http.MethodPatch, path, nil, &out); err != nil {
		c.swallow("subscription.cancel", err)
		return nil
	}
	c.count("subscription.cancel", "ok")
	return &out
}

func (c *Client) ReactivateSubscription(ctx context.Context, subscriptionID string) *Subscription {
	path := fmt.Sprintf("/subscriptions/%s/reactivate", subscriptionID)

	var out Subscription
	if err := c.do(ctx, http.MethodPatch, path, nil, &out); err != nil {
		c.swallow("subscription.reactivate", err)
		return nil
	}
	c.count("subscription.reactivate", "ok")
	return &out
}

func (c *Client) GetSubscription(ctx context.Context, companyID string) *Subscription {
	path := fmt.Sprintf("/companies/%s/subscription", companyID)

	var out Subscription
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		c.swallow("subscription.get", err)
		return nil
	}
	c.count("subscription.get", "ok")
	return &out
}
