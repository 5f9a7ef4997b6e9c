package client

import (
	"context"
	"net/http"

	"bookit/models"
)

// ValidatePromoCode checks a code against the pre-tax subtotal and returns
// the discount terms. A rejected or expired code comes back as *APIError
// carrying the server's message.
func (c *Client) ValidatePromoCode(ctx context.Context, code string, amount float64) (*models.PromoCodeData, error) {
	req := models.PromoCodeRequest{Code: code, Amount: amount}

	var data models.PromoCodeData
	if err := c.do(ctx, http.MethodPost, "/promo/validate", nil, req, &data); err != nil {
		return nil, err
	}
	return &data, nil
}
