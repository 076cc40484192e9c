package client

import (
	"context"
	"net/http"

	"github.com/QuaresmaHarygens/Talkam/models"
)

// BroadcastAlert dispatches an alert to the target counties. Requires an
// admin, government or NGO role; the server enforces this.
func (c *Client) BroadcastAlert(ctx context.Context, req models.AlertRequest) (*models.AlertResponse, error) {
	var resp models.AlertResponse
	if err := c.do(ctx, http.MethodPost, "/alerts/broadcast", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
