package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/QuaresmaHarygens/Talkam/models"
)

// NotificationParams filters the notification feed
type NotificationParams struct {
	Read  *bool
	Limit int
}

func (p NotificationParams) query() url.Values {
	q := url.Values{}
	if p.Read != nil {
		q.Set("read", strconv.FormatBool(*p.Read))
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	return q
}

// Notifications fetches the notification feed for the current user
func (c *Client) Notifications(ctx context.Context, params NotificationParams) ([]models.Notification, error) {
	var notifications []models.Notification
	if err := c.do(ctx, http.MethodGet, "/notifications", params.query(), nil, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

// MarkNotificationRead flips a single notification's read flag server-side
func (c *Client) MarkNotificationRead(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPost, "/notifications/"+url.PathEscape(id)+"/read", nil, nil, nil)
}

// UnreadCount returns the number of unread notifications
func (c *Client) UnreadCount(ctx context.Context) (int, error) {
	var resp models.UnreadCountResponse
	if err := c.do(ctx, http.MethodGet, "/notifications/unread/count", nil, nil, &resp); err != nil {
		return 0, err
	}
	return resp.Count, nil
}
