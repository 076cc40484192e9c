package web

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/QuaresmaHarygens/Talkam/client"
	"github.com/QuaresmaHarygens/Talkam/store"
)

// Notifications handles the notification feed views
type Notifications struct {
	API   *client.Client
	Store *store.Store
}

// ListHandler fetches the notification feed
func (n Notifications) ListHandler(w http.ResponseWriter, r *http.Request) {
	params := client.NotificationParams{}
	if raw := r.URL.Query().Get("read"); raw != "" {
		read, err := strconv.ParseBool(raw)
		if err == nil {
			params.Read = &read
		}
	}
	params.Limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))

	notifications, err := n.API.Notifications(r.Context(), params)
	if err != nil {
		upstreamError(w, "failed to fetch notifications", err)
		return
	}
	n.Store.SetNotifications(notifications)
	respondJSON(w, http.StatusOK, notifications)
}

// MarkReadHandler flips one notification's read flag server-side, then
// mirrors the change into the local snapshot
func (n Notifications) MarkReadHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := n.API.MarkNotificationRead(r.Context(), id); err != nil {
		upstreamError(w, "failed to mark notification read", err)
		return
	}
	n.Store.MarkNotificationRead(id)
	respondJSON(w, http.StatusOK, map[string]string{"message": "notification marked read"})
}
