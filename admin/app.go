// Package admin is the analytics dashboard gateway: KPI, heatmap, category
// and time-series views plus report verification and alert broadcast, all
// backed by the remote Talkam API and guarded by a gateway session token.
package admin

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"

	"github.com/gorilla/mux"

	"github.com/QuaresmaHarygens/Talkam/client"
	"github.com/QuaresmaHarygens/Talkam/config"
	"github.com/QuaresmaHarygens/Talkam/session"
)

// App stores the router and the upstream client, so it can be reused
type App struct {
	Router *mux.Router
	Config config.Config
	API    *client.Client
}

// Initialize wires the upstream client and builds the router
func (a *App) Initialize() error {
	tokens, err := session.NewFileTokenStore(filepath.Join(a.Config.DataDir, "admin"))
	if err != nil {
		return fmt.Errorf("failed to initialize token store: %w", err)
	}
	a.API = client.New(a.Config.APIBaseURL, client.WithTokenStore(tokens))
	a.Router = a.New()
	return nil
}

// New creates a new mux router and all the routes
func (a *App) New() *mux.Router {
	SetupGoGuardian()

	r := mux.NewRouter()

	auth := Auth{API: a.API}
	d := Dashboards{API: a.API}
	rep := Reports{API: a.API}
	al := Alerts{API: a.API}

	// healthchex
	r.HandleFunc("/health", healthCheckHandler)

	r.HandleFunc("/auth/login", auth.LoginHandler).Methods("POST")
	r.Handle("/auth/logout", Middleware(http.HandlerFunc(RevokeToken))).Methods("DELETE")

	r.Handle("/dashboard/analytics", Middleware(http.HandlerFunc(d.AnalyticsHandler))).Methods("GET")
	r.Handle("/dashboard/heatmap", Middleware(http.HandlerFunc(d.HeatmapHandler))).Methods("GET")
	r.Handle("/dashboard/category-insights", Middleware(http.HandlerFunc(d.CategoryInsightsHandler))).Methods("GET")
	r.Handle("/dashboard/time-series", Middleware(http.HandlerFunc(d.TimeSeriesHandler))).Methods("GET")

	r.Handle("/reports", Middleware(http.HandlerFunc(rep.ListHandler))).Methods("GET")
	r.Handle("/reports/{id}", Middleware(http.HandlerFunc(rep.GetHandler))).Methods("GET")
	r.Handle("/reports/{id}/verify", Middleware(http.HandlerFunc(rep.VerifyHandler))).Methods("POST")

	r.Handle("/alerts/broadcast", Middleware(http.HandlerFunc(al.BroadcastHandler))).Methods("POST")

	return r
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, `{"alive": true}`)
}
