// Package web is the citizen-facing gateway: it renders session, report,
// challenge, notification and draft data as JSON over HTTP and invokes the
// typed API client on user actions. All business logic stays behind the
// remote Talkam API.
package web

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"

	"github.com/gorilla/mux"

	"github.com/QuaresmaHarygens/Talkam/client"
	"github.com/QuaresmaHarygens/Talkam/config"
	"github.com/QuaresmaHarygens/Talkam/drafts"
	"github.com/QuaresmaHarygens/Talkam/session"
	"github.com/QuaresmaHarygens/Talkam/store"
	talkamsync "github.com/QuaresmaHarygens/Talkam/sync"
)

// App stores the router and the shared client-side state, so it can be
// reused across handlers
type App struct {
	Router *mux.Router
	Config config.Config
	API    *client.Client
	Store  *store.Store
	Drafts *drafts.Store
	Syncer *talkamsync.Syncer
}

// Initialize wires the token store, API client, state container, offline
// draft store and background draft sync, then builds the router
func (a *App) Initialize() error {
	tokens, err := session.NewFileTokenStore(a.Config.DataDir)
	if err != nil {
		return fmt.Errorf("failed to initialize token store: %w", err)
	}
	a.API = client.New(a.Config.APIBaseURL, client.WithTokenStore(tokens))
	a.Store = store.New()

	draftStore, err := drafts.Open(filepath.Join(a.Config.DataDir, "drafts.db"))
	if err != nil {
		return fmt.Errorf("failed to open draft store: %w", err)
	}
	a.Drafts = draftStore

	a.Syncer = talkamsync.New(a.API, a.Drafts)
	a.Syncer.Start()

	a.Router = a.New()
	return nil
}

// New creates a new mux router and all the routes
func (a *App) New() *mux.Router {
	r := mux.NewRouter()

	s := Session{API: a.API, Store: a.Store, DataDir: a.Config.DataDir}
	rep := Reports{API: a.API, Store: a.Store, Drafts: a.Drafts}
	ch := Challenges{API: a.API, Store: a.Store}
	n := Notifications{API: a.API, Store: a.Store}
	d := Drafts{API: a.API, Drafts: a.Drafts, Syncer: a.Syncer}

	// healthchex
	r.HandleFunc("/health", healthCheckHandler)

	r.HandleFunc("/session/login", s.LoginHandler).Methods("POST")
	r.HandleFunc("/session/register", s.RegisterHandler).Methods("POST")
	r.HandleFunc("/session/anonymous", s.AnonymousHandler).Methods("POST")
	r.HandleFunc("/session/logout", s.LogoutHandler).Methods("POST")
	r.HandleFunc("/session", s.CurrentHandler).Methods("GET")

	r.HandleFunc("/reports", rep.ListHandler).Methods("GET")
	r.HandleFunc("/reports", rep.CreateHandler).Methods("POST")
	r.HandleFunc("/reports/{id}", rep.GetHandler).Methods("GET")
	r.HandleFunc("/reports/{id}/verify", rep.VerifyHandler).Methods("POST")
	r.HandleFunc("/track/{reportId}", rep.TrackHandler).Methods("GET")

	r.HandleFunc("/challenges", ch.ListHandler).Methods("GET")
	r.HandleFunc("/challenges", ch.CreateHandler).Methods("POST")
	r.HandleFunc("/challenges/{id}", ch.GetHandler).Methods("GET")
	r.HandleFunc("/challenges/{id}/join", ch.JoinHandler).Methods("POST")

	r.HandleFunc("/notifications", n.ListHandler).Methods("GET")
	r.HandleFunc("/notifications/{id}/read", n.MarkReadHandler).Methods("POST")
	r.HandleFunc("/ws/notifications", n.StreamHandler)

	r.HandleFunc("/drafts", d.ListHandler).Methods("GET")
	r.HandleFunc("/drafts", d.SaveHandler).Methods("POST")
	r.HandleFunc("/drafts/{id}", d.DeleteHandler).Methods("DELETE")
	r.HandleFunc("/drafts/{id}/submit", d.SubmitHandler).Methods("POST")
	r.HandleFunc("/drafts/sync", d.SyncHandler).Methods("POST")

	return r
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, `{"alive": true}`)
}
