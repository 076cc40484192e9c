// Package store is the in-memory session state container shared by the
// gateway handlers and the terminal portal. It is an explicit, injectable
// object: no package-level state, every view gets the same *Store handed to
// it at construction.
package store

import (
	"sync"

	"github.com/QuaresmaHarygens/Talkam/models"
)

// Store holds the session-scoped snapshot of remote data. All mutations are
// full replacements or prepend-style insertions; a later fetch fully
// supersedes prior state, there is no merge with server state.
type Store struct {
	mu            sync.Mutex
	user          models.User
	reports       []models.ReportSummary
	challenges    []models.Challenge
	notifications []models.Notification
	gens          map[string]uint64
}

// New creates an empty Store
func New() *Store {
	return &Store{gens: make(map[string]uint64)}
}

// SetUser replaces the current session identity
func (s *Store) SetUser(user models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
}

// User returns the current session identity
func (s *Store) User() models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// NextGen tags a new request for the given query key with a monotonically
// increasing generation. Responses applied with an older generation for the
// same key are discarded, so two in-flight fetches cannot leave the list in
// whichever-finished-last order.
func (s *Store) NextGen(queryKey string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gens[queryKey]++
	return s.gens[queryKey]
}

// SetReportsAt replaces the report list if gen is still the latest
// dispatched generation for queryKey. Returns false when the response is
// stale and was dropped.
func (s *Store) SetReportsAt(queryKey string, gen uint64, reports []models.ReportSummary) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen < s.gens[queryKey] {
		return false
	}
	s.reports = reports
	return true
}

// SetReports replaces the report list unconditionally
func (s *Store) SetReports(reports []models.ReportSummary) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reports = reports
}

// AddReport prepends one report to the list
func (s *Store) AddReport(report models.ReportSummary) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reports = append([]models.ReportSummary{report}, s.reports...)
}

// Reports returns the current report list
func (s *Store) Reports() []models.ReportSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reports
}

// SetChallenges replaces the challenge list
func (s *Store) SetChallenges(challenges []models.Challenge) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.challenges = challenges
}

// AddChallenge prepends one challenge to the list
func (s *Store) AddChallenge(challenge models.Challenge) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.challenges = append([]models.Challenge{challenge}, s.challenges...)
}

// Challenges returns the current challenge list
func (s *Store) Challenges() []models.Challenge {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.challenges
}

// SetNotifications replaces the notification list
func (s *Store) SetNotifications(notifications []models.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications = notifications
}

// Notifications returns the current notification list
func (s *Store) Notifications() []models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.notifications
}

// MarkNotificationRead flips read to true on the notification with the
// matching id, leaving every other entry untouched
func (s *Store) MarkNotificationRead(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	updated := make([]models.Notification, len(s.notifications))
	for i, n := range s.notifications {
		if n.ID == id {
			n.Read = true
		}
		updated[i] = n
	}
	s.notifications = updated
}
