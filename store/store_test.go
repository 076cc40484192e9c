package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/QuaresmaHarygens/Talkam/models"
	"github.com/QuaresmaHarygens/Talkam/store"
)

func TestStore_UserRoundTrip(t *testing.T) {
	s := store.New()
	assert.Empty(t, s.User().ID)

	s.SetUser(models.User{ID: "u1", FullName: "Miatta Kollie"})
	assert.Equal(t, "u1", s.User().ID)
}

func TestStore_AddReportPrepends(t *testing.T) {
	s := store.New()
	s.SetReports([]models.ReportSummary{{ID: "old"}})
	s.AddReport(models.ReportSummary{ID: "new"})

	reports := s.Reports()
	if assert.Len(t, reports, 2) {
		assert.Equal(t, "new", reports[0].ID)
		assert.Equal(t, "old", reports[1].ID)
	}
}

func TestStore_StaleGenerationDiscarded(t *testing.T) {
	s := store.New()

	// two requests race on the same query key
	genA := s.NextGen("reports?county=Bong")
	genB := s.NextGen("reports?county=Bong")

	// the newer request finishes first
	assert.True(t, s.SetReportsAt("reports?county=Bong", genB, []models.ReportSummary{{ID: "fresh"}}))

	// the older response arrives late and must not overwrite
	assert.False(t, s.SetReportsAt("reports?county=Bong", genA, []models.ReportSummary{{ID: "stale"}}))

	reports := s.Reports()
	if assert.Len(t, reports, 1) {
		assert.Equal(t, "fresh", reports[0].ID)
	}
}

func TestStore_GenerationsAreKeyScoped(t *testing.T) {
	s := store.New()

	gen := s.NextGen("reports?county=Bong")
	s.NextGen("reports?county=Lofa") // a different key never invalidates Bong

	assert.True(t, s.SetReportsAt("reports?county=Bong", gen, []models.ReportSummary{{ID: "r1"}}))
}

func TestStore_MarkNotificationRead(t *testing.T) {
	s := store.New()
	s.SetNotifications([]models.Notification{
		{ID: "n1", Title: "report verified", Read: false},
		{ID: "n2", Title: "new alert", Read: false},
		{ID: "n3", Title: "challenge update", Read: true},
		{ID: "n4", Title: "weekly digest", Read: false},
	})

	s.MarkNotificationRead("n2")

	got := s.Notifications()
	if assert.Len(t, got, 4) {
		assert.False(t, got[0].Read)
		assert.True(t, got[1].Read)
		assert.True(t, got[2].Read)
		assert.False(t, got[3].Read)
		// everything else about the entry is untouched
		assert.Equal(t, "new alert", got[1].Title)
	}
}

func TestStore_MarkNotificationReadUnknownID(t *testing.T) {
	s := store.New()
	s.SetNotifications([]models.Notification{{ID: "n1"}})

	s.MarkNotificationRead("missing")
	got := s.Notifications()
	if assert.Len(t, got, 1) {
		assert.False(t, got[0].Read)
	}
}
