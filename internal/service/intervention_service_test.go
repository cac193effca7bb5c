package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/taruapp/api-taru/internal/model"
)

func TestSelectInterventionLateNight(t *testing.T) {
	svc := NewInterventionService(nil)

	intervention := svc.SelectIntervention("late_night_usage", nil)
	assert.Equal(t, model.InterventionBreathing, intervention.Type)
	assert.Equal(t, "high", intervention.Priority)
}

func TestSelectInterventionHRVSpike(t *testing.T) {
	svc := NewInterventionService(nil)

	// Event type wins even when the latest check-in is intense
	intervention := svc.SelectIntervention("hrv_spike_detected", &model.CheckIn{Intensity: 9})
	assert.Equal(t, model.InterventionBreathing, intervention.Type)
	assert.Equal(t, "high", intervention.Priority)
}

func TestSelectInterventionHighIntensityCheckIn(t *testing.T) {
	svc := NewInterventionService(nil)

	intervention := svc.SelectIntervention("app_opened", &model.CheckIn{Intensity: 8})
	assert.Equal(t, model.InterventionLetter, intervention.Type)
	assert.Equal(t, "high", intervention.Priority)
}

func TestSelectInterventionDefaultsToJournal(t *testing.T) {
	svc := NewInterventionService(nil)

	intervention := svc.SelectIntervention("app_opened", &model.CheckIn{Intensity: 7})
	assert.Equal(t, model.InterventionJournal, intervention.Type)
	assert.Equal(t, "medium", intervention.Priority)

	intervention = svc.SelectIntervention("app_opened", nil)
	assert.Equal(t, model.InterventionJournal, intervention.Type)
	assert.Equal(t, "medium", intervention.Priority)
}

func TestFormatNotificationArchetypeCopy(t *testing.T) {
	svc := NewInterventionService(nil)

	notif := svc.FormatNotification(model.ArchetypeWarrior, model.Intervention{
		Type:     model.InterventionJournal,
		Priority: "medium",
	})

	assert.Equal(t, "TARU Moment", notif.Title)
	assert.Equal(t, "Warrior, pause and reflect. Your journal is ready.", notif.Body)
	assert.Equal(t, "journal", notif.Data["type"])
	assert.Equal(t, "medium", notif.Data["priority"])
	assert.Equal(t, "Warrior", notif.Data["archetype"])
}

func TestFormatNotificationFallbackBody(t *testing.T) {
	svc := NewInterventionService(nil)

	notif := svc.FormatNotification(model.Archetype("Unknown"), model.Intervention{
		Type:     model.InterventionBreathing,
		Priority: "high",
	})

	assert.Equal(t, "TARU Moment", notif.Title)
	assert.Equal(t, "Take a moment for yourself", notif.Body)
}

func TestGenerateContentCoversAllCategories(t *testing.T) {
	svc := NewInterventionService(nil)

	for _, archetype := range []model.Archetype{
		model.ArchetypeWarrior, model.ArchetypeSage, model.ArchetypeLover, model.ArchetypeSeeker,
	} {
		content := svc.generateContent(archetype)
		assert.Equal(t, archetype, content.Archetype)
		assert.Len(t, content.Categories, 4)
		assert.Contains(t, content.Categories, "letters")
		assert.Contains(t, content.Categories, "journal")
		assert.Contains(t, content.Categories, "gratitude")
		assert.Contains(t, content.Categories, "breathing")
		assert.Len(t, content.ArchetypeSpecific.Journal, 3)
		assert.Len(t, content.ArchetypeSpecific.Gratitude, 3)
	}
}
