package service

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/taruapp/api-taru/internal/model"
)

const interventionCacheTTL = time.Hour

// InterventionService serves archetype-tailored intervention content and
// selects interventions in response to trigger events.
type InterventionService struct {
	rdb *redis.Client
}

func NewInterventionService(rdb *redis.Client) *InterventionService {
	return &InterventionService{rdb: rdb}
}

func interventionCacheKey(archetype model.Archetype) string {
	return "interventions:" + string(archetype)
}

// GetInterventions returns the content bundle for an archetype, read-through
// cached in Redis for an hour. Cache failures degrade to generation.
func (s *InterventionService) GetInterventions(ctx context.Context, archetype model.Archetype) (*model.InterventionContent, error) {
	key := interventionCacheKey(archetype)

	if cached, err := s.rdb.Get(ctx, key).Result(); err == nil {
		var content model.InterventionContent
		if err := json.Unmarshal([]byte(cached), &content); err == nil {
			return &content, nil
		}
	}

	content := s.generateContent(archetype)

	if data, err := json.Marshal(content); err == nil {
		if err := s.rdb.Set(ctx, key, data, interventionCacheTTL).Err(); err != nil {
			log.Printf("⚠️  Failed to cache interventions for %s: %v", archetype, err)
		}
	}

	return content, nil
}

// SelectIntervention picks an intervention for a trigger. Late-night and HRV
// spike events always get breathing work; a recent high-intensity check-in
// escalates to a loved-one letter; everything else defaults to journaling.
func (s *InterventionService) SelectIntervention(eventType string, recentCheckIn *model.CheckIn) model.Intervention {
	if strings.Contains(eventType, "late_night") || strings.Contains(eventType, "hrv_spike") {
		return model.Intervention{Type: model.InterventionBreathing, Priority: "high"}
	}

	if recentCheckIn != nil && recentCheckIn.Intensity > 7 {
		return model.Intervention{Type: model.InterventionLetter, Priority: "high"}
	}

	return model.Intervention{Type: model.InterventionJournal, Priority: "medium"}
}

// FormatNotification builds the push payload for an intervention, worded for
// the user's archetype.
func (s *InterventionService) FormatNotification(archetype model.Archetype, intervention model.Intervention) model.Notification {
	body := "Take a moment for yourself"
	if messages, ok := archetypeMessages[archetype]; ok {
		if msg, ok := messages[intervention.Type]; ok {
			body = msg
		}
	}

	return model.Notification{
		Title: "TARU Moment",
		Body:  body,
		Data: map[string]string{
			"type":      string(intervention.Type),
			"priority":  intervention.Priority,
			"archetype": string(archetype),
		},
	}
}

func (s *InterventionService) generateContent(archetype model.Archetype) *model.InterventionContent {
	specific, ok := archetypePrompts[archetype]
	if !ok {
		specific = archetypePrompts[model.ArchetypeSeeker]
	}

	return &model.InterventionContent{
		Archetype: archetype,
		Categories: map[string]model.InterventionCategory{
			"letters": {
				Title:       "Loved One Letters",
				Description: "Messages from people who care about you",
			},
			"journal": {
				Title:       "Wilderness Journal",
				Description: "Reflective prompts for self-discovery",
			},
			"gratitude": {
				Title:       "Gratitude Rituals",
				Description: "Practices to cultivate appreciation",
			},
			"breathing": {
				Title:       "Nervous System Resets",
				Description: "Breathwork and physiological techniques",
			},
		},
		ArchetypeSpecific: specific,
	}
}

var archetypeMessages = map[model.Archetype]map[model.InterventionType]string{
	model.ArchetypeWarrior: {
		model.InterventionLetter:    "Take a breath, Warrior – your Loved One letter awaits",
		model.InterventionJournal:   "Warrior, pause and reflect. Your journal is ready.",
		model.InterventionBreathing: "Ground yourself, Warrior. Time for a reset.",
		model.InterventionGratitude: "Warrior, acknowledge your victories today.",
	},
	model.ArchetypeSage: {
		model.InterventionLetter:    "Wise one, a message from your loved ones calls to you",
		model.InterventionJournal:   "Sage, what wisdom will you uncover today?",
		model.InterventionBreathing: "Center yourself, Sage. Find your calm.",
		model.InterventionGratitude: "Sage, reflect on today's lessons with gratitude.",
	},
	model.ArchetypeLover: {
		model.InterventionLetter:    "Your heart knows the way – a letter from your loved ones",
		model.InterventionJournal:   "Lover, connect with your feelings through journaling",
		model.InterventionBreathing: "Breathe into your heart space, Lover",
		model.InterventionGratitude: "Lover, celebrate the connections in your life",
	},
	model.ArchetypeSeeker: {
		model.InterventionLetter:    "Seeker, discover a message meant for you",
		model.InterventionJournal:   "Seeker, explore your inner landscape",
		model.InterventionBreathing: "Seeker, find stillness in this moment",
		model.InterventionGratitude: "Seeker, appreciate the journey itself",
	},
}

var archetypePrompts = map[model.Archetype]model.ArchetypeSpecificContent{
	model.ArchetypeWarrior: {
		Journal: []string{
			"What battle are you fighting today, and what strength will you draw upon?",
			"Describe a moment when you stood your ground. What made you strong?",
			"How can you channel your warrior energy into protecting what matters most?",
		},
		Gratitude: []string{
			"Name three victories, no matter how small, from today.",
			"Who fought alongside you today? Express gratitude for their support.",
			"What challenge taught you something valuable?",
		},
	},
	model.ArchetypeSage: {
		Journal: []string{
			"What wisdom have you gained from today's experiences?",
			"Reflect on a pattern you've noticed. What does it teach you?",
			"How can you use your understanding to guide others?",
		},
		Gratitude: []string{
			"What lesson are you grateful for today?",
			"Acknowledge the teachers in your life, past and present.",
			"What knowledge or insight enriched your day?",
		},
	},
	model.ArchetypeLover: {
		Journal: []string{
			"What brought you joy or connection today?",
			"Describe a moment when you felt truly present with someone.",
			"How did you express care for yourself or others?",
		},
		Gratitude: []string{
			"Who made you feel seen and valued today?",
			"What beauty did you encounter?",
			"Express appreciation for a relationship that sustains you.",
		},
	},
	model.ArchetypeSeeker: {
		Journal: []string{
			"What are you searching for right now?",
			"Describe a moment of curiosity or wonder from today.",
			"What new path or possibility are you exploring?",
		},
		Gratitude: []string{
			"What discovery or insight surprised you today?",
			"Acknowledge the journey, not just the destination.",
			"What opportunity for growth are you grateful for?",
		},
	},
}
