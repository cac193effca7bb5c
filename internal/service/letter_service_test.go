package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taruapp/api-taru/internal/model"
	"github.com/taruapp/api-taru/internal/repository"
)

func TestLetterOwnershipScoping(t *testing.T) {
	db := newTestDB(t)
	alice := seedUser(t, db, model.ArchetypeWarrior)
	bob := seedUser(t, db, model.ArchetypeSage)
	svc := NewLetterService(repository.NewLetterRepository(db))

	letter, err := svc.CreateLetter(alice.ID, model.CreateLetterRequest{
		Recipient: "Mom",
		Content:   "I miss you.",
	})
	require.NoError(t, err)

	// Owner can read it
	found, err := svc.GetLetter(letter.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mom", found.Recipient)

	// Another user's read, update and delete all come back not found
	_, err = svc.GetLetter(letter.ID, bob.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.UpdateLetter(letter.ID, bob.ID, model.UpdateLetterRequest{Content: "hijacked"})
	assert.ErrorIs(t, err, ErrNotFound)

	err = svc.DeleteLetter(letter.ID, bob.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateLetterStampsDelivery(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, model.ArchetypeLover)
	svc := NewLetterService(repository.NewLetterRepository(db))

	letter, err := svc.CreateLetter(user.ID, model.CreateLetterRequest{
		Recipient: "Future me",
		Content:   "Keep going.",
		AudioURL:  "https://media.taru.local/letters/audio/abc.m4a",
	})
	require.NoError(t, err)
	assert.False(t, letter.IsDelivered)
	assert.Nil(t, letter.DeliveredAt)

	delivered := true
	updated, err := svc.UpdateLetter(letter.ID, user.ID, model.UpdateLetterRequest{IsDelivered: &delivered})
	require.NoError(t, err)
	assert.True(t, updated.IsDelivered)
	require.NotNil(t, updated.DeliveredAt)

	firstDelivery := *updated.DeliveredAt

	// Marking delivered again keeps the original timestamp
	again, err := svc.UpdateLetter(letter.ID, user.ID, model.UpdateLetterRequest{IsDelivered: &delivered})
	require.NoError(t, err)
	require.NotNil(t, again.DeliveredAt)
	assert.Equal(t, firstDelivery.Unix(), again.DeliveredAt.Unix())
}
