package event

import (
	"testing"
	"time"

	"github.com/kashoe/chessclub-api/internal/pkg/isotime"
	"github.com/stretchr/testify/assert"
)

func TestNewStartsUpcoming(t *testing.T) {
	date := time.Date(2025, 7, 12, 9, 0, 0, 0, time.FixedZone("EAT", 3*3600))
	now := time.Now()

	e := New("e1", CreateInput{
		Title:       "Junior Open",
		Description: "Rapid tournament",
		EventDate:   &isotime.Time{Time: date},
		Location:    "Nairobi",
	}, now)

	assert.Equal(t, StatusUpcoming, e.Status)
	assert.Equal(t, 0, e.CurrentParticipants)
	assert.Nil(t, e.MaxParticipants)
	assert.True(t, e.EventDate.Equal(date))
	assert.Equal(t, time.UTC, e.EventDate.Location())
}

func TestStatusValid(t *testing.T) {
	for _, s := range []Status{StatusUpcoming, StatusOngoing, StatusCompleted, StatusCancelled} {
		assert.True(t, s.Valid(), s)
	}
	assert.False(t, Status("postponed").Valid())
}
