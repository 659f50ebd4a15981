package services

import (
	"context"
	"errors"
	"testing"

	"sponsorlink_server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConversationFixture(t *testing.T) (*fakeDynamo, *ProfileService, *ChatService, *ConversationService) {
	t.Helper()
	dynamo := newFakeDynamo()
	profiles := newProfileService(dynamo)
	matches := &MatchService{Dynamo: dynamo, Profiles: profiles}
	chat := NewChatService(dynamo)
	conversations := &ConversationService{Matches: matches, Profiles: profiles, Chat: chat}
	return dynamo, profiles, chat, conversations
}

func seedMatch(t *testing.T, dynamo *fakeDynamo, matchID, sponsorID, athleteID, createdAt string) models.Match {
	t.Helper()
	match := models.Match{
		PairKey:      models.BuildPairKey(sponsorID, athleteID),
		MatchID:      matchID,
		Participants: []string{sponsorID, athleteID},
		SponsorID:    sponsorID,
		AthleteID:    athleteID,
		SponsorName:  "Stored Sponsor",
		AthleteName:  "Stored Athlete",
		Status:       models.MatchStatusActive,
		CreatedAt:    createdAt,
	}
	require.NoError(t, dynamo.PutItem(context.Background(), models.MatchesTable, match))
	return match
}

func TestListConversationsOrderAndCounterpart(t *testing.T) {
	dynamo, profiles, chat, conversations := newConversationFixture(t)
	seedSponsor(t, dynamo, profiles, "sponsor-1")
	seedAthlete(t, dynamo, profiles, "athlete-1")
	seedAthlete(t, dynamo, profiles, "athlete-2")

	older := seedMatch(t, dynamo, "match-old", "sponsor-1", "athlete-1", "2026-01-01T00:00:00Z")
	newer := seedMatch(t, dynamo, "match-new", "sponsor-1", "athlete-2", "2026-02-01T00:00:00Z")

	_, err := chat.AppendMessage(context.Background(), older.MatchID, "athlete-1", "Jordan Reed", "hello")
	require.NoError(t, err)

	list, err := conversations.ListConversations(context.Background(), "sponsor-1")
	require.NoError(t, err)

	require.Len(t, list, 2)
	assert.Equal(t, newer.MatchID, list[0].MatchID, "newest match first")
	assert.Equal(t, older.MatchID, list[1].MatchID)

	// Counterpart identity resolved from the live profile, not the match.
	assert.Equal(t, "athlete-1", list[1].OtherUser.ID)
	assert.Equal(t, "Jordan Reed", list[1].OtherUser.Name)
	assert.NotEmpty(t, list[1].OtherUser.ProfilePhotoURL)

	require.NotNil(t, list[1].LastMessage)
	assert.Equal(t, "hello", list[1].LastMessage.Text)
	assert.Nil(t, list[0].LastMessage, "match without messages has no last message")
}

func TestListConversationsDeduplicatesPairs(t *testing.T) {
	dynamo, profiles, _, conversations := newConversationFixture(t)
	seedSponsor(t, dynamo, profiles, "sponsor-1")
	seedAthlete(t, dynamo, profiles, "athlete-1")

	// Two rows for the same pair can predate the conditional-write scheme.
	// The fake keys matches by pairKey, so store the duplicate under a
	// synthetic key to simulate the legacy duplicate row.
	seedMatch(t, dynamo, "match-dupe-old", "sponsor-1", "athlete-1", "2026-01-01T00:00:00Z")
	duplicate := models.Match{
		PairKey:      "legacy#duplicate",
		MatchID:      "match-dupe-new",
		Participants: []string{"sponsor-1", "athlete-1"},
		SponsorID:    "sponsor-1",
		AthleteID:    "athlete-1",
		SponsorName:  "Stored Sponsor",
		AthleteName:  "Stored Athlete",
		Status:       models.MatchStatusActive,
		CreatedAt:    "2026-03-01T00:00:00Z",
	}
	require.NoError(t, dynamo.PutItem(context.Background(), models.MatchesTable, duplicate))

	list, err := conversations.ListConversations(context.Background(), "sponsor-1")
	require.NoError(t, err)

	require.Len(t, list, 1, "one entry per counterpart")
	assert.Equal(t, "match-dupe-new", list[0].MatchID, "most recent match wins")
}

func TestListConversationsFallsBackToStoredName(t *testing.T) {
	dynamo, profiles, _, conversations := newConversationFixture(t)
	seedSponsor(t, dynamo, profiles, "sponsor-1")
	// athlete-1 has no profile record.
	seedMatch(t, dynamo, "match-1", "sponsor-1", "athlete-1", "2026-01-01T00:00:00Z")

	list, err := conversations.ListConversations(context.Background(), "sponsor-1")
	require.NoError(t, err)

	require.Len(t, list, 1)
	assert.Equal(t, "Stored Athlete", list[0].OtherUser.Name)
	assert.Empty(t, list[0].OtherUser.ProfilePhotoURL)
}

func TestListConversationsDegradesOnMessageFailure(t *testing.T) {
	dynamo, profiles, _, conversations := newConversationFixture(t)
	seedSponsor(t, dynamo, profiles, "sponsor-1")
	seedAthlete(t, dynamo, profiles, "athlete-1")
	seedMatch(t, dynamo, "match-1", "sponsor-1", "athlete-1", "2026-01-01T00:00:00Z")

	dynamo.failTable[models.MessagesTable] = errors.New("messages table unavailable")

	list, err := conversations.ListConversations(context.Background(), "sponsor-1")
	require.NoError(t, err, "a last-message failure never aborts the listing")

	require.Len(t, list, 1)
	assert.Nil(t, list[0].LastMessage)
}

func TestListConversationsSkipsInactiveMatches(t *testing.T) {
	dynamo, profiles, _, conversations := newConversationFixture(t)
	seedSponsor(t, dynamo, profiles, "sponsor-1")
	seedAthlete(t, dynamo, profiles, "athlete-1")

	match := seedMatch(t, dynamo, "match-1", "sponsor-1", "athlete-1", "2026-01-01T00:00:00Z")
	match.Status = "closed"
	require.NoError(t, dynamo.PutItem(context.Background(), models.MatchesTable, match))

	list, err := conversations.ListConversations(context.Background(), "sponsor-1")
	require.NoError(t, err)
	assert.Empty(t, list)
}
