package services

import (
	"context"
	"log"
	"sort"

	"sponsorlink_server/models"
)

// ConversationService is the conversation index: one entry per active match
// of the requesting user, with counterpart identity and last message. A
// failure resolving a single entry degrades that entry instead of aborting
// the listing.
type ConversationService struct {
	Matches  *MatchService
	Profiles *ProfileService
	Chat     *ChatService
}

// ListConversations returns the user's conversations, deduplicated by
// unordered participant pair (newest match wins on collision) and sorted
// newest match first.
func (cs *ConversationService) ListConversations(ctx context.Context, userID string) ([]models.Conversation, error) {
	matches, err := cs.Matches.ListMatchesForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	unique := make(map[string]models.Match)
	for _, match := range matches {
		key := models.BuildPairKey(userID, match.Counterpart(userID))
		if kept, ok := unique[key]; !ok || match.CreatedAt > kept.CreatedAt {
			unique[key] = match
		}
	}

	conversations := make([]models.Conversation, 0, len(unique))
	for _, match := range unique {
		conversations = append(conversations, cs.buildConversation(ctx, userID, match))
	}

	sort.Slice(conversations, func(i, j int) bool {
		return conversations[i].CreatedAt > conversations[j].CreatedAt
	})
	return conversations, nil
}

func (cs *ConversationService) buildConversation(ctx context.Context, userID string, match models.Match) models.Conversation {
	otherID := match.Counterpart(userID)

	other := models.ConversationUser{ID: otherID}
	if profile, err := cs.Profiles.GetProfile(ctx, otherID); err == nil {
		other.Name = profile.DisplayName()
		other.ProfilePhotoURL = profile.ImageURL()
	} else {
		// Counterpart profile did not resolve; fall back to the name
		// denormalized at match creation.
		log.Printf("falling back to stored name for user %s in match %s: %v", otherID, match.MatchID, err)
		other.Name = match.CounterpartName(userID)
	}

	conversation := models.Conversation{
		MatchID:   match.MatchID,
		OtherUser: other,
		CreatedAt: match.CreatedAt,
	}

	last, err := cs.Chat.LastMessage(ctx, match.MatchID)
	if err != nil {
		log.Printf("failed to fetch last message for match %s: %v", match.MatchID, err)
		return conversation
	}
	if last != nil {
		conversation.LastMessage = &models.LastMessage{
			Text:      last.Text,
			SenderID:  last.SenderID,
			CreatedAt: last.CreatedAt,
		}
	}
	return conversation
}
