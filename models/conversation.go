package models

// ConversationUser carries the resolved identity of the counterpart in a
// conversation entry.
type ConversationUser struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	ProfilePhotoURL string `json:"profilePhotoUrl,omitempty"`
}

// LastMessage is the most recent message of a match, if any.
type LastMessage struct {
	Text      string `json:"text"`
	SenderID  string `json:"senderId"`
	CreatedAt string `json:"createdAt"`
}

// Conversation is the derived, per-user projection of one active match:
// counterpart identity plus the most recent message. It is never stored.
type Conversation struct {
	MatchID     string           `json:"matchId"`
	OtherUser   ConversationUser `json:"otherUser"`
	LastMessage *LastMessage     `json:"lastMessage"`
	CreatedAt   string           `json:"createdAt"`
}
