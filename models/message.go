package models

// Message is one immutable entry in a match's ordered log. CreatedAt is
// server-assigned and doubles as the sort key, so messages within a match are
// totally ordered by it. SenderName is denormalized at write time.
type Message struct {
	MatchID    string `dynamodbav:"matchId" json:"matchId"`
	CreatedAt  string `dynamodbav:"createdAt" json:"createdAt"`
	MessageID  string `dynamodbav:"messageId" json:"messageId"`
	SenderID   string `dynamodbav:"senderId" json:"senderId"`
	SenderName string `dynamodbav:"senderName" json:"senderName"`
	Text       string `dynamodbav:"text" json:"text"`
}

// MessagesTable is the DynamoDB table name for chat messages
const MessagesTable = "Messages"

// TimeSortFormat is the fixed-width UTC timestamp layout used for
// time-ordered sort keys. Zero-padded nanoseconds keep lexicographic order
// identical to chronological order, which RFC3339Nano does not (it drops
// trailing zeros, so a whole-second instant would sort after a fractional
// one).
const TimeSortFormat = "2006-01-02T15:04:05.000000000Z"

// MaxMessageLength caps message text, in runes.
const MaxMessageLength = 500
