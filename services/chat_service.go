package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"sponsorlink_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// ChatService is the message log: append-only ordered messages per match plus
// a live full-snapshot subscription.
type ChatService struct {
	Dynamo DynamoAPI
	hub    *messageHub
	now    func() time.Time
}

// NewChatService wires the chat service and its subscription hub.
func NewChatService(dynamo DynamoAPI) *ChatService {
	return &ChatService{Dynamo: dynamo, hub: newMessageHub(), now: time.Now}
}

// AppendMessage appends one immutable message with a server-assigned
// timestamp and publishes the refreshed snapshot to subscribers.
func (s *ChatService) AppendMessage(ctx context.Context, matchID, senderID, senderName, text string) (*models.Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, models.NewValidationError("text", "message text cannot be empty")
	}
	if utf8.RuneCountInString(text) > models.MaxMessageLength {
		return nil, models.NewValidationError("text", fmt.Sprintf("message text cannot exceed %d characters", models.MaxMessageLength))
	}

	message := models.Message{
		MatchID:    matchID,
		MessageID:  uuid.NewString(),
		SenderID:   senderID,
		SenderName: senderName,
		Text:       text,
	}

	// createdAt doubles as the sort key, so two appends landing on the same
	// nanosecond would collide on the (matchId, createdAt) primary key. The
	// conditional put detects that and retakes the timestamp rather than
	// overwriting the earlier message.
	for attempt := 0; ; attempt++ {
		message.CreatedAt = s.now().UTC().Format(models.TimeSortFormat)
		err := s.Dynamo.PutItemConditional(ctx, models.MessagesTable, message, "attribute_not_exists(createdAt)")
		if err == nil {
			break
		}
		if errors.Is(err, models.ErrConditionFailed) && attempt < 3 {
			continue
		}
		return nil, fmt.Errorf("failed to store message: %w", err)
	}

	// Best effort: a failed refresh only delays subscribers until the next
	// append.
	if snapshot, err := s.ListMessages(ctx, matchID); err == nil {
		s.hub.publish(matchID, snapshot)
	}

	return &message, nil
}

// ListMessages returns the full ordered log of a match, ascending by
// createdAt.
func (s *ChatService) ListMessages(ctx context.Context, matchID string) ([]models.Message, error) {
	items, err := s.Dynamo.QueryItems(ctx, models.MessagesTable,
		"#matchId = :matchId",
		map[string]types.AttributeValue{
			":matchId": &types.AttributeValueMemberS{Value: matchID},
		},
		map[string]string{"#matchId": "matchId"},
		0,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch messages: %w", err)
	}

	var messages []models.Message
	if err := attributevalue.UnmarshalListOfMaps(items, &messages); err != nil {
		return nil, fmt.Errorf("failed to parse messages: %w", err)
	}

	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].CreatedAt < messages[j].CreatedAt
	})
	return messages, nil
}

// LastMessage returns the most recent message of a match, or nil when the
// log is empty.
func (s *ChatService) LastMessage(ctx context.Context, matchID string) (*models.Message, error) {
	items, err := s.Dynamo.QueryItemsWithOptions(ctx, models.MessagesTable,
		"#matchId = :matchId",
		map[string]types.AttributeValue{
			":matchId": &types.AttributeValueMemberS{Value: matchID},
		},
		map[string]string{"#matchId": "matchId"},
		1, true,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch last message: %w", err)
	}
	if len(items) == 0 {
		return nil, nil
	}

	var message models.Message
	if err := attributevalue.UnmarshalMap(items[0], &message); err != nil {
		return nil, fmt.Errorf("failed to parse last message: %w", err)
	}
	return &message, nil
}

// Subscribe returns a channel of full ordered snapshots for matchID and a
// cancel function. The channel is closed on cancel. Rapid successive appends
// may coalesce: a slow consumer always observes the latest snapshot.
func (s *ChatService) Subscribe(matchID string) (<-chan []models.Message, func()) {
	return s.hub.subscribe(matchID)
}
