package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"sponsorlink_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// MatchService detects the mutual-like condition after a swipe and
// materializes each match exactly once. The Matches table is keyed by the
// sorted participant pair, so the final conditional put holds the
// one-active-match-per-pair invariant even when two reciprocal likes race:
// the loser of the race observes the winner's row instead of writing a
// duplicate.
type MatchService struct {
	Dynamo   DynamoAPI
	Profiles *ProfileService
}

// MatchResult reports the outcome of resolving one like action.
type MatchResult struct {
	Matched        bool          `json:"matched"`
	AlreadyMatched bool          `json:"alreadyMatched,omitempty"`
	Match          *models.Match `json:"match,omitempty"`
}

// ResolveMatch runs after actorID liked targetID. It short-circuits on an
// existing active match, checks reciprocity on both profiles, and creates the
// match when both likes sets contain each other. A like between two profiles
// of the same variant is not a domain error; it simply never produces a
// match.
func (ms *MatchService) ResolveMatch(ctx context.Context, actorID, targetID string) (*MatchResult, error) {
	pairKey := models.BuildPairKey(actorID, targetID)

	existing, err := ms.getActiveMatchByPair(ctx, pairKey)
	if err != nil && !errors.Is(err, models.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return &MatchResult{Matched: true, AlreadyMatched: true, Match: existing}, nil
	}

	actor, err := ms.Profiles.GetProfile(ctx, actorID)
	if err != nil {
		return nil, err
	}
	target, err := ms.Profiles.GetProfile(ctx, targetID)
	if err != nil {
		return nil, err
	}

	if actor.Role == target.Role {
		return &MatchResult{Matched: false}, nil
	}

	sponsor, athlete := actor, target
	if actor.Role == models.RoleAthlete {
		sponsor, athlete = target, actor
	}

	if !sponsor.LikedBy(athlete.ID()) || !athlete.LikedBy(sponsor.ID()) {
		return &MatchResult{Matched: false}, nil
	}

	match := models.Match{
		PairKey:      pairKey,
		MatchID:      uuid.NewString(),
		Participants: []string{sponsor.ID(), athlete.ID()},
		SponsorID:    sponsor.ID(),
		AthleteID:    athlete.ID(),
		SponsorName:  sponsor.DisplayName(),
		AthleteName:  athlete.DisplayName(),
		Status:       models.MatchStatusActive,
		CreatedAt:    time.Now().UTC().Format(models.TimeSortFormat),
	}

	err = ms.Dynamo.PutItemConditional(ctx, models.MatchesTable, match, "attribute_not_exists(pairKey)")
	if errors.Is(err, models.ErrConditionFailed) {
		// Concurrent reciprocal like created the match first.
		log.Printf("match for pair %s already created concurrently", pairKey)
		winner, lookupErr := ms.getActiveMatchByPair(ctx, pairKey)
		if lookupErr != nil {
			return nil, lookupErr
		}
		return &MatchResult{Matched: true, AlreadyMatched: true, Match: winner}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create match: %w", err)
	}

	log.Printf("created match %s between sponsor %s and athlete %s", match.MatchID, match.SponsorID, match.AthleteID)
	return &MatchResult{Matched: true, Match: &match}, nil
}

// GetMatchByID looks a match up through the MatchIdIndex GSI.
func (ms *MatchService) GetMatchByID(ctx context.Context, matchID string) (*models.Match, error) {
	items, err := ms.Dynamo.QueryItemsWithIndex(ctx, models.MatchesTable, models.MatchesMatchIDIndex,
		"matchId = :matchId",
		map[string]types.AttributeValue{
			":matchId": &types.AttributeValueMemberS{Value: matchID},
		}, nil, 1,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to look up match %s: %w", matchID, err)
	}
	if len(items) == 0 {
		return nil, models.ErrNotFound
	}

	var match models.Match
	if err := attributevalue.UnmarshalMap(items[0], &match); err != nil {
		return nil, fmt.Errorf("failed to unmarshal match: %w", err)
	}
	return &match, nil
}

// ListMatchesForUser returns the active matches userID participates in,
// querying both role GSIs since only one of them can hold the user.
func (ms *MatchService) ListMatchesForUser(ctx context.Context, userID string) ([]models.Match, error) {
	var matches []models.Match
	for _, q := range []struct {
		index   string
		keyAttr string
	}{
		{models.MatchesAthleteIndex, "athleteId"},
		{models.MatchesSponsorIndex, "sponsorId"},
	} {
		items, err := ms.Dynamo.QueryItemsWithIndex(ctx, models.MatchesTable, q.index,
			fmt.Sprintf("%s = :userId", q.keyAttr),
			map[string]types.AttributeValue{
				":userId": &types.AttributeValueMemberS{Value: userID},
			}, nil, 0,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to query matches for %s: %w", userID, err)
		}

		var page []models.Match
		if err := attributevalue.UnmarshalListOfMaps(items, &page); err != nil {
			return nil, fmt.Errorf("failed to unmarshal matches: %w", err)
		}
		for _, m := range page {
			if m.Status == models.MatchStatusActive {
				matches = append(matches, m)
			}
		}
	}
	return matches, nil
}

func (ms *MatchService) getActiveMatchByPair(ctx context.Context, pairKey string) (*models.Match, error) {
	item, err := ms.Dynamo.GetItem(ctx, models.MatchesTable, map[string]types.AttributeValue{
		"pairKey": &types.AttributeValueMemberS{Value: pairKey},
	})
	if err != nil {
		return nil, err
	}

	var match models.Match
	if err := attributevalue.UnmarshalMap(item, &match); err != nil {
		return nil, fmt.Errorf("failed to unmarshal match: %w", err)
	}
	if match.Status != models.MatchStatusActive {
		return nil, models.ErrNotFound
	}
	return &match, nil
}
