package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"sponsorlink_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ImageStore resolves uploaded image keys to the public URLs stored on
// profiles. *S3Service is the production implementation.
type ImageStore interface {
	PublicURL(key string) (string, error)
}

// ProfileService is the profile store: submission of the two profile
// variants, tagged-union resolution by user ID, the discovery feed, and the
// swipe ledger.
type ProfileService struct {
	Dynamo DynamoAPI
	Images ImageStore
}

// AthleteProfileInput carries the fields of an athlete profile submission.
type AthleteProfileInput struct {
	FullName        string  `json:"fullName"`
	College         string  `json:"college"`
	Sport           string  `json:"sport"`
	Position        string  `json:"position"`
	Description     string  `json:"description"`
	AmountRequested float64 `json:"amountRequested"`
	ImageKey        string  `json:"imageKey"`
}

// SponsorProfileInput carries the fields of a sponsor profile submission.
type SponsorProfileInput struct {
	CompanyName     string   `json:"companyName"`
	Industry        string   `json:"industry"`
	Description     string   `json:"description"`
	Website         string   `json:"website"`
	PreferredSports []string `json:"preferredSports"`
	MinBudget       float64  `json:"minBudget"`
	MaxBudget       float64  `json:"maxBudget"`
	ImageKey        string   `json:"imageKey"`
}

// SubmitAthleteProfile creates or fully replaces the athlete profile for
// userID. Replacement resets the likes/passes sets; callers must resupply
// unchanged fields.
func (ps *ProfileService) SubmitAthleteProfile(ctx context.Context, userID string, in AthleteProfileInput) (*models.AthleteProfile, error) {
	switch {
	case strings.TrimSpace(in.FullName) == "":
		return nil, models.NewValidationError("fullName", "full name is required")
	case strings.TrimSpace(in.Sport) == "":
		return nil, models.NewValidationError("sport", "sport is required")
	case strings.TrimSpace(in.Description) == "":
		return nil, models.NewValidationError("description", "description is required")
	case strings.TrimSpace(in.ImageKey) == "":
		return nil, models.NewValidationError("imageKey", "profile image is required")
	case in.AmountRequested <= 0:
		return nil, models.NewValidationError("amountRequested", "amount requested must be greater than 0")
	}

	imageURL, err := ps.Images.PublicURL(in.ImageKey)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	profile := models.AthleteProfile{
		UserID:          userID,
		FullName:        in.FullName,
		College:         in.College,
		Sport:           in.Sport,
		Position:        in.Position,
		Description:     in.Description,
		AmountRequested: in.AmountRequested,
		ProfileImageURL: imageURL,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := ps.Dynamo.PutItem(ctx, models.AthletesTable, profile); err != nil {
		return nil, fmt.Errorf("failed to store athlete profile: %w", err)
	}
	return &profile, nil
}

// SubmitSponsorProfile creates or fully replaces the sponsor profile for
// userID.
func (ps *ProfileService) SubmitSponsorProfile(ctx context.Context, userID string, in SponsorProfileInput) (*models.SponsorProfile, error) {
	switch {
	case strings.TrimSpace(in.CompanyName) == "":
		return nil, models.NewValidationError("companyName", "company name is required")
	case strings.TrimSpace(in.Industry) == "":
		return nil, models.NewValidationError("industry", "industry is required")
	case strings.TrimSpace(in.Description) == "":
		return nil, models.NewValidationError("description", "description is required")
	case strings.TrimSpace(in.ImageKey) == "":
		return nil, models.NewValidationError("imageKey", "company logo is required")
	case in.MinBudget > 0 && in.MaxBudget > 0 && in.MinBudget > in.MaxBudget:
		return nil, models.NewValidationError("minBudget", "minimum budget cannot be greater than maximum budget")
	}

	logoURL, err := ps.Images.PublicURL(in.ImageKey)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	profile := models.SponsorProfile{
		UserID:          userID,
		CompanyName:     in.CompanyName,
		Industry:        in.Industry,
		Description:     in.Description,
		Website:         in.Website,
		PreferredSports: in.PreferredSports,
		MinBudget:       in.MinBudget,
		MaxBudget:       in.MaxBudget,
		LogoURL:         logoURL,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := ps.Dynamo.PutItem(ctx, models.SponsorsTable, profile); err != nil {
		return nil, fmt.Errorf("failed to store sponsor profile: %w", err)
	}
	return &profile, nil
}

// GetProfile resolves userID against both variant tables and returns the
// tagged profile. models.ErrNotFound when neither table has the user.
func (ps *ProfileService) GetProfile(ctx context.Context, userID string) (*models.Profile, error) {
	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}

	item, err := ps.Dynamo.GetItem(ctx, models.AthletesTable, key)
	if err == nil {
		var athlete models.AthleteProfile
		if err := attributevalue.UnmarshalMap(item, &athlete); err != nil {
			return nil, fmt.Errorf("failed to unmarshal athlete profile: %w", err)
		}
		return &models.Profile{Role: models.RoleAthlete, Athlete: &athlete}, nil
	}
	if !errors.Is(err, models.ErrNotFound) {
		return nil, err
	}

	item, err = ps.Dynamo.GetItem(ctx, models.SponsorsTable, key)
	if err != nil {
		return nil, err
	}
	var sponsor models.SponsorProfile
	if err := attributevalue.UnmarshalMap(item, &sponsor); err != nil {
		return nil, fmt.Errorf("failed to unmarshal sponsor profile: %w", err)
	}
	return &models.Profile{Role: models.RoleSponsor, Sponsor: &sponsor}, nil
}

// ListAthletes returns every athlete profile. Feed composition is the
// caller's concern.
func (ps *ProfileService) ListAthletes(ctx context.Context) ([]models.AthleteProfile, error) {
	var athletes []models.AthleteProfile
	if err := ps.Dynamo.ScanWithFilter(ctx, models.AthletesTable, nil, &athletes); err != nil {
		return nil, fmt.Errorf("failed to list athletes: %w", err)
	}
	return athletes, nil
}

// ListSponsors returns every sponsor profile.
func (ps *ProfileService) ListSponsors(ctx context.Context) ([]models.SponsorProfile, error) {
	var sponsors []models.SponsorProfile
	if err := ps.Dynamo.ScanWithFilter(ctx, models.SponsorsTable, nil, &sponsors); err != nil {
		return nil, fmt.Errorf("failed to list sponsors: %w", err)
	}
	return sponsors, nil
}

// DiscoverAthletes returns the athlete feed for viewerID: everyone the viewer
// has not already swiped on. A matched counterpart is necessarily in the
// viewer's swipe history, so matches are excluded as well.
func (ps *ProfileService) DiscoverAthletes(ctx context.Context, viewerID string) ([]models.AthleteProfile, error) {
	var athletes []models.AthleteProfile
	err := ps.Dynamo.ScanWithFilter(ctx, models.AthletesTable, func(item map[string]types.AttributeValue) bool {
		return includeInFeed(item, viewerID)
	}, &athletes)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch athlete feed: %w", err)
	}
	return athletes, nil
}

// DiscoverSponsors returns the sponsor feed for viewerID.
func (ps *ProfileService) DiscoverSponsors(ctx context.Context, viewerID string) ([]models.SponsorProfile, error) {
	var sponsors []models.SponsorProfile
	err := ps.Dynamo.ScanWithFilter(ctx, models.SponsorsTable, func(item map[string]types.AttributeValue) bool {
		return includeInFeed(item, viewerID)
	}, &sponsors)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sponsor feed: %w", err)
	}
	return sponsors, nil
}

// includeInFeed excludes the viewer's own record and any profile whose
// likes/passes set already records a swipe from the viewer.
func includeInFeed(item map[string]types.AttributeValue, viewerID string) bool {
	if id, ok := item["userId"].(*types.AttributeValueMemberS); ok && id.Value == viewerID {
		return false
	}
	return !setContains(item, "likes", viewerID) && !setContains(item, "passes", viewerID)
}

func setContains(item map[string]types.AttributeValue, field, member string) bool {
	attr, ok := item[field]
	if !ok {
		return false
	}
	set, ok := attr.(*types.AttributeValueMemberSS)
	if !ok {
		return false
	}
	for _, v := range set.Value {
		if v == member {
			return true
		}
	}
	return false
}

// ApplySwipeAction records actorID's like/pass decision on the profile
// targetID. Adding to a string set is idempotent, and the opposite set is
// cleared in the same update so the latest action wins. The resolved target
// profile is returned so the caller can continue into match resolution.
func (ps *ProfileService) ApplySwipeAction(ctx context.Context, targetID, action, actorID string) (*models.Profile, error) {
	var addTo, removeFrom string
	switch action {
	case models.ActionLike:
		addTo, removeFrom = "likes", "passes"
	case models.ActionPass:
		addTo, removeFrom = "passes", "likes"
	default:
		return nil, models.NewValidationError("action", "action must be like or pass")
	}

	target, err := ps.GetProfile(ctx, targetID)
	if err != nil {
		return nil, err
	}

	table := models.AthletesTable
	if target.Role == models.RoleSponsor {
		table = models.SponsorsTable
	}

	updateExpression := fmt.Sprintf("SET updatedAt = :now ADD %s :actor DELETE %s :actor", addTo, removeFrom)
	_, err = ps.Dynamo.UpdateItem(ctx, table, updateExpression,
		map[string]types.AttributeValue{"userId": &types.AttributeValueMemberS{Value: targetID}},
		map[string]types.AttributeValue{
			":actor": &types.AttributeValueMemberSS{Value: []string{actorID}},
			":now":   &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339)},
		}, nil,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to record %s on profile %s: %w", action, targetID, err)
	}

	return target, nil
}
