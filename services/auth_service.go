package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sponsorlink_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrEmailTaken is returned when signing up with an email that already
	// has an account.
	ErrEmailTaken = errors.New("email already taken")
	// ErrInvalidCredentials is returned on login with a wrong email or
	// password.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// AuthService is the identity collaborator: it issues stable user IDs and the
// user-type claim consulted for role assignment, carried in a signed JWT.
type AuthService struct {
	Dynamo    DynamoAPI
	JWTSecret []byte
}

const tokenTTL = 7 * 24 * time.Hour

// Signup creates an account with the given type and returns the user plus a
// signed token.
func (as *AuthService) Signup(ctx context.Context, email, password, userType string) (*models.User, string, error) {
	if userType != models.RoleAthlete && userType != models.RoleSponsor {
		return nil, "", models.NewValidationError("userType", "userType must be athlete or sponsor")
	}

	existing, err := as.findByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		UserID:       uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		UserType:     userType,
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
	}

	if err := as.Dynamo.PutItemConditional(ctx, models.UsersTable, user, "attribute_not_exists(userId)"); err != nil {
		return nil, "", fmt.Errorf("failed to create account: %w", err)
	}

	token, err := as.issueToken(&user)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

// Login verifies credentials and returns the user plus a signed token.
func (as *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := as.findByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := as.issueToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// GetUser resolves an account by its ID.
func (as *AuthService) GetUser(ctx context.Context, userID string) (*models.User, error) {
	item, err := as.Dynamo.GetItem(ctx, models.UsersTable, map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	})
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := attributevalue.UnmarshalMap(item, &user); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user: %w", err)
	}
	return &user, nil
}

func (as *AuthService) findByEmail(ctx context.Context, email string) (*models.User, error) {
	items, err := as.Dynamo.QueryItemsWithIndex(ctx, models.UsersTable, models.UsersEmailIndex,
		"email = :email",
		map[string]types.AttributeValue{
			":email": &types.AttributeValueMemberS{Value: email},
		}, nil, 1,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to look up account by email: %w", err)
	}
	if len(items) == 0 {
		return nil, nil
	}

	var user models.User
	if err := attributevalue.UnmarshalMap(items[0], &user); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user: %w", err)
	}
	return &user, nil
}

func (as *AuthService) issueToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":      user.UserID,
		"userType": user.UserType,
		"exp":      time.Now().Add(tokenTTL).Unix(),
		"iat":      time.Now().Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(as.JWTSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return token, nil
}
