package models

// AthleteProfile defines the structure for athlete profiles.
// Likes and Passes are DynamoDB string sets holding sponsor user IDs, so a
// given sponsor appears at most once in each.
type AthleteProfile struct {
	UserID          string   `dynamodbav:"userId" json:"userId"`
	FullName        string   `dynamodbav:"fullName" json:"fullName"`
	College         string   `dynamodbav:"college,omitempty" json:"college,omitempty"`
	Sport           string   `dynamodbav:"sport" json:"sport"`
	Position        string   `dynamodbav:"position,omitempty" json:"position,omitempty"`
	Description     string   `dynamodbav:"description" json:"description"`
	AmountRequested float64  `dynamodbav:"amountRequested" json:"amountRequested"`
	ProfileImageURL string   `dynamodbav:"profileImageUrl" json:"profileImageUrl"`
	Likes           []string `dynamodbav:"likes,stringset,omitempty" json:"likes,omitempty"`
	Passes          []string `dynamodbav:"passes,stringset,omitempty" json:"passes,omitempty"`
	CreatedAt       string   `dynamodbav:"createdAt" json:"createdAt"`
	UpdatedAt       string   `dynamodbav:"updatedAt" json:"updatedAt"`
}

// AthletesTable is the DynamoDB table name for athlete profiles
const AthletesTable = "Athletes"
