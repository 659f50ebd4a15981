package models

// SponsorProfile defines the structure for sponsor profiles.
// Likes and Passes are DynamoDB string sets holding athlete user IDs.
type SponsorProfile struct {
	UserID          string   `dynamodbav:"userId" json:"userId"`
	CompanyName     string   `dynamodbav:"companyName" json:"companyName"`
	Industry        string   `dynamodbav:"industry" json:"industry"`
	Description     string   `dynamodbav:"description" json:"description"`
	Website         string   `dynamodbav:"website,omitempty" json:"website,omitempty"`
	PreferredSports []string `dynamodbav:"preferredSports,stringset,omitempty" json:"preferredSports,omitempty"`
	MinBudget       float64  `dynamodbav:"minBudget" json:"minBudget"`
	MaxBudget       float64  `dynamodbav:"maxBudget" json:"maxBudget"`
	LogoURL         string   `dynamodbav:"logoUrl" json:"logoUrl"`
	Likes           []string `dynamodbav:"likes,stringset,omitempty" json:"likes,omitempty"`
	Passes          []string `dynamodbav:"passes,stringset,omitempty" json:"passes,omitempty"`
	CreatedAt       string   `dynamodbav:"createdAt" json:"createdAt"`
	UpdatedAt       string   `dynamodbav:"updatedAt" json:"updatedAt"`
}

// SponsorsTable is the DynamoDB table name for sponsor profiles
const SponsorsTable = "Sponsors"
