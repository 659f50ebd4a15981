package models

// User is the account record behind the identity claims. The profile data
// lives in the variant tables, keyed by the same userId.
type User struct {
	UserID       string `dynamodbav:"userId" json:"userId"`
	Email        string `dynamodbav:"email" json:"email"`
	PasswordHash string `dynamodbav:"passwordHash" json:"-"`
	UserType     string `dynamodbav:"userType" json:"userType"`
	CreatedAt    string `dynamodbav:"createdAt" json:"createdAt"`
}

// UsersTable is the DynamoDB table name for user accounts
const UsersTable = "Users"

// UsersEmailIndex is the GSI used to look up accounts by email at login
const UsersEmailIndex = "EmailIndex"
