package models

// Profile variants / user-type claims
const (
	RoleAthlete = "athlete"
	RoleSponsor = "sponsor"
)

// Swipe actions
const (
	ActionLike = "like"
	ActionPass = "pass"
)
