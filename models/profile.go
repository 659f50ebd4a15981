package models

// Profile is the tagged union over the two profile variants. Exactly one of
// Athlete/Sponsor is non-nil and matches Role, resolved once at load time so
// callers never re-probe the variant tables.
type Profile struct {
	Role    string          `json:"role"`
	Athlete *AthleteProfile `json:"athlete,omitempty"`
	Sponsor *SponsorProfile `json:"sponsor,omitempty"`
}

// ID returns the user ID shared with the account record.
func (p *Profile) ID() string {
	if p.Role == RoleAthlete {
		return p.Athlete.UserID
	}
	return p.Sponsor.UserID
}

// DisplayName returns the athlete's full name or the sponsor's company name.
func (p *Profile) DisplayName() string {
	if p.Role == RoleAthlete {
		return p.Athlete.FullName
	}
	return p.Sponsor.CompanyName
}

// ImageURL returns the profile photo or company logo URL.
func (p *Profile) ImageURL() string {
	if p.Role == RoleAthlete {
		return p.Athlete.ProfileImageURL
	}
	return p.Sponsor.LogoURL
}

// Likes returns the set of user IDs that liked this profile.
func (p *Profile) Likes() []string {
	if p.Role == RoleAthlete {
		return p.Athlete.Likes
	}
	return p.Sponsor.Likes
}

// LikedBy reports whether userID is in this profile's likes set.
func (p *Profile) LikedBy(userID string) bool {
	for _, id := range p.Likes() {
		if id == userID {
			return true
		}
	}
	return false
}
