package models

// Match records a mutually-consented pairing between one athlete and one
// sponsor. The table is keyed by PairKey so a conditional put can guarantee at
// most one active match per unordered participant pair, even under concurrent
// reciprocal swipes. Names are denormalized at creation time and serve as a
// fallback when a participant's profile no longer resolves.
type Match struct {
	PairKey      string   `dynamodbav:"pairKey" json:"-"`
	MatchID      string   `dynamodbav:"matchId" json:"matchId"`
	Participants []string `dynamodbav:"participants" json:"participants"`
	SponsorID    string   `dynamodbav:"sponsorId" json:"sponsorId"`
	AthleteID    string   `dynamodbav:"athleteId" json:"athleteId"`
	SponsorName  string   `dynamodbav:"sponsorName" json:"sponsorName"`
	AthleteName  string   `dynamodbav:"athleteName" json:"athleteName"`
	Status       string   `dynamodbav:"status" json:"status"`
	CreatedAt    string   `dynamodbav:"createdAt" json:"createdAt"`
}

// MatchesTable is the DynamoDB table name for matches
const MatchesTable = "Matches"

// GSIs on the Matches table
const (
	MatchesAthleteIndex = "AthleteIndex"
	MatchesSponsorIndex = "SponsorIndex"
	MatchesMatchIDIndex = "MatchIdIndex"
)

// Match statuses
const MatchStatusActive = "active"

// BuildPairKey builds the unordered participant-pair key used as the Matches
// partition key. Order of the arguments does not matter.
func BuildPairKey(a, b string) string {
	if a > b {
		a, b = b, a
	}
	return a + "#" + b
}

// Counterpart returns the participant that is not userID, falling back to the
// empty string when userID is not a participant.
func (m *Match) Counterpart(userID string) string {
	for _, id := range m.Participants {
		if id != userID {
			return id
		}
	}
	return ""
}

// CounterpartName returns the denormalized display name of the participant
// that is not userID.
func (m *Match) CounterpartName(userID string) string {
	if userID == m.SponsorID {
		return m.AthleteName
	}
	return m.SponsorName
}

// HasParticipant reports whether userID is one of the two participants.
func (m *Match) HasParticipant(userID string) bool {
	for _, id := range m.Participants {
		if id == userID {
			return true
		}
	}
	return false
}
