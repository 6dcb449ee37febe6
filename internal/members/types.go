package members

// Club values for MemberProfile.Club.
const (
	ClubCore    = "CORE"
	ClubMusic   = "MUSIC"
	ClubDance   = "DANCE"
	ClubTheatre = "THEATRE"
)

// MemberProfile is public collaborator data shown on the site.
type MemberProfile struct {
	MemberID     string `json:"id" dynamodbav:"member_id"` // PK
	Name         string `json:"name" dynamodbav:"name"`
	Role         string `json:"role" dynamodbav:"role"`
	Club         string `json:"club" dynamodbav:"club"`
	Bio          string `json:"bio" dynamodbav:"bio,omitempty"`
	ContactEmail string `json:"contactEmail" dynamodbav:"contact_email,omitempty"`
}
