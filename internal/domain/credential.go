package domain

// Credential is a demo identity known to the platform. Email is the unique
// key; several display-name spellings may map onto the same email.
type Credential struct {
	Name        string
	Email       string
	Password    string
	Role        Role
	Description string
	Territory   string
	Verified    bool
}
