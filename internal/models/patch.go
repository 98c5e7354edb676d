package models

// RegisterInput holds the data submitted on registration
type RegisterInput struct {
	Username  string
	Email     string
	Password1 string
	Password2 string
	Name      string
}

// PersonalInfoPatch is a partial update of the public profile.
// Fields outside this whitelist (username, email, ...) cannot be changed through it.
type PersonalInfoPatch struct {
	Name        Optional[string] `json:"name"`
	Avatar      Optional[string] `json:"avatar"`
	Header      Optional[string] `json:"header"`
	Description Optional[string] `json:"description"`
	Location    Optional[string] `json:"location"`
	Site        Optional[string] `json:"site"`
}

// AccountPatch is a partial update of the authenticated user's own account details.
type AccountPatch struct {
	Username    Optional[string] `json:"username"`
	Name        Optional[string] `json:"name"`
	Email       Optional[string] `json:"email"`
	FirstName   Optional[string] `json:"first_name"`
	LastName    Optional[string] `json:"last_name"`
	PhoneNumber Optional[string] `json:"phone_number"`
	DateOfBirth Optional[string] `json:"date_of_birth"`
	Gender      Optional[string] `json:"gender"`
	Country     Optional[string] `json:"country"`
}
