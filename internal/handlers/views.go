package handlers

import "github.com/sbilibin2017/gw-social-graph/internal/models"

const dateLayout = "2006-01-02"

// ProfileView is the public profile of a user
// swagger:model ProfileView
type ProfileView struct {
	ID          int64   `json:"id"`
	Username    string  `json:"username"`
	Name        string  `json:"name"`
	Avatar      *string `json:"avatar"`
	Header      *string `json:"header"`
	Description *string `json:"description"`
	Location    *string `json:"location"`
	Site        *string `json:"site"`
}

// AccountView is the authenticated user's own account details
// swagger:model AccountView
type AccountView struct {
	ID          int64   `json:"id"`
	Username    string  `json:"username"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	PhoneNumber *string `json:"phone_number"`
	// Date in YYYY-MM-DD format
	DateOfBirth *string `json:"date_of_birth"`
	Gender      *string `json:"gender"`
	Country     *string `json:"country"`
}

func newProfileView(u *models.UserDB) ProfileView {
	return ProfileView{
		ID:          u.ID,
		Username:    u.Username,
		Name:        u.Name,
		Avatar:      u.Avatar,
		Header:      u.Header,
		Description: u.Description,
		Location:    u.Location,
		Site:        u.Site,
	}
}

func newAccountView(u *models.UserDB) AccountView {
	view := AccountView{
		ID:          u.ID,
		Username:    u.Username,
		Name:        u.Name,
		Email:       u.Email,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		PhoneNumber: u.PhoneNumber,
		Gender:      u.Gender,
		Country:     u.Country,
	}
	if u.DateOfBirth != nil {
		dob := u.DateOfBirth.Format(dateLayout)
		view.DateOfBirth = &dob
	}
	return view
}
