package entities

// User is a staff member as returned by the user registry.
type User struct {
	ID          int64    `json:"id"`
	NationalID  *int64   `json:"nationalId"`
	FirstName   string   `json:"firstName"`
	LastName    string   `json:"lastName"`
	Email       string   `json:"email"`
	Username    string   `json:"username"`
	PhoneNumber *int64   `json:"phoneNumber"`
	Address     *Address `json:"address,omitempty"`
}
