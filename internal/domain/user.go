package domain

type UserRole string

const (
	RoleGuest UserRole = "GUEST"
	RoleStaff UserRole = "STAFF"
	RoleAdmin UserRole = "ADMIN"
)

// GuestProfile carries the identity fields only guests have.
type GuestProfile struct {
	PhoneNumber    string `json:"phoneNumber"`
	PassportNumber string `json:"passportNumber"`
}

type User struct {
	ID           int64         `json:"id" validate:"required"`
	Name         string        `json:"name" validate:"required"`
	Email        string        `json:"email" validate:"required,email"`
	PasswordHash string        `json:"-"`
	Role         UserRole      `json:"role"`
	Guest        *GuestProfile `json:"guest,omitempty"`
}

// NewGuest returns a user with the GUEST role and its profile attached.
func NewGuest(id int64, name, email, passwordHash, phone, passport string) *User {
	return &User{
		ID:           id,
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         RoleGuest,
		Guest: &GuestProfile{
			PhoneNumber:    phone,
			PassportNumber: passport,
		},
	}
}

func (u *User) IsGuest() bool {
	return u.Role == RoleGuest && u.Guest != nil
}

// Phone returns the guest phone number or "" for non-guests.
func (u *User) Phone() string {
	if u.Guest == nil {
		return ""
	}
	return u.Guest.PhoneNumber
}

func (u *User) Passport() string {
	if u.Guest == nil {
		return ""
	}
	return u.Guest.PassportNumber
}
