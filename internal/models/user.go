package models

// Account types stored in User.UserType.
const (
	UserTypeVolunteer    = "volunteer"
	UserTypeOrganization = "organization"
)

// User is a registered account: either a volunteer or an organization.
// Organization accounts additionally carry the org* contact fields.
type User struct {
	BaseModel

	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	UserType string `gorm:"type:varchar(32);not null;index" json:"userType"`

	OrgName     string `gorm:"type:varchar(255)" json:"orgName,omitempty"`
	Phone       string `gorm:"type:varchar(32)" json:"phone,omitempty"`
	Address     string `gorm:"type:varchar(255)" json:"address,omitempty"`
	Description string `gorm:"type:text" json:"description,omitempty"`
}

// IsOrganization reports whether the account belongs to an organization.
func (u *User) IsOrganization() bool {
	return u.UserType == UserTypeOrganization
}
