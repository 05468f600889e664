package entities

import (
	"time"
)

// User represents a human meeting participant.
// IDs are opaque identifiers minted by the product backend; transcript
// speaker ids reference this pool or the agent pool.
type User struct {
	ID        string    `json:"id" gorm:"type:varchar(64);primary_key"`
	Name      string    `json:"name" gorm:"type:varchar(255);not null"`
	Email     string    `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`
	AvatarURL *string   `json:"avatar_url,omitempty" gorm:"type:varchar(500)"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}

// IdentityID implements Identity
func (u *User) IdentityID() string {
	return u.ID
}

// DisplayName implements Identity
func (u *User) DisplayName() string {
	return u.Name
}
