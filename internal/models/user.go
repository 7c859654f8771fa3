package models

type User struct {
	BaseModel
	Name         string `gorm:"not null" json:"name"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`

	// Relations
	Gigs []Gig `gorm:"foreignKey:OwnerID" json:"-"`
	Bids []Bid `gorm:"foreignKey:FreelancerID" json:"-"`
}
