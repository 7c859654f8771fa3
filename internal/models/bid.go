package models

type Bid struct {
	BaseModel
	GigID        string    `gorm:"type:uuid;not null;index;uniqueIndex:idx_bids_gig_freelancer" json:"gig_id"`
	FreelancerID string    `gorm:"type:uuid;not null;index;uniqueIndex:idx_bids_gig_freelancer" json:"freelancer_id"`
	Amount       float64   `gorm:"not null" json:"amount"`
	Message      string    `json:"message"`
	Status       BidStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`

	Gig        *Gig  `gorm:"foreignKey:GigID" json:"gig,omitempty"`
	Freelancer *User `gorm:"foreignKey:FreelancerID" json:"freelancer,omitempty"`
}
