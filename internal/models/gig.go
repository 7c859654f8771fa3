package models

type Gig struct {
	BaseModel
	OwnerID     string    `gorm:"type:uuid;not null;index" json:"owner_id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `json:"description"`
	Budget      float64   `gorm:"not null" json:"budget"`
	Status      GigStatus `gorm:"type:varchar(20);not null;default:'open';index" json:"status"`

	// HiredBidID points at the winning bid once the gig is assigned.
	HiredBidID *string `gorm:"type:uuid" json:"hired_bid_id,omitempty"`

	Owner *User `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Bids  []Bid `gorm:"foreignKey:GigID" json:"bids,omitempty"`
}
