package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Customer who requested the booking.
	UserID uint `gorm:"not null" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"user"`

	// ChefID is the chef's user id, never the profile id. The profile is
	// looked up by user id wherever the rate or menu is needed.
	ChefID uint `gorm:"not null" json:"chef_id"`
	Chef   User `gorm:"foreignKey:ChefID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"chef"`

	Date  time.Time `gorm:"not null" json:"date"`
	Time  string    `gorm:"size:20" json:"time"`
	Hours int       `gorm:"not null" json:"hours"`

	Guests             int      `gorm:"not null" json:"guests"`
	TotalPrice         float64  `gorm:"not null" json:"total_price"`
	IncludeIngredients bool     `gorm:"default:false" json:"include_ingredients"`
	Dishes             []string `gorm:"serializer:json" json:"dishes"`
	SpecialRequests    string   `gorm:"size:1000" json:"special_requests"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
