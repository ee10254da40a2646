package models

import "time"

// MenuItem is one dish on a chef's menu. Price is optional (per-dish
// pricing); Image holds a served path or URL.
type MenuItem struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
}

// Document is an uploaded identity document pending admin review.
type Document struct {
	DocType  string `json:"doc_type"` // e.g. "id_proof", "certificate"
	FilePath string `json:"file_path"`
}

type ChefProfile struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`

	Bio             string   `gorm:"size:2000" json:"bio"`
	Specialties     []string `gorm:"serializer:json" json:"specialties"`
	ExperienceYears int      `gorm:"default:0" json:"experience_years"`
	HourlyRate      float64  `gorm:"default:500" json:"hourly_rate"`
	Location        string   `gorm:"size:100;default:'Unknown'" json:"location"`

	IsOnline   bool `gorm:"default:false" json:"is_online"`
	IsVerified bool `gorm:"default:false" json:"is_verified"`

	Menu      []MenuItem `gorm:"serializer:json" json:"menu"`
	Documents []Document `gorm:"serializer:json" json:"documents"`

	Rating      float64 `gorm:"default:0" json:"rating"`
	ReviewCount int     `gorm:"default:0" json:"review_count"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
