package content

import "time"

// Record is the shared shape behind projects, partners, and hero entries.
// Kind discriminates the resource a row belongs to and never appears in
// API payloads. Images holds reference paths under /uploads/, in upload
// order; rows only reference files, they do not own their lifetime.
type Record struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Kind        string     `gorm:"size:32;index;not null" json:"-"`
	Name        string     `gorm:"size:255;not null" json:"name"`
	Description string     `json:"description"`
	Date        *time.Time `json:"date,omitempty"`
	Link        string     `json:"link,omitempty"`
	Images      []string   `gorm:"serializer:json" json:"images"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}
