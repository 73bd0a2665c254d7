package models

import "github.com/google/uuid"

type Customer struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name     string    `gorm:"index;not null"`
	Email    string    `gorm:"not null"`
	ImageURL string
}

// CustomerField is the id/name pair offered by the invoice form's customer select.
type CustomerField struct {
	ID   string
	Name string
}
