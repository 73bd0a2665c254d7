package models

// Revenue is whole dollars collected in a calendar month.
type Revenue struct {
	Month   string `gorm:"primaryKey;size:3"`
	Revenue int64  `gorm:"not null"`
}

// Months lists Revenue.Month keys in calendar order.
var Months = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
