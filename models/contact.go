package models

import "time"

type Contact struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Phone     string    `gorm:"size:50;not null" json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

type SaveContactRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type SaveContactResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	ContactID uint   `json:"contactId"`
}
