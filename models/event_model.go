package models

import "time"

type ContactEventType string

const (
	EventContactCreated ContactEventType = "contact.created"
)

type ContactEvent struct {
	ID        string           `json:"id"`
	Type      ContactEventType `json:"type"`
	Contact   Contact          `json:"contact"`
	Timestamp time.Time        `json:"timestamp"`
}
