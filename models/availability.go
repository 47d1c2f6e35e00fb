package models

import "time"

// DateAvailability is one day of an availability calendar.
type DateAvailability struct {
	Date      time.Time `json:"date"`
	Available bool      `json:"available"`
}
