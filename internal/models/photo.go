package models

import (
	"time"
)

type Photo struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	FileName     string     `json:"filename" gorm:"not null"`
	OriginalName string     `json:"original_name" gorm:"not null"`
	Path         string     `json:"path" gorm:"not null"`
	Size         int64      `json:"size" gorm:"not null"`
	MimeType     string     `json:"mimetype" gorm:"not null"`
	Title        string     `json:"title,omitempty"`
	Description  string     `json:"description,omitempty"`
	Date         string     `json:"date,omitempty"`
	PublicURL    string     `json:"public_url" gorm:"-"`
	CreatedAt    time.Time  `json:"created_at"`
	// Stamped only by PATCH (the update map writes it explicitly); GORM's
	// automatic tracking would set it on create too.
	UpdatedAt *time.Time `json:"updated_at,omitempty" gorm:"autoUpdateTime:false"`
}

// PhotoUpdate carries the PATCH body. Pointer fields distinguish "absent"
// from "set to empty string".
type PhotoUpdate struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

func (u PhotoUpdate) Empty() bool {
	return u.Title == nil && u.Description == nil
}

// Fields returns the column set a non-empty update applies, without the
// updated_at stamp.
func (u PhotoUpdate) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if u.Title != nil {
		fields["title"] = *u.Title
	}
	if u.Description != nil {
		fields["description"] = *u.Description
	}
	return fields
}
