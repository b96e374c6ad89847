package models

import (
	"time"

	"gorm.io/datatypes"
)

type Bug struct {
	ID          uint64 `gorm:"primarykey" json:"bugId"`
	Title       string `gorm:"type:varchar(255);not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Status      string `gorm:"type:varchar(50)" json:"status"`
	Priority    string `gorm:"type:varchar(50)" json:"priority"`
	Reporter    string `gorm:"type:varchar(255)" json:"reporter"`
	CreatedDate Date   `json:"createdDate"`

	// Attachment lists hold storage-generated filenames only, never
	// client-supplied paths.
	ImageURLs    datatypes.JSONSlice[string] `json:"imageUrls"`
	DocumentURLs datatypes.JSONSlice[string] `json:"documentUrls"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// AttachmentNames returns every attachment filename referenced by the bug.
func (b *Bug) AttachmentNames() []string {
	names := make([]string, 0, len(b.ImageURLs)+len(b.DocumentURLs))
	names = append(names, b.ImageURLs...)
	names = append(names, b.DocumentURLs...)
	return names
}
