package course

import "gorm.io/gorm"

// Course represents a learning course
type Course struct {
	gorm.Model
	Title        string `json:"title" gorm:"not null"`
	Description  string `json:"description" gorm:"type:text"`
	Category     string `json:"category" gorm:"size:100;not null"`
	ThumbnailURL string `json:"thumbnail_url"`
	InstructorID uint   `json:"instructor_id" gorm:"index;not null"`
	Featured     bool   `json:"featured" gorm:"default:false"`
	Active       bool   `json:"active" gorm:"default:true"`
	IsDeleted    bool   `gorm:"default:false"`
}
