package course

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Lesson represents a single lesson within a module
type Lesson struct {
	gorm.Model
	ModuleID    uint           `json:"module_id" gorm:"index;not null"`
	Title       string         `json:"title"`
	Content     string         `json:"content" gorm:"type:text"`
	VideoURL    string         `json:"video_url"`
	Duration    int            `json:"duration" gorm:"default:0"` // duration in minutes
	LessonOrder int            `json:"lesson_order" gorm:"default:0"`
	Resources   datatypes.JSON `json:"resources"` // attachment links, slides etc.
	IsDeleted   bool           `gorm:"default:false"`
}
