package courseService

import (
	"errors"

	"skillup/models"
	courseModels "skillup/models/course"

	"gorm.io/gorm"
)

// ModuleLessons is one module's ordered lesson ID set, as stored in the
// catalog. The slice order mirrors module_order / lesson_order.
type ModuleLessons struct {
	ModuleID    uint
	ModuleTitle string
	LessonIDs   []uint
}

// CatalogService answers the read-only catalog and identity lookups the core
// services depend on: course existence, the ordered module/lesson structure of
// a course, lesson ownership and user roles.
type CatalogService struct {
	db *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

// CourseExists reports whether an active, non-deleted course exists.
func (s *CatalogService) CourseExists(courseID uint) (bool, error) {
	var count int64
	err := s.db.Model(&courseModels.Course{}).
		Where("id = ? AND is_deleted = ? AND active = ?", courseID, false, true).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetModulesWithLessons returns the course's modules in catalog order, each
// with its lesson IDs in lesson order. Modules without lessons are included.
func (s *CatalogService) GetModulesWithLessons(courseID uint) ([]ModuleLessons, error) {
	var modules []courseModels.Module
	if err := s.db.Where("course_id = ? AND is_deleted = ?", courseID, false).
		Order("module_order asc, id asc").Find(&modules).Error; err != nil {
		return nil, err
	}

	result := make([]ModuleLessons, 0, len(modules))
	for _, module := range modules {
		var lessons []courseModels.Lesson
		if err := s.db.Select("id").
			Where("module_id = ? AND is_deleted = ?", module.ID, false).
			Order("lesson_order asc, id asc").Find(&lessons).Error; err != nil {
			return nil, err
		}

		lessonIDs := make([]uint, 0, len(lessons))
		for _, lesson := range lessons {
			lessonIDs = append(lessonIDs, lesson.ID)
		}

		result = append(result, ModuleLessons{
			ModuleID:    module.ID,
			ModuleTitle: module.Title,
			LessonIDs:   lessonIDs,
		})
	}

	return result, nil
}

// GetLessonOwningCourse resolves the course a lesson belongs to via its module.
func (s *CatalogService) GetLessonOwningCourse(lessonID uint) (uint, error) {
	var lesson courseModels.Lesson
	if err := s.db.Where("id = ? AND is_deleted = ?", lessonID, false).First(&lesson).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrNotFound
		}
		return 0, err
	}

	var module courseModels.Module
	if err := s.db.Where("id = ? AND is_deleted = ?", lesson.ModuleID, false).First(&module).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrNotFound
		}
		return 0, err
	}

	return module.CourseID, nil
}

// GetUserRole returns the role of an existing, non-deleted user.
func (s *CatalogService) GetUserRole(userID uint) (models.Role, error) {
	var user models.User
	if err := s.db.Select("role").
		Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrNotFound
		}
		return "", err
	}
	return user.Role, nil
}
