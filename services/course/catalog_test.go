package courseService

import (
	"testing"

	"skillup/models"
	courseModels "skillup/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetModulesWithLessonsOrdering(t *testing.T) {
	db := newTestDB(t)
	instructorID := createUser(t, db, models.RoleInstructor)
	courseID, lessonIDs := createCourse(t, db, instructorID, 2, 3)

	catalog := NewCatalogService(db)

	modules, err := catalog.GetModulesWithLessons(courseID)
	require.NoError(t, err)
	require.Len(t, modules, 2)

	assert.Equal(t, "Module 1", modules[0].ModuleTitle)
	assert.Equal(t, lessonIDs[:2], modules[0].LessonIDs)
	assert.Equal(t, "Module 2", modules[1].ModuleTitle)
	assert.Equal(t, lessonIDs[2:], modules[1].LessonIDs)
}

func TestGetModulesWithLessonsSkipsDeleted(t *testing.T) {
	db := newTestDB(t)
	instructorID := createUser(t, db, models.RoleInstructor)
	courseID, lessonIDs := createCourse(t, db, instructorID, 2)

	require.NoError(t, db.Model(&courseModels.Lesson{}).
		Where("id = ?", lessonIDs[0]).Update("is_deleted", true).Error)

	catalog := NewCatalogService(db)

	modules, err := catalog.GetModulesWithLessons(courseID)
	require.NoError(t, err)
	require.Len(t, modules, 1)
	assert.Equal(t, []uint{lessonIDs[1]}, modules[0].LessonIDs)
}

func TestGetLessonOwningCourse(t *testing.T) {
	db := newTestDB(t)
	instructorID := createUser(t, db, models.RoleInstructor)
	courseID, lessonIDs := createCourse(t, db, instructorID, 1)

	catalog := NewCatalogService(db)

	owner, err := catalog.GetLessonOwningCourse(lessonIDs[0])
	require.NoError(t, err)
	assert.Equal(t, courseID, owner)

	_, err = catalog.GetLessonOwningCourse(9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCourseExists(t *testing.T) {
	db := newTestDB(t)
	instructorID := createUser(t, db, models.RoleInstructor)
	courseID, _ := createCourse(t, db, instructorID, 1)

	catalog := NewCatalogService(db)

	exists, err := catalog.CourseExists(courseID)
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, db.Model(&courseModels.Course{}).
		Where("id = ?", courseID).Update("active", false).Error)

	exists, err = catalog.CourseExists(courseID)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestGetUserRole(t *testing.T) {
	db := newTestDB(t)
	studentID := createUser(t, db, models.RoleStudent)

	catalog := NewCatalogService(db)

	role, err := catalog.GetUserRole(studentID)
	require.NoError(t, err)
	assert.Equal(t, models.RoleStudent, role)

	_, err = catalog.GetUserRole(9999)
	assert.ErrorIs(t, err, ErrNotFound)
}
