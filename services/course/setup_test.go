package courseService

import (
	"fmt"
	"testing"

	"skillup/models"
	courseModels "skillup/models/course"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory database migrated with the full
// schema. Each test gets its own named database so parallel tests cannot
// see each other's rows.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&courseModels.Course{},
		&courseModels.Module{},
		&courseModels.Lesson{},
		&courseModels.Enrollment{},
		&courseModels.Progress{},
		&courseModels.Certificate{},
	))

	return db
}

var userSeq int

// createUser inserts a user with the given role and returns its ID.
func createUser(t *testing.T, db *gorm.DB, role models.Role) uint {
	t.Helper()

	userSeq++
	user := models.User{
		Name:     fmt.Sprintf("Test User %d", userSeq),
		Email:    fmt.Sprintf("user%d@example.com", userSeq),
		Password: "hashed",
		Role:     role,
	}
	require.NoError(t, db.Create(&user).Error)
	return user.ID
}

// createCourse inserts an active course with one module per entry of
// lessonsPerModule, each holding that many lessons. Returns the course ID and
// the lesson IDs in catalog order.
func createCourse(t *testing.T, db *gorm.DB, instructorID uint, lessonsPerModule ...int) (uint, []uint) {
	t.Helper()

	course := courseModels.Course{
		Title:        "Test Course",
		Category:     "testing",
		InstructorID: instructorID,
		Active:       true,
	}
	require.NoError(t, db.Create(&course).Error)

	var lessonIDs []uint
	for m, count := range lessonsPerModule {
		module := courseModels.Module{
			CourseID:    course.ID,
			Title:       fmt.Sprintf("Module %d", m+1),
			ModuleOrder: m,
		}
		require.NoError(t, db.Create(&module).Error)

		for l := 0; l < count; l++ {
			lesson := courseModels.Lesson{
				ModuleID:    module.ID,
				Title:       fmt.Sprintf("Lesson %d.%d", m+1, l+1),
				Duration:    10,
				LessonOrder: l,
			}
			require.NoError(t, db.Create(&lesson).Error)
			lessonIDs = append(lessonIDs, lesson.ID)
		}
	}

	return course.ID, lessonIDs
}
