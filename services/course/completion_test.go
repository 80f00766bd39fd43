package courseService

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeCourseProgressPartial(t *testing.T) {
	modules := []ModuleLessons{
		{ModuleID: 1, ModuleTitle: "Basics", LessonIDs: []uint{10, 11}},
		{ModuleID: 2, ModuleTitle: "Advanced", LessonIDs: []uint{12}},
	}
	completion := map[uint]bool{10: true, 11: true, 12: false}

	summary := ComputeCourseProgress(modules, completion)

	assert.Equal(t, 2, summary.CompletedCount)
	assert.Equal(t, 3, summary.TotalCount)
	assert.Equal(t, 66.67, summary.Percentage)
	assert.False(t, summary.FirstCompletion)

	assert.Len(t, summary.Modules, 2)
	assert.Equal(t, 100.0, summary.Modules[0].Percentage)
	assert.Equal(t, 0.0, summary.Modules[1].Percentage)
}

func TestComputeCourseProgressComplete(t *testing.T) {
	modules := []ModuleLessons{
		{ModuleID: 1, LessonIDs: []uint{10, 11}},
		{ModuleID: 2, LessonIDs: []uint{12}},
	}
	completion := map[uint]bool{10: true, 11: true, 12: true}

	summary := ComputeCourseProgress(modules, completion)

	assert.Equal(t, 100.0, summary.Percentage)
	assert.Equal(t, 3, summary.CompletedCount)
}

func TestComputeCourseProgressEmptyCourse(t *testing.T) {
	summary := ComputeCourseProgress(nil, map[uint]bool{})

	assert.Equal(t, 0.0, summary.Percentage)
	assert.Equal(t, 0, summary.TotalCount)
	assert.Empty(t, summary.Modules)
}

func TestComputeCourseProgressEmptyModule(t *testing.T) {
	modules := []ModuleLessons{
		{ModuleID: 1, LessonIDs: []uint{10}},
		{ModuleID: 2, LessonIDs: nil},
	}
	completion := map[uint]bool{10: true}

	summary := ComputeCourseProgress(modules, completion)

	// The empty module contributes nothing to the denominator
	assert.Equal(t, 100.0, summary.Percentage)
	assert.Equal(t, 0.0, summary.Modules[1].Percentage)
	assert.Equal(t, 0, summary.Modules[1].TotalCount)
}

func TestComputeCourseProgressMissingMapEntries(t *testing.T) {
	modules := []ModuleLessons{
		{ModuleID: 1, LessonIDs: []uint{10, 11, 12}},
	}
	// Lessons absent from the map count as not completed
	completion := map[uint]bool{10: true}

	summary := ComputeCourseProgress(modules, completion)

	assert.Equal(t, 1, summary.CompletedCount)
	assert.Equal(t, 33.33, summary.Percentage)
}

func TestComputeCourseProgressDeterministic(t *testing.T) {
	modules := []ModuleLessons{
		{ModuleID: 1, LessonIDs: []uint{10, 11, 12, 13, 14, 15}},
	}
	completion := map[uint]bool{10: true}

	first := ComputeCourseProgress(modules, completion)
	second := ComputeCourseProgress(modules, completion)

	assert.Equal(t, first, second)
	assert.Equal(t, 16.67, first.Percentage)
}
