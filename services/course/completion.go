package courseService

import "math"

// ModuleProgress is one module's share of the course progress, in catalog order.
type ModuleProgress struct {
	ModuleID       uint    `json:"module_id"`
	ModuleTitle    string  `json:"module_title"`
	CompletedCount int     `json:"completed_count"`
	TotalCount     int     `json:"total_count"`
	Percentage     float64 `json:"percentage"`
}

// CourseProgressSummary is the aggregate produced by ComputeCourseProgress and
// persisted onto the enrollment by RecomputeProgress.
type CourseProgressSummary struct {
	CompletedCount  int              `json:"completed_count"`
	TotalCount      int              `json:"total_count"`
	Percentage      float64          `json:"percentage"`
	Modules         []ModuleProgress `json:"modules"`
	FirstCompletion bool             `json:"first_completion"`
}

// roundPercent rounds half-up to 2 decimal places. The single rounding rule
// for every percentage in the system, so repeated recomputes are byte-stable.
func roundPercent(v float64) float64 {
	return math.Round(v*100) / 100
}

// ComputeCourseProgress folds per-lesson completion into course and module
// percentages. Lessons missing from the completion map count as not completed;
// a module (or course) with zero lessons reports 0.0. Pure function: no store
// access, deterministic for a given input.
func ComputeCourseProgress(modules []ModuleLessons, completion map[uint]bool) CourseProgressSummary {
	summary := CourseProgressSummary{
		Modules: make([]ModuleProgress, 0, len(modules)),
	}

	for _, module := range modules {
		completed := 0
		for _, lessonID := range module.LessonIDs {
			if completion[lessonID] {
				completed++
			}
		}

		total := len(module.LessonIDs)
		percentage := 0.0
		if total > 0 {
			percentage = roundPercent(100.0 * float64(completed) / float64(total))
		}

		summary.Modules = append(summary.Modules, ModuleProgress{
			ModuleID:       module.ModuleID,
			ModuleTitle:    module.ModuleTitle,
			CompletedCount: completed,
			TotalCount:     total,
			Percentage:     percentage,
		})

		summary.CompletedCount += completed
		summary.TotalCount += total
	}

	if summary.TotalCount > 0 {
		summary.Percentage = roundPercent(100.0 * float64(summary.CompletedCount) / float64(summary.TotalCount))
	}

	return summary
}
