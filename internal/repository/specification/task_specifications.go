package specification

import "gorm.io/gorm"

// ByCompleted matches tasks on the completed flag exactly. Task listing always
// applies it: an absent query parameter and completed=false are the same request.
type ByCompleted struct {
	Completed bool
}

func (s ByCompleted) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("completed = ?", s.Completed)
}

// HabitOnly narrows to habitual tasks. Like InboxOnly, only the true case
// filters; habit=false is a no-op.
type HabitOnly struct{}

func (s HabitOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("habit = ?", true)
}
