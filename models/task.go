package models

// Task represents a single tracked item on a user's board.
//
// A task belongs to exactly one owner and appears in exactly one progress
// bucket. TaskName is unique across the whole tasks table, not per owner;
// the database constraint is the authoritative enforcement point.
type Task struct {
	// TaskID is the internal unique identifier of the task.
	// System-assigned on creation and immutable afterwards.
	TaskID int64 `json:"id"`

	// UserID references the owning user. Every task has exactly one owner.
	UserID int64 `json:"user_id"`

	// TaskName is the display title of the task. Required, globally unique.
	TaskName string `json:"task_name"`

	// TaskDescription is the free-form body of the task. Required.
	TaskDescription string `json:"task_description"`

	// DueDate is the calendar date the task is due. Required. Only the date
	// component is meaningful; see [Date].
	DueDate Date `json:"due_date"`

	// Progress is the bucket the task currently sits in.
	Progress Progress `json:"progress"`
}

// TableName returns the name of the database table
// associated with the Task model.
func (t Task) TableName() string {
	return "tasks"
}

// TaskBuckets groups an owner's tasks by progress value for the board view.
// Each slice is ordered ascending by due date, ties broken by insertion
// order.
type TaskBuckets struct {
	NotStarted []Task `json:"not_started"`
	InProgress []Task `json:"in_progress"`
	Completed  []Task `json:"completed"`
}
