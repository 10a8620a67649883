package store

import (
	"github.com/MKhiriev/go-task-board/models"
	"github.com/Masterminds/squirrel"
)

const (
	usersTable = "users"
	tasksTable = "tasks"
)

// Column lists returned by every user/task read and write. Keeping them in
// one place keeps the RETURNING clauses and the Scan call sites in sync.
var (
	userColumns = []string{"user_id", "email", "password_hash", "name", "created_at"}
	taskColumns = []string{"task_id", "user_id", "task_name", "task_description", "due_date", "progress"}
)

func returning(columns []string) string {
	suffix := "RETURNING " + columns[0]
	for _, c := range columns[1:] {
		suffix += ", " + c
	}
	return suffix
}

func insertUserQuery(b squirrel.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(usersTable).
		Columns("email", "password_hash", "name").
		Values(user.Email, user.PasswordHash, user.Name).
		Suffix(returning(userColumns)).
		ToSql()
}

func selectUserByEmailQuery(b squirrel.StatementBuilderType, email string) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(squirrel.Eq{"email": email}).
		ToSql()
}

func insertTaskQuery(b squirrel.StatementBuilderType, task models.Task) (string, []any, error) {
	return b.Insert(tasksTable).
		Columns("user_id", "task_name", "task_description", "due_date", "progress").
		Values(task.UserID, task.TaskName, task.TaskDescription, task.DueDate, task.Progress).
		Suffix(returning(taskColumns)).
		ToSql()
}

func selectTaskByIDQuery(b squirrel.StatementBuilderType, taskID int64) (string, []any, error) {
	return b.Select(taskColumns...).
		From(tasksTable).
		Where(squirrel.Eq{"task_id": taskID}).
		ToSql()
}

// selectTaskNameTakenQuery builds the advisory duplicate-name pre-check:
// does any task other than excludeTaskID already carry this name? Pass
// excludeTaskID 0 on create (no task has ID 0). The UNIQUE constraint on
// tasks.task_name remains the authoritative backstop for races that slip
// past this check.
func selectTaskNameTakenQuery(b squirrel.StatementBuilderType, taskName string, excludeTaskID int64) (string, []any, error) {
	return b.Select().
		Column(squirrel.Expr(
			"EXISTS(SELECT 1 FROM "+tasksTable+" WHERE task_name = ? AND task_id <> ?) AS taken",
			taskName, excludeTaskID,
		)).
		ToSql()
}

// updateTaskQuery overwrites all five mutable columns, user_id included:
// editing a task reassigns it to the editing caller.
func updateTaskQuery(b squirrel.StatementBuilderType, task models.Task) (string, []any, error) {
	return b.Update(tasksTable).
		Set("user_id", task.UserID).
		Set("task_name", task.TaskName).
		Set("task_description", task.TaskDescription).
		Set("due_date", task.DueDate).
		Set("progress", task.Progress).
		Where(squirrel.Eq{"task_id": task.TaskID}).
		Suffix(returning(taskColumns)).
		ToSql()
}

func deleteTaskQuery(b squirrel.StatementBuilderType, taskID int64) (string, []any, error) {
	return b.Delete(tasksTable).
		Where(squirrel.Eq{"task_id": taskID}).
		ToSql()
}

// selectTasksByOwnerQuery orders by due date ascending with task_id as the
// tiebreak, so tasks sharing a due date keep their insertion order.
func selectTasksByOwnerQuery(b squirrel.StatementBuilderType, ownerID int64) (string, []any, error) {
	return b.Select(taskColumns...).
		From(tasksTable).
		Where(squirrel.Eq{"user_id": ownerID}).
		OrderBy("due_date", "task_id").
		ToSql()
}
