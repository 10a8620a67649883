package models

// Request and response shapes exchanged with the HTTP layer. These are plain
// data-transfer structures: they are validated at the boundary and then
// handed to the services as ordinary arguments, so the persistence schema
// never binds directly to client input.

// RegisterRequest is the body of POST /api/user/register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// LoginRequest is the body of POST /api/user/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TaskInput carries the five mutable task fields submitted by the create and
// edit forms. The owner is never part of the input; it is taken from the
// caller's session.
type TaskInput struct {
	TaskName        string   `json:"task_name"`
	TaskDescription string   `json:"task_description"`
	DueDate         Date     `json:"due_date"`
	Progress        Progress `json:"progress"`
}

// ErrorResponse is the uniform error body returned by the API. For
// duplicate-name failures on create and edit, Submitted echoes the
// caller's input back so the client can redisplay the form pre-filled.
type ErrorResponse struct {
	Error     string     `json:"error"`
	Submitted *TaskInput `json:"submitted,omitempty"`
}
