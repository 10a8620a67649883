package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-task-board/internal/logger"
	"github.com/MKhiriev/go-task-board/internal/store"
	"github.com/MKhiriev/go-task-board/internal/utils"
	"github.com/MKhiriev/go-task-board/models"
	"github.com/go-chi/chi/v5"
)

// tasksPath is where clients are redirected after a transient persistence
// failure: the board listing reloads and shows the authoritative state.
const tasksPath = "/api/tasks"

// listTasks returns the caller's tasks grouped into the three progress
// buckets. The identify middleware resolves the session if one is present;
// an anonymous caller gets empty buckets, never an error.
func (h *Handler) listTasks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, _ := utils.GetUserIDFromContext(ctx)

	buckets, err := h.services.TaskService.Buckets(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listTasks").Msg("error listing tasks")
		writeError(w, "error listing tasks", statusFromError(err))
		return
	}

	utils.WriteJSON(w, buckets, http.StatusOK)
}

func (h *Handler) createTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var input models.TaskInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Err(err).Str("func", "*Handler.createTask").Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.TaskService.Create(ctx, userID, input)
	if err != nil {
		h.taskWriteError(w, r, err, input)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

// taskDetails serves a single task by ID. Any caller may view any task.
func (h *Handler) taskDetails(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	taskID, err := taskIDFromRequest(r)
	if err != nil {
		writeError(w, "invalid task id", http.StatusBadRequest)
		return
	}

	task, err := h.services.TaskService.Get(ctx, taskID)
	if err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			writeError(w, "task was not found", http.StatusNotFound)
			return
		}

		log.Err(err).Str("func", "*Handler.taskDetails").Msg("error fetching task")
		writeError(w, "error fetching task", statusFromError(err))
		return
	}

	utils.WriteJSON(w, task, http.StatusOK)
}

func (h *Handler) updateTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	taskID, err := taskIDFromRequest(r)
	if err != nil {
		writeError(w, "invalid task id", http.StatusBadRequest)
		return
	}

	var input models.TaskInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Err(err).Str("func", "*Handler.updateTask").Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updated, err := h.services.TaskService.Update(ctx, taskID, userID, input)
	if err != nil {
		h.taskWriteError(w, r, err, input)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

// deleteTask removes a task unconditionally. Any caller may delete any task.
func (h *Handler) deleteTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	taskID, err := taskIDFromRequest(r)
	if err != nil {
		writeError(w, "invalid task id", http.StatusBadRequest)
		return
	}

	if err := h.services.TaskService.Delete(ctx, taskID); err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			writeError(w, "task was not found", http.StatusNotFound)
			return
		}

		log.Err(err).Str("func", "*Handler.deleteTask").Msg("error deleting task")
		writeError(w, "error deleting task", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// taskWriteError maps a failed create or update to its response. The two
// special cases are shared between both handlers:
//   - a duplicate task name answers 409 and echoes the submitted fields back
//     so the client can redisplay the form pre-filled;
//   - a transient store failure answers 303 See Other to the board listing,
//     which reloads the authoritative state instead of showing a dead form.
func (h *Handler) taskWriteError(w http.ResponseWriter, r *http.Request, err error, input models.TaskInput) {
	log := logger.FromRequest(r)

	switch {
	case errors.Is(err, store.ErrTaskNameAlreadyExists):
		log.Err(err).Msg("task name already exists")
		utils.WriteJSON(w, models.ErrorResponse{
			Error:     "task name already exists",
			Submitted: &input,
		}, http.StatusConflict)
	case errors.Is(err, store.ErrTransientStoreFailure):
		log.Err(err).Msg("transient store failure, redirecting to listing")
		http.Redirect(w, r, tasksPath, http.StatusSeeOther)
	case errors.Is(err, store.ErrTaskNotFound):
		writeError(w, "task was not found", http.StatusNotFound)
	default:
		log.Err(err).Msg("error saving task")
		writeError(w, err.Error(), statusFromError(err))
	}
}

func taskIDFromRequest(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "taskID"), 10, 64)
}
