package handler

import (
	"errors"
	"net/http"
	"strconv"

	"taskpad/internal/core"
	"taskpad/internal/http/handler/middleware"

	"go.uber.org/zap"
)

var (
	Home         = "GET /{$}"
	Login        = "POST /login"
	Register     = "POST /register"
	Dashboard    = "GET /dashboard"
	TaskList     = "GET /tasks"
	AddTask      = "POST /tasks"
	DeleteTask   = "GET /delete/{id}"
	EditTaskForm = "GET /edit/{id}"
	EditTask     = "POST /edit/{id}"
	Logout       = "GET /logout"
)

type TaskHandler struct {
	logs        *zap.SugaredLogger
	formDecoder FormDecoder
	tasks       TaskService
	sessions    Sessions
	views       Renderer
}

func NewTaskHandler(logger *zap.SugaredLogger, formDecoder FormDecoder, taskService TaskService, sessions Sessions, views Renderer) *TaskHandler {
	return &TaskHandler{
		logs:        logger,
		formDecoder: formDecoder,
		tasks:       taskService,
		sessions:    sessions,
		views:       views,
	}
}

func (h *TaskHandler) HandleHome(w http.ResponseWriter, r *http.Request) {
	requestId := ""
	reqIdCtx := r.Context().Value(middleware.RequestIDKey)
	if reqIdCtx != nil {
		requestId = reqIdCtx.(string)
	}

	if _, err := h.sessions.Authenticate(r); err == nil {
		http.Redirect(w, r, "/tasks", http.StatusFound)
		return
	}

	h.renderLanding(w, "", requestId)
}

func (h *TaskHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	requestId := ""
	reqIdCtx := r.Context().Value(middleware.RequestIDKey)
	if reqIdCtx != nil {
		requestId = reqIdCtx.(string)
	}

	form, err := h.formDecoder.DecodeCredentials(r)
	if err != nil {
		h.renderLanding(w, errInvalidCredentials, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Login,
			"request_id", requestId)
		return
	}

	identity, err := h.tasks.Login(r.Context(), form.ToCredentials())
	if err != nil {
		// unknown user and bad password render identically so usernames
		// cannot be enumerated through the login form
		if errors.Is(err, core.ErrUserNotFound) || errors.Is(err, core.ErrIncorrectPassword) {
			h.renderLanding(w, errInvalidCredentials, requestId)
			h.logs.Infow("login rejected",
				"handler", Login,
				"request_id", requestId)
			return
		}

		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("login failed",
			"error", err,
			"handler", Login,
			"request_id", requestId)
		return
	}

	if err := h.sessions.Issue(w, identity); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to issue session",
			"error", err,
			"handler", Login,
			"request_id", requestId)
		return
	}

	http.Redirect(w, r, "/tasks", http.StatusFound)
}

func (h *TaskHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	requestId := ""
	reqIdCtx := r.Context().Value(middleware.RequestIDKey)
	if reqIdCtx != nil {
		requestId = reqIdCtx.(string)
	}

	form, err := h.formDecoder.DecodeCredentials(r)
	if err != nil {
		h.renderLanding(w, err.Error(), requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Register,
			"request_id", requestId)
		return
	}

	identity, err := h.tasks.Register(r.Context(), form.ToCredentials())
	if err != nil {
		if errors.Is(err, core.ErrUserTaken) {
			h.renderLanding(w, errUserTaken, requestId)
			h.logs.Infow("registration rejected",
				"username", form.Username,
				"handler", Register,
				"request_id", requestId)
			return
		}

		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("registration failed",
			"error", err,
			"handler", Register,
			"request_id", requestId)
		return
	}

	if err := h.sessions.Issue(w, identity); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to issue session",
			"error", err,
			"handler", Register,
			"request_id", requestId)
		return
	}

	http.Redirect(w, r, "/tasks", http.StatusFound)
}

func (h *TaskHandler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	requestId := ""
	reqIdCtx := r.Context().Value(middleware.RequestIDKey)
	if reqIdCtx != nil {
		requestId = reqIdCtx.(string)
	}

	identity, err := h.sessions.Authenticate(r)
	if err != nil {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	h.render(w, "dashboard", map[string]any{
		"Username": identity.Username,
	}, requestId)
}

func (h *TaskHandler) HandleTaskList(w http.ResponseWriter, r *http.Request) {
	requestId := ""
	reqIdCtx := r.Context().Value(middleware.RequestIDKey)
	if reqIdCtx != nil {
		requestId = reqIdCtx.(string)
	}

	identity, err := h.sessions.Authenticate(r)
	if err != nil {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	tasks, err := h.tasks.Tasks(r.Context(), identity.UserID)
	if err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to list tasks",
			"error", err,
			"handler", TaskList,
			"request_id", requestId)
		return
	}

	h.render(w, "tasks", map[string]any{
		"Username": identity.Username,
		"Tasks":    tasks,
	}, requestId)
}

func (h *TaskHandler) HandleAddTask(w http.ResponseWriter, r *http.Request) {
	requestId := ""
	reqIdCtx := r.Context().Value(middleware.RequestIDKey)
	if reqIdCtx != nil {
		requestId = reqIdCtx.(string)
	}

	identity, err := h.sessions.Authenticate(r)
	if err != nil {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	form, err := h.formDecoder.DecodeTask(r)
	if err != nil {
		// blank or oversized content is a silent no-op
		http.Redirect(w, r, "/tasks", http.StatusFound)
		return
	}

	if _, err := h.tasks.AddTask(r.Context(), identity.UserID, form.Content); err != nil {
		if errors.Is(err, core.ErrEmptyContent) {
			http.Redirect(w, r, "/tasks", http.StatusFound)
			return
		}

		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to add task",
			"error", err,
			"handler", AddTask,
			"request_id", requestId)
		return
	}

	http.Redirect(w, r, "/tasks", http.StatusFound)
}

func (h *TaskHandler) HandleDeleteTask(w http.ResponseWriter, r *http.Request) {
	requestId := ""
	reqIdCtx := r.Context().Value(middleware.RequestIDKey)
	if reqIdCtx != nil {
		requestId = reqIdCtx.(string)
	}

	identity, err := h.sessions.Authenticate(r)
	if err != nil {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	taskID, ok := h.taskID(w, r)
	if !ok {
		return
	}

	if err := h.tasks.RemoveTask(r.Context(), identity.UserID, taskID); err != nil {
		if errors.Is(err, core.ErrTaskNotFound) {
			http.NotFound(w, r)
			return
		}

		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to delete task",
			"error", err,
			"handler", DeleteTask,
			"request_id", requestId)
		return
	}

	http.Redirect(w, r, "/tasks", http.StatusFound)
}

func (h *TaskHandler) HandleEditTaskForm(w http.ResponseWriter, r *http.Request) {
	requestId := ""
	reqIdCtx := r.Context().Value(middleware.RequestIDKey)
	if reqIdCtx != nil {
		requestId = reqIdCtx.(string)
	}

	identity, err := h.sessions.Authenticate(r)
	if err != nil {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	taskID, ok := h.taskID(w, r)
	if !ok {
		return
	}

	task, err := h.tasks.GetTask(r.Context(), identity.UserID, taskID)
	if err != nil {
		if errors.Is(err, core.ErrTaskNotFound) {
			http.NotFound(w, r)
			return
		}

		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to get task",
			"error", err,
			"handler", EditTaskForm,
			"request_id", requestId)
		return
	}

	h.render(w, "edit", map[string]any{
		"Task": task,
	}, requestId)
}

func (h *TaskHandler) HandleEditTask(w http.ResponseWriter, r *http.Request) {
	requestId := ""
	reqIdCtx := r.Context().Value(middleware.RequestIDKey)
	if reqIdCtx != nil {
		requestId = reqIdCtx.(string)
	}

	identity, err := h.sessions.Authenticate(r)
	if err != nil {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	taskID, ok := h.taskID(w, r)
	if !ok {
		return
	}

	form, err := h.formDecoder.DecodeTask(r)
	if err != nil {
		http.Redirect(w, r, "/tasks", http.StatusFound)
		return
	}

	if _, err := h.tasks.EditTask(r.Context(), identity.UserID, taskID, form.Content); err != nil {
		if errors.Is(err, core.ErrTaskNotFound) {
			http.NotFound(w, r)
			return
		}
		if errors.Is(err, core.ErrEmptyContent) {
			http.Redirect(w, r, "/tasks", http.StatusFound)
			return
		}

		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to edit task",
			"error", err,
			"handler", EditTask,
			"request_id", requestId)
		return
	}

	http.Redirect(w, r, "/tasks", http.StatusFound)
}

func (h *TaskHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Clear(w)
	http.Redirect(w, r, "/", http.StatusFound)
}

// taskID parses the {id} path segment, answering 404 itself when the
// segment is not a positive integer.
func (h *TaskHandler) taskID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return 0, false
	}
	return uint(id), true
}

func (h *TaskHandler) renderLanding(w http.ResponseWriter, errMsg string, requestId string) {
	data := map[string]any{}
	if errMsg != "" {
		data["Error"] = errMsg
	}
	h.render(w, "index", data, requestId)
}

func (h *TaskHandler) render(w http.ResponseWriter, name string, data map[string]any, requestId string) {
	if err := h.views.Render(w, name, data); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to render view",
			"error", err,
			"view", name,
			"request_id", requestId)
	}
}
