package handler_test

import (
	"errors"
	"net/http"
	"net/http/httptest"

	"taskpad/internal/core"
	"taskpad/internal/http/handler"
	"taskpad/internal/http/handler/fake"
	"taskpad/internal/http/payload"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("TaskHandler", func() {
	var (
		fakeTasks    *fake.TaskService
		fakeSessions *fake.Sessions
		fakeViews    *fake.Renderer
		fakeDecoder  *fake.FormDecoder
		taskHandler  *handler.TaskHandler
		w            *httptest.ResponseRecorder
		identity     core.Identity
		fakeErr      error
	)

	BeforeEach(func() {
		fakeTasks = new(fake.TaskService)
		fakeSessions = new(fake.Sessions)
		fakeViews = new(fake.Renderer)
		fakeDecoder = new(fake.FormDecoder)
		taskHandler = handler.NewTaskHandler(zap.NewNop().Sugar(), fakeDecoder, fakeTasks, fakeSessions, fakeViews)
		w = httptest.NewRecorder()
		identity = core.Identity{UserID: 42, Username: "alice"}
		fakeErr = errors.New("fake error")
	})

	// pathRequest builds a request whose {id} path segment is already
	// resolved, the way the mux hands it to the handler.
	pathRequest := func(method, target, id string) *http.Request {
		req := httptest.NewRequest(method, target, nil)
		req.SetPathValue("id", id)
		return req
	}

	Describe("HandleHome", func() {
		When("the visitor has no session", func() {
			BeforeEach(func() {
				fakeSessions.AuthenticateReturns(core.Identity{}, errors.New("no session"))
			})

			It("should render the landing page without an error message", func() {
				taskHandler.HandleHome(w, httptest.NewRequest("GET", "/", nil))

				Expect(fakeViews.RenderCallCount()).To(Equal(1))
				_, name, data := fakeViews.RenderArgsForCall(0)
				Expect(name).To(Equal("index"))
				Expect(data).NotTo(HaveKey("Error"))
			})
		})

		When("the visitor is already signed in", func() {
			BeforeEach(func() {
				fakeSessions.AuthenticateReturns(identity, nil)
			})

			It("should redirect to the task list", func() {
				taskHandler.HandleHome(w, httptest.NewRequest("GET", "/", nil))

				Expect(w.Code).To(Equal(http.StatusFound))
				Expect(w.Header().Get("Location")).To(Equal("/tasks"))
			})
		})
	})

	Describe("HandleLogin", func() {
		BeforeEach(func() {
			fakeDecoder.DecodeCredentialsReturns(payload.CredentialsForm{Username: "alice", Password: "pw1"}, nil)
		})

		When("the credentials are correct", func() {
			BeforeEach(func() {
				fakeTasks.LoginReturns(identity, nil)
			})

			It("should issue a session and redirect to the task list", func() {
				taskHandler.HandleLogin(w, httptest.NewRequest("POST", "/login", nil))

				Expect(fakeTasks.LoginCallCount()).To(Equal(1))
				_, creds := fakeTasks.LoginArgsForCall(0)
				Expect(creds).To(Equal(core.Credentials{Username: "alice", Password: "pw1"}))

				Expect(fakeSessions.IssueCallCount()).To(Equal(1))
				_, issued := fakeSessions.IssueArgsForCall(0)
				Expect(issued).To(Equal(identity))

				Expect(w.Code).To(Equal(http.StatusFound))
				Expect(w.Header().Get("Location")).To(Equal("/tasks"))
			})
		})

		When("the user does not exist", func() {
			BeforeEach(func() {
				fakeTasks.LoginReturns(core.Identity{}, core.ErrUserNotFound)
			})

			It("should render the landing page with the generic failure message", func() {
				taskHandler.HandleLogin(w, httptest.NewRequest("POST", "/login", nil))

				Expect(fakeSessions.IssueCallCount()).To(Equal(0))
				Expect(fakeViews.RenderCallCount()).To(Equal(1))
				_, name, data := fakeViews.RenderArgsForCall(0)
				Expect(name).To(Equal("index"))
				Expect(data["Error"]).To(Equal("Invalid username or password."))
			})
		})

		When("the password is wrong", func() {
			BeforeEach(func() {
				fakeTasks.LoginReturns(core.Identity{}, core.ErrIncorrectPassword)
			})

			It("should render the same failure message as an unknown user", func() {
				taskHandler.HandleLogin(w, httptest.NewRequest("POST", "/login", nil))

				Expect(fakeViews.RenderCallCount()).To(Equal(1))
				_, _, data := fakeViews.RenderArgsForCall(0)
				Expect(data["Error"]).To(Equal("Invalid username or password."))
			})
		})

		When("the form does not validate", func() {
			BeforeEach(func() {
				fakeDecoder.DecodeCredentialsReturns(payload.CredentialsForm{}, errors.New("Username: cannot be blank."))
			})

			It("should render the generic failure message without calling the service", func() {
				taskHandler.HandleLogin(w, httptest.NewRequest("POST", "/login", nil))

				Expect(fakeTasks.LoginCallCount()).To(Equal(0))
				Expect(fakeViews.RenderCallCount()).To(Equal(1))
				_, _, data := fakeViews.RenderArgsForCall(0)
				Expect(data["Error"]).To(Equal("Invalid username or password."))
			})
		})

		When("the service fails", func() {
			BeforeEach(func() {
				fakeTasks.LoginReturns(core.Identity{}, fakeErr)
			})

			It("should answer with internal server error", func() {
				taskHandler.HandleLogin(w, httptest.NewRequest("POST", "/login", nil))

				Expect(w.Code).To(Equal(http.StatusInternalServerError))
			})
		})

		When("issuing the session fails", func() {
			BeforeEach(func() {
				fakeTasks.LoginReturns(identity, nil)
				fakeSessions.IssueReturns(fakeErr)
			})

			It("should answer with internal server error", func() {
				taskHandler.HandleLogin(w, httptest.NewRequest("POST", "/login", nil))

				Expect(w.Code).To(Equal(http.StatusInternalServerError))
			})
		})
	})

	Describe("HandleRegister", func() {
		BeforeEach(func() {
			fakeDecoder.DecodeCredentialsReturns(payload.CredentialsForm{Username: "alice", Password: "pw1"}, nil)
		})

		When("the username is free", func() {
			BeforeEach(func() {
				fakeTasks.RegisterReturns(identity, nil)
			})

			It("should sign the new user in and redirect to the task list", func() {
				taskHandler.HandleRegister(w, httptest.NewRequest("POST", "/register", nil))

				Expect(fakeTasks.RegisterCallCount()).To(Equal(1))
				Expect(fakeSessions.IssueCallCount()).To(Equal(1))
				Expect(w.Code).To(Equal(http.StatusFound))
				Expect(w.Header().Get("Location")).To(Equal("/tasks"))
			})
		})

		When("the username is taken", func() {
			BeforeEach(func() {
				fakeTasks.RegisterReturns(core.Identity{}, core.ErrUserTaken)
			})

			It("should render the landing page with the taken message", func() {
				taskHandler.HandleRegister(w, httptest.NewRequest("POST", "/register", nil))

				Expect(fakeSessions.IssueCallCount()).To(Equal(0))
				Expect(fakeViews.RenderCallCount()).To(Equal(1))
				_, _, data := fakeViews.RenderArgsForCall(0)
				Expect(data["Error"]).To(Equal("User already registered."))
			})
		})

		When("the form does not validate", func() {
			BeforeEach(func() {
				fakeDecoder.DecodeCredentialsReturns(payload.CredentialsForm{}, errors.New("Username: cannot be blank."))
			})

			It("should render the validation message", func() {
				taskHandler.HandleRegister(w, httptest.NewRequest("POST", "/register", nil))

				Expect(fakeTasks.RegisterCallCount()).To(Equal(0))
				_, _, data := fakeViews.RenderArgsForCall(0)
				Expect(data["Error"]).To(Equal("Username: cannot be blank."))
			})
		})

		When("the service fails", func() {
			BeforeEach(func() {
				fakeTasks.RegisterReturns(core.Identity{}, fakeErr)
			})

			It("should answer with internal server error", func() {
				taskHandler.HandleRegister(w, httptest.NewRequest("POST", "/register", nil))

				Expect(w.Code).To(Equal(http.StatusInternalServerError))
			})
		})
	})

	Describe("HandleDashboard", func() {
		When("the visitor is signed in", func() {
			BeforeEach(func() {
				fakeSessions.AuthenticateReturns(identity, nil)
			})

			It("should render the dashboard with the username", func() {
				taskHandler.HandleDashboard(w, httptest.NewRequest("GET", "/dashboard", nil))

				Expect(fakeViews.RenderCallCount()).To(Equal(1))
				_, name, data := fakeViews.RenderArgsForCall(0)
				Expect(name).To(Equal("dashboard"))
				Expect(data["Username"]).To(Equal("alice"))
			})
		})

		When("the visitor has no session", func() {
			BeforeEach(func() {
				fakeSessions.AuthenticateReturns(core.Identity{}, errors.New("no session"))
			})

			It("should redirect to the landing page", func() {
				taskHandler.HandleDashboard(w, httptest.NewRequest("GET", "/dashboard", nil))

				Expect(w.Code).To(Equal(http.StatusFound))
				Expect(w.Header().Get("Location")).To(Equal("/"))
			})
		})
	})

	Describe("HandleTaskList", func() {
		BeforeEach(func() {
			fakeSessions.AuthenticateReturns(identity, nil)
		})

		When("listing succeeds", func() {
			BeforeEach(func() {
				fakeTasks.TasksReturns([]core.TaskRecord{{ID: 3, Content: "Buy milk"}}, nil)
			})

			It("should render the owner's tasks", func() {
				taskHandler.HandleTaskList(w, httptest.NewRequest("GET", "/tasks", nil))

				Expect(fakeTasks.TasksCallCount()).To(Equal(1))
				_, userID := fakeTasks.TasksArgsForCall(0)
				Expect(userID).To(Equal(uint(42)))

				Expect(fakeViews.RenderCallCount()).To(Equal(1))
				_, name, data := fakeViews.RenderArgsForCall(0)
				Expect(name).To(Equal("tasks"))
				Expect(data["Username"]).To(Equal("alice"))
				Expect(data["Tasks"]).To(Equal([]core.TaskRecord{{ID: 3, Content: "Buy milk"}}))
			})
		})

		When("the visitor has no session", func() {
			BeforeEach(func() {
				fakeSessions.AuthenticateReturns(core.Identity{}, errors.New("no session"))
			})

			It("should redirect to the landing page", func() {
				taskHandler.HandleTaskList(w, httptest.NewRequest("GET", "/tasks", nil))

				Expect(fakeTasks.TasksCallCount()).To(Equal(0))
				Expect(w.Code).To(Equal(http.StatusFound))
				Expect(w.Header().Get("Location")).To(Equal("/"))
			})
		})

		When("listing fails", func() {
			BeforeEach(func() {
				fakeTasks.TasksReturns(nil, fakeErr)
			})

			It("should answer with internal server error", func() {
				taskHandler.HandleTaskList(w, httptest.NewRequest("GET", "/tasks", nil))

				Expect(w.Code).To(Equal(http.StatusInternalServerError))
			})
		})
	})

	Describe("HandleAddTask", func() {
		BeforeEach(func() {
			fakeSessions.AuthenticateReturns(identity, nil)
			fakeDecoder.DecodeTaskReturns(payload.TaskForm{Content: "Buy milk"}, nil)
		})

		It("should add the task for the signed-in user and redirect", func() {
			taskHandler.HandleAddTask(w, httptest.NewRequest("POST", "/tasks", nil))

			Expect(fakeTasks.AddTaskCallCount()).To(Equal(1))
			_, userID, content := fakeTasks.AddTaskArgsForCall(0)
			Expect(userID).To(Equal(uint(42)))
			Expect(content).To(Equal("Buy milk"))

			Expect(w.Code).To(Equal(http.StatusFound))
			Expect(w.Header().Get("Location")).To(Equal("/tasks"))
		})

		When("the form does not validate", func() {
			BeforeEach(func() {
				fakeDecoder.DecodeTaskReturns(payload.TaskForm{}, errors.New("Content: cannot be blank."))
			})

			It("should silently redirect back to the task list", func() {
				taskHandler.HandleAddTask(w, httptest.NewRequest("POST", "/tasks", nil))

				Expect(fakeTasks.AddTaskCallCount()).To(Equal(0))
				Expect(w.Code).To(Equal(http.StatusFound))
				Expect(w.Header().Get("Location")).To(Equal("/tasks"))
			})
		})

		When("the content is blank after trimming", func() {
			BeforeEach(func() {
				fakeTasks.AddTaskReturns(core.TaskRecord{}, core.ErrEmptyContent)
			})

			It("should silently redirect back to the task list", func() {
				taskHandler.HandleAddTask(w, httptest.NewRequest("POST", "/tasks", nil))

				Expect(w.Code).To(Equal(http.StatusFound))
				Expect(w.Header().Get("Location")).To(Equal("/tasks"))
			})
		})

		When("the visitor has no session", func() {
			BeforeEach(func() {
				fakeSessions.AuthenticateReturns(core.Identity{}, errors.New("no session"))
			})

			It("should redirect to the landing page", func() {
				taskHandler.HandleAddTask(w, httptest.NewRequest("POST", "/tasks", nil))

				Expect(fakeTasks.AddTaskCallCount()).To(Equal(0))
				Expect(w.Header().Get("Location")).To(Equal("/"))
			})
		})
	})

	Describe("HandleDeleteTask", func() {
		BeforeEach(func() {
			fakeSessions.AuthenticateReturns(identity, nil)
		})

		It("should remove the task and redirect to the task list", func() {
			taskHandler.HandleDeleteTask(w, pathRequest("GET", "/delete/3", "3"))

			Expect(fakeTasks.RemoveTaskCallCount()).To(Equal(1))
			_, userID, taskID := fakeTasks.RemoveTaskArgsForCall(0)
			Expect(userID).To(Equal(uint(42)))
			Expect(taskID).To(Equal(uint(3)))

			Expect(w.Code).To(Equal(http.StatusFound))
			Expect(w.Header().Get("Location")).To(Equal("/tasks"))
		})

		When("the id segment is not a number", func() {
			It("should answer with not found", func() {
				taskHandler.HandleDeleteTask(w, pathRequest("GET", "/delete/abc", "abc"))

				Expect(fakeTasks.RemoveTaskCallCount()).To(Equal(0))
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})

		When("the task does not belong to the user", func() {
			BeforeEach(func() {
				fakeTasks.RemoveTaskReturns(core.ErrTaskNotFound)
			})

			It("should answer with not found", func() {
				taskHandler.HandleDeleteTask(w, pathRequest("GET", "/delete/3", "3"))

				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})

		When("the service fails", func() {
			BeforeEach(func() {
				fakeTasks.RemoveTaskReturns(fakeErr)
			})

			It("should answer with internal server error", func() {
				taskHandler.HandleDeleteTask(w, pathRequest("GET", "/delete/3", "3"))

				Expect(w.Code).To(Equal(http.StatusInternalServerError))
			})
		})
	})

	Describe("HandleEditTaskForm", func() {
		BeforeEach(func() {
			fakeSessions.AuthenticateReturns(identity, nil)
		})

		When("the task belongs to the user", func() {
			BeforeEach(func() {
				fakeTasks.GetTaskReturns(core.TaskRecord{ID: 3, Content: "Buy milk"}, nil)
			})

			It("should render the edit form with the task", func() {
				taskHandler.HandleEditTaskForm(w, pathRequest("GET", "/edit/3", "3"))

				Expect(fakeTasks.GetTaskCallCount()).To(Equal(1))
				_, userID, taskID := fakeTasks.GetTaskArgsForCall(0)
				Expect(userID).To(Equal(uint(42)))
				Expect(taskID).To(Equal(uint(3)))

				Expect(fakeViews.RenderCallCount()).To(Equal(1))
				_, name, data := fakeViews.RenderArgsForCall(0)
				Expect(name).To(Equal("edit"))
				Expect(data["Task"]).To(Equal(core.TaskRecord{ID: 3, Content: "Buy milk"}))
			})
		})

		When("the task does not belong to the user", func() {
			BeforeEach(func() {
				fakeTasks.GetTaskReturns(core.TaskRecord{}, core.ErrTaskNotFound)
			})

			It("should answer with not found", func() {
				taskHandler.HandleEditTaskForm(w, pathRequest("GET", "/edit/3", "3"))

				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})
	})

	Describe("HandleEditTask", func() {
		BeforeEach(func() {
			fakeSessions.AuthenticateReturns(identity, nil)
			fakeDecoder.DecodeTaskReturns(payload.TaskForm{Content: "Buy bread"}, nil)
		})

		It("should save the new content and redirect to the task list", func() {
			taskHandler.HandleEditTask(w, pathRequest("POST", "/edit/3", "3"))

			Expect(fakeTasks.EditTaskCallCount()).To(Equal(1))
			_, userID, taskID, content := fakeTasks.EditTaskArgsForCall(0)
			Expect(userID).To(Equal(uint(42)))
			Expect(taskID).To(Equal(uint(3)))
			Expect(content).To(Equal("Buy bread"))

			Expect(w.Code).To(Equal(http.StatusFound))
			Expect(w.Header().Get("Location")).To(Equal("/tasks"))
		})

		When("the task does not belong to the user", func() {
			BeforeEach(func() {
				fakeTasks.EditTaskReturns(core.TaskRecord{}, core.ErrTaskNotFound)
			})

			It("should answer with not found", func() {
				taskHandler.HandleEditTask(w, pathRequest("POST", "/edit/3", "3"))

				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})

		When("the form does not validate", func() {
			BeforeEach(func() {
				fakeDecoder.DecodeTaskReturns(payload.TaskForm{}, errors.New("Content: cannot be blank."))
			})

			It("should silently redirect back to the task list", func() {
				taskHandler.HandleEditTask(w, pathRequest("POST", "/edit/3", "3"))

				Expect(fakeTasks.EditTaskCallCount()).To(Equal(0))
				Expect(w.Code).To(Equal(http.StatusFound))
				Expect(w.Header().Get("Location")).To(Equal("/tasks"))
			})
		})
	})

	Describe("HandleLogout", func() {
		It("should clear the session and redirect to the landing page", func() {
			taskHandler.HandleLogout(w, httptest.NewRequest("GET", "/logout", nil))

			Expect(fakeSessions.ClearCallCount()).To(Equal(1))
			Expect(w.Code).To(Equal(http.StatusFound))
			Expect(w.Header().Get("Location")).To(Equal("/"))
		})
	})
})
