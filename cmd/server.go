package cmd

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"taskpad/internal/config"
	"taskpad/internal/core"
	"taskpad/internal/db"
	"taskpad/internal/http/handler"
	"taskpad/internal/http/handler/middleware"
	"taskpad/internal/http/payload"
	"taskpad/internal/http/server"
	"taskpad/internal/http/view"
	"taskpad/internal/repository"
	"taskpad/internal/session"
	"taskpad/pkg/jwt"
	"taskpad/pkg/log"

	"go.uber.org/zap/zapcore"
)

func Start() error {
	logger := log.NewZapLogger("taskpad", zapcore.InfoLevel)

	config, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	dbConn, err := db.NewSqliteDB(config.DBPath)
	if err != nil {
		logger.Errorw("failed to open database", "error", err)
		return err
	}

	// jwt service
	jwtService := jwt.NewJWTService([]byte(config.SessionSecret))

	// repository
	repo := repository.NewTaskListRepository(dbConn)

	err = repo.MigrateTables()
	if err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	// sessions; no revocation store is wired, tokens live until expiry
	sessions := session.NewManager(jwtService, nil, config.SessionTTL)

	// tasklist
	tasklist := core.NewTaskList(logger, repo)

	views, err := view.NewRenderer()
	if err != nil {
		logger.Errorw("failed to create view renderer", "error", err)
		return err
	}

	// handler
	taskHlr := handler.NewTaskHandler(
		logger,
		payload.FormDecoder{},
		tasklist,
		sessions,
		views)

	// middleware
	mux := http.NewServeMux()
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	// register routes
	mux.HandleFunc(handler.Home, taskHlr.HandleHome)
	mux.HandleFunc(handler.Login, taskHlr.HandleLogin)
	mux.HandleFunc(handler.Register, taskHlr.HandleRegister)
	mux.HandleFunc(handler.Dashboard, taskHlr.HandleDashboard)
	mux.HandleFunc(handler.TaskList, taskHlr.HandleTaskList)
	mux.HandleFunc(handler.AddTask, taskHlr.HandleAddTask)
	mux.HandleFunc(handler.DeleteTask, taskHlr.HandleDeleteTask)
	mux.HandleFunc(handler.EditTaskForm, taskHlr.HandleEditTaskForm)
	mux.HandleFunc(handler.EditTask, taskHlr.HandleEditTask)
	mux.HandleFunc(handler.Logout, taskHlr.HandleLogout)

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == http.ErrServerClosed && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
