// Package web provides the HTTP server of the microblog application:
// routing, middleware and background job scheduling.
package web

import (
	"context"
	"io"
	"net"
	"net/http"
	"time"

	"microblog/config"
	"microblog/logger"
	"microblog/web/controller"
	"microblog/web/job"
	"microblog/web/middleware"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

const httpShutdownTimeout = 5 * time.Second

// Server is the microblog web server. The database handle is injected at
// construction and passed down to every controller.
type Server struct {
	httpServer *http.Server
	listener   net.Listener

	db *gorm.DB

	auth    *controller.AuthController
	post    *controller.PostController
	setting *controller.SettingController
	stats   *controller.StatsController

	cron *cron.Cron

	ctx    context.Context
	cancel context.CancelFunc
}

// NewServer creates a new web server instance with a cancellable context.
func NewServer(db *gorm.DB) *Server {
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{db: db, ctx: ctx, cancel: cancel}
}

// initRouter initializes gin, registers middleware and controllers and
// returns the configured engine.
func (s *Server) initRouter() (*gin.Engine, error) {
	if config.IsDebug() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.DefaultWriter = io.Discard
		gin.DefaultErrorWriter = io.Discard
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.Default()
	engine.Use(middleware.RequestID())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	g := engine.Group("/")
	s.auth = controller.NewAuthController(g, s.db)
	s.post = controller.NewPostController(g, s.db)
	s.setting = controller.NewSettingController(g, s.db)
	s.stats = controller.NewStatsController(g, s.db)

	engine.NoRoute(func(c *gin.Context) {
		c.AbortWithStatus(http.StatusNotFound)
	})

	return engine, nil
}

// startTask schedules the background jobs.
func (s *Server) startTask() {
	s.cron.AddJob("@every 10m", job.NewCheckpointJob(s.db))
}

// Start begins listening and serving HTTP requests.
func (s *Server) Start() error {
	engine, err := s.initRouter()
	if err != nil {
		return err
	}

	addr := net.JoinHostPort(config.GetListen(), config.GetPort())
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	s.listener = listener

	s.cron = cron.New()
	s.startTask()
	s.cron.Start()

	s.httpServer = &http.Server{
		Handler: engine,
	}

	go func() {
		if err := s.httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
			logger.Error("serve err:", err)
		}
	}()

	logger.Infof("%v %v listening on %v", config.GetName(), config.GetVersion(), addr)
	return nil
}

// Stop gracefully shuts down the server and its background jobs.
func (s *Server) Stop() error {
	s.cancel()
	if s.cron != nil {
		s.cron.Stop()
	}
	if s.httpServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), httpShutdownTimeout)
		defer cancel()
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
