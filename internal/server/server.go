package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/meshforge/repeaterd/internal/config"
)

// DefaultWebRoot is the bundled location of the compiled frontend,
// used when web.web_path is not configured.
const DefaultWebRoot = "web/html"

type State string

const (
	StateStopped State = "stopped"
	StateRunning State = "running"
)

// RegisterAPIFn mounts the API delegate's routes on the reserved /api
// group. The server never inspects what the delegate registers.
type RegisterAPIFn func(group *gin.RouterGroup)

// Server owns the HTTP listener of the web front end. The route table
// is rebuilt on every Start so the served routes track whichever
// frontend build artifacts are deployed at that moment.
type Server struct {
	cfg         *config.Configuration
	registerAPI RegisterAPIFn
	logger      *zap.SugaredLogger

	mu       sync.Mutex
	state    State
	httpSrv  *http.Server
	listener net.Listener
	plan     RoutePlan
}

func New(cfg *config.Configuration, registerAPI RegisterAPIFn) *Server {
	return &Server{
		cfg:         cfg,
		registerAPI: registerAPI,
		logger:      zap.S().Named("web"),
		state:       StateStopped,
	}
}

// WebRoot resolves the directory the frontend is served from: the
// configured override when set, the bundled default otherwise.
func (s *Server) WebRoot() string {
	if s.cfg.Web.WebPath != "" {
		return s.cfg.Web.WebPath
	}
	return DefaultWebRoot
}

// Start assembles the routing table, binds the configured address and
// begins serving. Calling Start while the server is already running is
// a no-op with a warning. On any failure nothing stays bound.
func (s *Server) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateRunning {
		s.logger.Warnw("start ignored, web server already running", "addr", s.cfg.Web.Addr())
		return nil
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	httpLogger := zap.L().Named("http")
	engine.Use(ginzap.Ginzap(httpLogger, time.RFC3339, true))
	engine.Use(ginzap.RecoveryWithZap(httpLogger, true))

	// CORS must be installed before any route is mounted so there is
	// no window in which pre-flight requests fail.
	if s.cfg.Web.CORSEnabled {
		corsCfg := cors.DefaultConfig()
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
		corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
		engine.Use(cors.New(corsCfg))
		s.logger.Infow("CORS support enabled")
	}

	plan := PlanRoutes(s.WebRoot())
	app := newSPAApp(plan)

	apiGroup := engine.Group(APIPrefix)
	if s.registerAPI != nil {
		s.registerAPI(apiGroup)
	}

	engine.GET("/", app.serveIndex)
	engine.HEAD("/", app.serveIndex)
	engine.GET("/favicon.ico", faviconHandler(plan.Favicon))
	for _, sd := range plan.StaticDirs {
		engine.GET(sd.Prefix+"/*filepath", staticHandler(sd.Dir))
		engine.HEAD(sd.Prefix+"/*filepath", staticHandler(sd.Dir))
	}
	engine.NoRoute(app.dispatch)

	listener, err := net.Listen("tcp", s.cfg.Web.Addr())
	if err != nil {
		return fmt.Errorf("bind web server on %s: %w", s.cfg.Web.Addr(), err)
	}

	httpSrv := &http.Server{
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	s.plan = plan
	s.listener = listener
	s.httpSrv = httpSrv
	s.state = StateRunning

	go func() {
		if err := httpSrv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Errorw("web server terminated", "error", err)
		}
	}()

	s.logger.Infow("web server started",
		"url", fmt.Sprintf("http://%s", listener.Addr()),
		"web_root", plan.WebRoot,
		"cors_enabled", s.cfg.Web.CORSEnabled,
	)
	return nil
}

// Stop shuts the listener down gracefully, waiting for in-flight
// requests up to the context deadline. It is idempotent: stopping a
// stopped server only logs a warning. Stop-time errors are logged,
// never escalated, so shutdown always completes.
func (s *Server) Stop(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateRunning {
		s.logger.Warnw("stop ignored, web server not running")
		return
	}

	if err := s.httpSrv.Shutdown(ctx); err != nil {
		s.logger.Warnw("error stopping web server", "error", err)
	}
	s.httpSrv = nil
	s.listener = nil
	s.state = StateStopped
	s.logger.Infow("web server stopped")
}

// State reports the lifecycle state.
func (s *Server) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Addr returns the bound address, or the empty string when stopped.
// Useful when the configured port is 0.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Plan returns the routing plan of the current run.
func (s *Server) Plan() RoutePlan {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.plan
}
