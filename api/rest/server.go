package rest

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/TopiaNetwork/gastimator/configuration"
	"github.com/TopiaNetwork/gastimator/gastimator"
	tplog "github.com/TopiaNetwork/gastimator/log"
	tplogcmm "github.com/TopiaNetwork/gastimator/log/common"
)

const (
	readTimeout    = 5 * time.Second
	writeTimeout   = 65 * time.Second
	handlerTimeout = 60 * time.Second
)

// Server exposes the estimation engine over HTTP: POST /tx takes a
// structured transaction, POST /rlp takes {"rlp": "<hex>"}.
type Server struct {
	config    *configuration.ServerConfiguration
	estimator *gastimator.Gastimator
	log       tplog.Logger
	ready     chan net.Addr
}

func NewServer(config *configuration.ServerConfiguration, estimator *gastimator.Gastimator, level tplogcmm.LogLevel, parentLog tplog.Logger) *Server {
	return &Server{
		config:    config,
		estimator: estimator,
		log:       tplog.CreateModuleLogger(level, "rest", parentLog),
		ready:     make(chan net.Addr, 1),
	}
}

// Ready yields the bound address once the listener is live, so callers
// can wait for the endpoints before using them.
func (s *Server) Ready() <-chan net.Addr {
	return s.ready
}

// accessLogWriter feeds the gorilla access log lines into the module
// logger.
type accessLogWriter struct {
	log tplog.Logger
}

func (w accessLogWriter) Write(p []byte) (int, error) {
	w.log.Info(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}

func (s *Server) router() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/tx", s.handleEstimateTx).Methods(http.MethodPost)
	r.HandleFunc("/rlp", s.handleEstimateRlp).Methods(http.MethodPost)

	var h http.Handler = handlers.CombinedLoggingHandler(accessLogWriter{log: s.log}, r)
	h = handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodPost, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)(h)
	return http.TimeoutHandler(h, handlerTimeout, "timeout")
}

// Run binds the listener, signals readiness, and serves until ctx is
// canceled. A bind failure is returned to the caller and is fatal.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.ListenAddress())
	if err != nil {
		return fmt.Errorf("unable to bind to %s: %w", s.config.ListenAddress(), err)
	}
	s.log.Infof("listening on %s", ln.Addr())
	s.ready <- ln.Addr()

	srv := &http.Server{
		Handler:      s.router(),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("unable to start server: %w", err)
	}
	return nil
}
