package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"brandtracker-api/internal/alert"
	"brandtracker-api/internal/brand"
	"brandtracker-api/internal/mention"
	"brandtracker-api/pkg/log"
)

// HTTPServer represents the HTTP server with all dependencies.
// New() only wires dependencies and validates them; Run() starts serving.
type HTTPServer struct {
	gin    *gin.Engine
	logger log.Logger
	host   string
	port   int
	mode   string

	brandUC   brand.UseCase
	mentionUC mention.UseCase
	alertUC   alert.UseCase

	db    *sql.DB
	redis *redis.Client
}

// Config is the constructor input for HTTPServer.
type Config struct {
	Host string
	Port int
	Mode string

	BrandUC   brand.UseCase
	MentionUC mention.UseCase
	AlertUC   alert.UseCase

	DB    *sql.DB
	Redis *redis.Client
}

// New creates a new HTTPServer instance with the provided configuration.
// This does NOT start any goroutines; use (*HTTPServer).Run().
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		gin:       gin.New(),
		logger:    logger,
		host:      cfg.Host,
		port:      cfg.Port,
		mode:      cfg.Mode,
		brandUC:   cfg.BrandUC,
		mentionUC: cfg.MentionUC,
		alertUC:   cfg.AlertUC,
		db:        cfg.DB,
		redis:     cfg.Redis,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate ensures all required dependencies are provided.
func (srv *HTTPServer) validate() error {
	if srv.logger == nil {
		return errors.New("logger is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.brandUC == nil || srv.mentionUC == nil || srv.alertUC == nil {
		return errors.New("use cases are required")
	}
	if srv.db == nil {
		return errors.New("database handle is required")
	}
	if srv.redis == nil {
		return errors.New("redis client is required")
	}
	return nil
}
