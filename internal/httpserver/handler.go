package httpserver

import (
	"github.com/prometheus/client_golang/prometheus/promhttp"

	alertHTTP "brandtracker-api/internal/alert/delivery/http"
	brandHTTP "brandtracker-api/internal/brand/delivery/http"
	mentionHTTP "brandtracker-api/internal/mention/delivery/http"
	"brandtracker-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

const api = "/api/v1"

func (srv *HTTPServer) mapHandlers() error {
	srv.gin.Use(middleware.Recovery(srv.logger))
	srv.gin.Use(middleware.CORS(middleware.DefaultCORSConfig()))

	// Operational endpoints, outside the API group.
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
	srv.gin.GET("/metrics", gin.WrapH(promhttp.Handler()))

	apiGroup := srv.gin.Group(api)

	brandHTTP.New(srv.logger, srv.brandUC).RegisterRoutes(apiGroup)
	mentionHTTP.New(srv.logger, srv.mentionUC).RegisterRoutes(apiGroup)
	alertHTTP.New(srv.logger, srv.alertUC).RegisterRoutes(apiGroup)

	return nil
}
