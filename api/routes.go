package api

import (
	"net/http"
	"time"

	limits "github.com/gin-contrib/size"
	"github.com/gin-contrib/timeout"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tenurelab/tenure-backend/usecases"
)

const maxOutreachPayloadSize = 1 * 1024 * 1024 // 1MB

func timeoutMiddleware(duration time.Duration) gin.HandlerFunc {
	return timeout.New(
		timeout.WithTimeout(duration),
		timeout.WithHandler(func(c *gin.Context) {
			c.Next()
		}),
		timeout.WithResponse(func(c *gin.Context) {
			c.String(http.StatusRequestTimeout, "timeout")
		}),
	)
}

// Infra timeout is 60sec, so we set it to 55sec in order to gracefully handle the timeout in our code
const predictionQueryTimeout = 55 * time.Second

func addRoutes(r *gin.Engine, conf Configuration, uc usecases.Usecases) {
	r.GET("/liveness", handleLivenessProbe(uc))

	r.GET("/clients", handleGetClients(uc))

	r.GET("/predictions", timeoutMiddleware(predictionQueryTimeout), handleListPredictions(uc))

	outreach := r.Group("/outreach", limits.RequestSizeLimiter(maxOutreachPayloadSize))
	outreach.POST("/calls", handleLogCall(uc))
	outreach.POST("/texts", handleLogTexts(uc))
	outreach.POST("/emails", handleLogEmails(uc))

	if conf.EnablePrometheus {
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}
}
