package server

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	srvErrors "github.com/meshforge/repeaterd/pkg/errors"
)

// APIPrefix is the reserved namespace of the API delegate. The SPA
// fallback must never answer for it.
const APIPrefix = "/api"

// Decision tags the outcome of classifying a request in the catch-all
// dispatcher. The two-way split between the API namespace and
// everything else is explicit so it can be tested on its own.
type Decision int

const (
	// DecisionPreflight short-circuits an OPTIONS request with an
	// empty success response.
	DecisionPreflight Decision = iota
	// DecisionAPI leaves the request to the API delegate's routing.
	DecisionAPI
	// DecisionIndex serves the SPA entry document, whatever the path;
	// the frontend router resolves it client-side.
	DecisionIndex
)

// Classify maps a method and path to a dispatch decision.
func Classify(method, urlPath string) Decision {
	if method == http.MethodOptions {
		return DecisionPreflight
	}
	if urlPath == APIPrefix || strings.HasPrefix(urlPath, APIPrefix+"/") {
		return DecisionAPI
	}
	return DecisionIndex
}

// spaApp serves the single-page application for one server run. It is
// built from the route plan at start and holds no mutable state.
type spaApp struct {
	plan   RoutePlan
	logger *zap.SugaredLogger
}

func newSPAApp(plan RoutePlan) *spaApp {
	return &spaApp{
		plan:   plan,
		logger: zap.S().Named("web"),
	}
}

// dispatch is mounted as the NoRoute handler. API routes are
// registered ahead of it on the same engine, so an API path reaching
// this point means the delegate has no such endpoint; answering with
// the SPA document would silently mask the API namespace.
func (a *spaApp) dispatch(c *gin.Context) {
	switch Classify(c.Request.Method, c.Request.URL.Path) {
	case DecisionPreflight:
		c.Status(http.StatusOK)
	case DecisionAPI:
		c.JSON(http.StatusNotFound, gin.H{"error": "endpoint not found"})
	case DecisionIndex:
		a.serveIndex(c)
	}
}

// serveIndex returns the SPA entry document. A missing document gets a
// 404 with a remediation hint; any other read failure gets a generic
// 500 with the details kept in the log.
func (a *spaApp) serveIndex(c *gin.Context) {
	data, err := os.ReadFile(a.plan.Index)
	if err != nil {
		if os.IsNotExist(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": srvErrors.NewFrontendNotBuiltError().Error()})
			return
		}
		a.logger.Errorw("failed to read index document", "path", a.plan.Index, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", data)
}
