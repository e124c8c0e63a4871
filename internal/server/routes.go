package server

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

// contentTypes fixes the MIME type served for frontend assets,
// independent of the host OS mime database.
var contentTypes = map[string]string{
	".js":   "application/javascript",
	".css":  "text/css",
	".html": "text/html; charset=utf-8",
	".svg":  "image/svg+xml",
	".txt":  "text/plain",
	".map":  "application/json",
}

// StaticDir maps a URL prefix to an asset directory under the web root.
type StaticDir struct {
	Prefix string
	Dir    string
}

// RoutePlan is the routing table of the web front end. It is built
// once per server start from whatever build artifacts are actually
// deployed under the web root, and never mutated afterwards. Creating
// or removing asset directories while the server runs has no effect
// until the next restart.
type RoutePlan struct {
	WebRoot    string
	Index      string
	Favicon    string
	StaticDirs []StaticDir
}

// PlanRoutes inspects webRoot and returns the routing plan. The index
// and favicon mappings are always present; /assets (Vite/Vue builds)
// and /_next (Next.js builds) are included only when the directory
// exists. A missing directory is a deployment variant, not an error.
func PlanRoutes(webRoot string) RoutePlan {
	plan := RoutePlan{
		WebRoot: webRoot,
		Index:   filepath.Join(webRoot, "index.html"),
		Favicon: filepath.Join(webRoot, "favicon.ico"),
	}
	for _, name := range []string{"assets", "_next"} {
		dir := filepath.Join(webRoot, name)
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			plan.StaticDirs = append(plan.StaticDirs, StaticDir{
				Prefix: "/" + name,
				Dir:    dir,
			})
		}
	}
	return plan
}

// HasStaticDir reports whether the plan mounts the given URL prefix.
func (p RoutePlan) HasStaticDir(prefix string) bool {
	for _, sd := range p.StaticDirs {
		if sd.Prefix == prefix {
			return true
		}
	}
	return false
}

// staticHandler serves files below dir with the fixed content-type
// rules. The wildcard parameter is cleaned before joining so requests
// cannot escape the asset directory.
func staticHandler(dir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		rel := path.Clean("/" + c.Param("filepath"))
		full := filepath.Join(dir, filepath.FromSlash(rel))

		info, err := os.Stat(full)
		if err != nil || info.IsDir() {
			c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
			return
		}
		if ct, ok := contentTypes[strings.ToLower(filepath.Ext(full))]; ok {
			c.Header("Content-Type", ct)
		}
		c.File(full)
	}
}

// faviconHandler serves the favicon mapping from the plan, 404ing when
// the deployment ships without one.
func faviconHandler(file string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if info, err := os.Stat(file); err != nil || info.IsDir() {
			c.Status(http.StatusNotFound)
			return
		}
		c.File(file)
	}
}
