// Package server provides the embedded HTTP front end of repeaterd.
//
// The server uses the Gin web framework. It serves the prebuilt
// single-page application, mounts the API delegate under /api and
// applies an optional CORS policy.
//
// # Architecture Overview
//
//	┌──────────────────────────────────────────────────────────────┐
//	│                        HTTP Server                           │
//	├──────────────────────────────────────────────────────────────┤
//	│                     Middleware Stack                         │
//	│  Ginzap (request logging) → RecoveryWithZap → CORS (opt-in)  │
//	├──────────────────────────────────────────────────────────────┤
//	│  /api/*        → API delegate (registered via callback)      │
//	│  /             → index.html                                  │
//	│  /favicon.ico  → web root favicon                            │
//	│  /assets/*     → static files   (only if directory exists)   │
//	│  /_next/*      → static files   (only if directory exists)   │
//	│  anything else → index.html (SPA client-side routing)        │
//	│  OPTIONS *     → empty 200 (pre-flight short-circuit)        │
//	└──────────────────────────────────────────────────────────────┘
//
// # Routing plan
//
// PlanRoutes inspects the web root once per Start and produces an
// immutable RoutePlan. The /assets and /_next mappings exist only when
// the matching directory does, which keeps a single binary compatible
// with both Vite and Next.js frontend builds. Directories added or
// removed while the server runs are picked up on the next restart, not
// before.
//
// # SPA dispatch
//
// The NoRoute handler classifies every unmatched request with
// Classify: OPTIONS gets an empty success response, paths inside the
// reserved /api namespace get a JSON 404 (the delegate's routes are
// consulted first and the fallback never shadows them), and every
// other path gets the entry document so the frontend router can
// resolve it. A missing entry document yields a 404 telling the
// operator to build the frontend; other read failures yield a 500
// without filesystem details.
//
// # Lifecycle
//
//	srv := server.New(cfg, func(api *gin.RouterGroup) {
//	    handler.RegisterRoutes(api)
//	})
//	if err := srv.Start(); err != nil { ... }
//	defer srv.Stop(ctx)
//
// Start binds the listener itself so address conflicts surface as
// errors instead of dying inside the serve goroutine. Start on a
// running server and Stop on a stopped one are warnings, not errors,
// and start/stop cycles never leak the bound socket.
package server
