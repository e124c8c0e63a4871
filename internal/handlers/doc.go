// Package handlers implements the HTTP API layer of repeaterd.
//
// Handlers delegate business logic to the services layer and focus on
// request validation, response formatting and HTTP semantics. They are
// mounted under the reserved /api group by the server; the SPA
// fallback never answers for that namespace.
//
// # API Endpoints
//
//	┌────────┬─────────────────┬──────────────────────────────────────┐
//	│ Method │ Endpoint        │ Description                          │
//	├────────┼─────────────────┼──────────────────────────────────────┤
//	│ GET    │ /stats          │ Daemon statistics (opaque JSON)      │
//	│ GET    │ /logs           │ Recent captured log entries          │
//	│ GET    │ /info           │ Node name, public key, version       │
//	│ GET    │ /advert         │ Status of the last advert broadcast  │
//	│ POST   │ /advert         │ Schedule an advert broadcast         │
//	│ GET    │ /config         │ Sanitized configuration view         │
//	│ PUT    │ /config         │ Persist a new web section            │
//	│ GET    │ /daemon         │ Supervised daemon status             │
//	│ POST   │ /daemon/restart │ Schedule a daemon restart            │
//	└────────┴─────────────────┴──────────────────────────────────────┘
//
// # Recent logs
//
// GET /logs serves a snapshot of the in-memory log capture buffer,
// oldest first. The optional limit query parameter tails the snapshot:
//
//	GET /api/logs?limit=20
//
// # Error Handling
//
// Handlers use a consistent error response format:
//
//	{ "error": "error message" }
//
// HTTP status code mapping:
//
//	┌───────────────────────────┬────────┬────────────────────────────┐
//	│ Error Type                │ Status │ When                       │
//	├───────────────────────────┼────────┼────────────────────────────┤
//	│ Validation error          │ 400    │ Invalid request params     │
//	│ ResourceNotFoundError     │ 404    │ Resource doesn't exist     │
//	│ AdvertInFlightError       │ 409    │ Broadcast already running  │
//	│ Internal error            │ 500    │ Unexpected service errors  │
//	│ Unavailable               │ 503    │ Collaborator not wired     │
//	└───────────────────────────┴────────┴────────────────────────────┘
//
// # Framework
//
// The package uses the Gin web framework. Model-to-API conversion
// lives in api/v1.
package handlers
