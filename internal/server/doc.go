// Package server exposes the comparison service over a small JSON HTTP API.
//
// Routes:
//
//	GET  /api/status        runtime settings and history size
//	POST /api/compare       compare two texts
//	POST /api/clean         normalized sentence view of one text
//	GET  /api/history       newest stored comparisons (?limit=N)
//	GET  /api/history/{id}  one stored comparison with its result
//
// When an API token is configured every route requires
// "Authorization: Bearer <token>". Run holds a lock file in the data
// directory so only one server uses a history database at a time.
package server
