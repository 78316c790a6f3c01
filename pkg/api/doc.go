// Package api serves the solve pipeline over HTTP.
//
// # Endpoints
//
//	GET  /healthz                          liveness and build version
//	POST /v1/solve?challenge=1|2&path=true grid in the request body
//
// The solve body is the raw grid text (at most 1 MiB). A successful response
// looks like:
//
//	{"cost":31,"path":[[0,0],[1,0],...],"sources":1,"expanded":36}
//
// path is omitted unless requested. Failures use the coded errors of
// pkg/errors:
//
//	{"code":"MISSING_ENDPOINT","message":"no goal marker 'E' in grid","request_id":"..."}
//
// with 400 for input errors, 422 when no path exists, 504 when a search
// exceeds its deadline and 500 otherwise.
//
// # Request IDs
//
// Every response carries an X-Request-ID header. A client-supplied value is
// echoed; otherwise a random UUID is generated. The ID appears in the access
// log line and in error bodies.
package api
