// Package server exposes one parking grid over HTTP.
//
// # Endpoints
//
//	POST /api/v1/park      {"tag":"C"}  -> {"bay":1,"available":2}
//	POST /api/v1/unpark    {"bay":1}    -> {"removed":true,"available":3}
//	GET  /api/v1/capacity               -> counters for the grid
//	GET  /api/v1/diagram                -> text/plain snake-ordered diagram
//	GET  /healthz                       -> liveness probe
//	GET  /metrics                       -> Prometheus metrics (optional)
//
// A full structure answers park requests with 409 Conflict and the error
// code "no_bay_available"; invalid tags and bay indices answer 400 with
// "invalid_vehicle_tag" and "invalid_bay_index".
//
// The grid itself is single-threaded; the server is the caller required
// by the engine's concurrency contract and serializes every grid
// operation behind one mutex.
package server
