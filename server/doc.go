// Package server exposes the analysis engine over HTTP: a JSON REST API,
// a websocket polar-sweep stream, a DXF download endpoint and Prometheus
// instrumentation.
//
// 🚀 Surface:
//
//	GET  /api/health                — liveness probe
//	GET  /api/airfoils              — curated preset catalog
//	GET  /api/airfoils/{id}         — one preset with generated geometry
//	GET  /api/naca4                 — geometry for an arbitrary 4-digit code
//	POST /api/analyze               — full two-solver analysis
//	GET  /api/dxf                   — rib contour as a DXF attachment
//	GET  /ws                        — websocket α-sweep stream
//	GET  /metrics                   — Prometheus exposition
//
// ✨ Error mapping: engine sentinels translate to HTTP statuses at this
// boundary and nowhere else — invalid input → 400, unknown preset → 404,
// singular influence matrix → 422, anything unexpected → 500. The body is
// always {"error": "..."}.
//
// ⚙️ Configuration comes from an ini file (see LoadConfig); a missing file
// yields the documented defaults. Responses carry permissive CORS headers.
// When the cache is enabled the server memoizes analyses by fingerprint;
// the engine packages stay purely functional.
package server
