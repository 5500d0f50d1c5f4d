// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - auth: API key validation protecting every endpoint when a key is configured.
//   - rayid: assigns a Request ID (RayID) to every request, stored in the context
//     locals and echoed in the X-Ray-ID response header for tracing.
//
// Both are registered globally by the start command, rayid first.
package middleware
