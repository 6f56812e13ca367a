// Package http implements the HTTP transport layer of the application.
//
// It exposes the /books and /authors resources, their search endpoints and
// the version and health probes. Cross-cutting concerns such as Basic
// authentication, role checks, request tracing, access logging, response
// compression and entity tags are handled in this package before requests
// are delegated to the service layer.
package http
