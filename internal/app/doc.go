// Package app assembles the analysis server: configuration, logging, the
// analysis service, middleware chain, route tree and graceful shutdown.
package app
