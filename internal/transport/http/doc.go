// Package http contains the chi HTTP handlers of the analysis API. Handlers
// are thin adapters: multipart and JSON decoding on the way in, the shared
// error handler and chi/render on the way out. All engine logic lives in the
// services layer.
package http
