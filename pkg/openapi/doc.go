// Package openapi describes parameter schemas as OpenAPI 3 query parameters
// so tracking endpoints can document the keys a schema renders.
package openapi
