// Package openapi embeds the OpenAPI document for the Trip Planner API.
// The HTTP server serves it at /openapi.yaml.
package openapi

import _ "embed"

// YAML contains the raw bytes of openapi.yaml, embedded at compile time.
//
//go:embed openapi.yaml
var YAML []byte
