package http

import (
	"copsoq/internal/core/catalog"
	"copsoq/internal/core/version"
)

// HealthResponse is the liveness payload
type HealthResponse struct {
	OK      bool   `json:"ok"      example:"true"`
	Service string `json:"service" example:"copsoq-api"`
	Started string `json:"started" example:"2025-09-03T13:00:00Z"`
	Now     string `json:"now"     example:"2025-09-03T13:05:00Z"`
}

// ReadyCheck is one dependency probe
type ReadyCheck struct {
	Name   string `json:"name"            example:"pg"`
	Status string `json:"status"          example:"ok"`
	Error  string `json:"error,omitempty" example:"dial tcp 127.0.0.1:5432: connect: connection refused"`
}

// ReadyResponse is ok, degraded or fail
type ReadyResponse struct {
	Status string       `json:"status" example:"ok"`
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"    example:"2025-09-03T13:05:00Z"`
}

// ServiceResponse describes the running process
type ServiceResponse struct {
	Name    string   `json:"name"    example:"copsoq-api"`
	Started string   `json:"started" example:"2025-09-03T13:00:00Z"`
	Uptime  int64    `json:"uptime"  example:"300"`
	Modules []string `json:"modules"`
}

// InstrumentResponse is the domain table in use with the risk cut points
type InstrumentResponse struct {
	Instrument string            `json:"instrument" example:"COPSOQ III"`
	Version    int               `json:"version"    example:"3"`
	Domains    int               `json:"domains"    example:"10"`
	LowerCut   float64           `json:"lower_cut"  example:"33"`
	UpperCut   float64           `json:"upper_cut"  example:"66"`
	Table      []catalog.Domain  `json:"table"`
	Build      version.BuildInfo `json:"build"`
}
