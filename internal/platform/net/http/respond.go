// Package http is the transport layer: a chi backed router, the response
// envelope and the server lifecycle
package http

import (
	"encoding/json"
	stdhttp "net/http"

	"copsoq/internal/platform/logger"
	pnet "copsoq/internal/platform/net"
)

// Envelope is the body of every response
type Envelope = pnet.Envelope

// WriteJSON encodes v with status
func WriteJSON(w stdhttp.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Named("http").Warn().Err(err).Msg("write response")
	}
}

// Response is what return style handlers produce
// an error Body turns into an error envelope with the mapped status
type Response struct {
	Status int
	Body   any
	Header stdhttp.Header
}

// OK answers 200
func OK(data any) Response { return Response{Status: stdhttp.StatusOK, Body: data} }

// Created answers 201
func Created(data any) Response { return Response{Status: stdhttp.StatusCreated, Body: data} }

// NoContent answers 204 without a body
func NoContent() Response { return Response{Status: stdhttp.StatusNoContent} }

// Error answers with the status mapped from err
func Error(err error) Response { return Response{Body: err} }

// Handle turns a return style handler into a Handler
func Handle(h func(*stdhttp.Request) Response) Handler {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		h(r).Write(w, r)
	}
}

// Write renders the response inside the envelope
func (resp Response) Write(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	for k, vs := range resp.Header {
		for _, v := range vs {
			w.Header().Add(k, v)
		}
	}
	reqID := pnet.RequestID(r.Context())

	if err, ok := resp.Body.(error); ok && err != nil {
		status, env := pnet.Failure(err, reqID)
		WriteJSON(w, status, env)
		return
	}

	status := resp.Status
	if status == 0 {
		status = stdhttp.StatusOK
	}
	if status == stdhttp.StatusNoContent {
		w.WriteHeader(status)
		return
	}
	WriteJSON(w, status, pnet.Success(status, resp.Body, reqID))
}
