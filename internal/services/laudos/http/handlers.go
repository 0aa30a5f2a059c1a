// Package http provides http transport for laudos
package http

import (
	stdhttp "net/http"
	"strconv"

	"copsoq/internal/modkit/httpkit"
	perr "copsoq/internal/platform/errors"
	"copsoq/internal/services/laudos/domain"
	svc "copsoq/internal/services/laudos/service"
)

// Register mounts laudos endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.Get(r, "/domains", h.domains)
	httpkit.PostJSON[domain.PreviewInput](r, "/preview", h.preview)
	httpkit.PostJSON[domain.GenerateInput](r, "/", h.generate)
	httpkit.Get(r, "/{loteID}", h.get)
}

type handlers struct{ svc svc.Service }

// swagger:route GET /laudos/domains Laudos laudosDomains
// @Summary COPSOQ III domain catalog
// @Tags Laudos
// @Produce json
// @Success 200 {array} catalog.Domain "ok"
// @Router /laudos/domains [get]
func (h *handlers) domains(r *stdhttp.Request) (any, error) {
	return h.svc.Domains(r.Context())
}

// swagger:route POST /laudos/preview Laudos laudosPreview
// @Summary Score a response set without issuing a laudo
// @Tags Laudos
// @Accept json
// @Produce json
// @Param payload body domain.PreviewInput true "Entity and responses"
// @Success 200 {object} report.Payload "ok"
// @Router /laudos/preview [post]
func (h *handlers) preview(r *stdhttp.Request, in domain.PreviewInput) (any, error) {
	return h.svc.Preview(r.Context(), in)
}

// swagger:route POST /laudos Laudos laudosGenerate
// @Summary Issue the laudo of a lote
// @Tags Laudos
// @Accept json
// @Produce json
// @Param payload body domain.GenerateInput true "Lote and issuer"
// @Success 201 {object} domain.LaudoRecord "created"
// @Failure 404 {object} httpkit.Envelope "lote not found"
// @Failure 409 {object} httpkit.Envelope "lote not ready or laudo already issued"
// @Router /laudos [post]
func (h *handlers) generate(r *stdhttp.Request, in domain.GenerateInput) (any, error) {
	rec, err := h.svc.Generate(r.Context(), in)
	if err != nil {
		return nil, err
	}
	return httpkit.Created(rec), nil
}

// swagger:route GET /laudos/{loteID} Laudos laudosGet
// @Summary Issued laudo of a lote
// @Tags Laudos
// @Produce json
// @Param loteID path int true "Lote id"
// @Success 200 {object} domain.LaudoRecord "ok"
// @Failure 404 {object} httpkit.Envelope "no laudo"
// @Router /laudos/{loteID} [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	raw := httpkit.Param(r, "loteID")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return nil, perr.WithField(perr.Newf(perr.ErrorCodeValidation, "loteID must be a positive integer, got %q", raw), "loteID")
	}
	return h.svc.Get(r.Context(), domain.GetInput{LoteID: id})
}
