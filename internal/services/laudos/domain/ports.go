package domain

import (
	"context"

	"copsoq/internal/core/catalog"
	"copsoq/internal/core/report"
)

// DomainLister serves the domain table other modules report on
type DomainLister interface {
	Domains(ctx context.Context) ([]catalog.Domain, error)
}

// ServicePort defines the service contract for laudos
type ServicePort interface {
	DomainLister
	Preview(ctx context.Context, in PreviewInput) (report.Payload, error)
	Generate(ctx context.Context, in GenerateInput) (LaudoRecord, error)
	Get(ctx context.Context, in GetInput) (LaudoRecord, error)
}

// SnapshotSink receives domain score rows after a laudo is committed
// a failing sink never fails the issuing request
type SnapshotSink interface {
	Publish(ctx context.Context, rows []Snapshot) error
}
