// Package service contains laudos workflows
package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"copsoq/internal/core/catalog"
	"copsoq/internal/core/report"
	"copsoq/internal/core/scoring"
	"copsoq/internal/modkit/repokit"
	perr "copsoq/internal/platform/errors"
	"copsoq/internal/platform/logger"
	"copsoq/internal/services/laudos/domain"
	"copsoq/internal/services/laudos/repo"
)

// Service defines the service contract for laudos
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
	sink   domain.SnapshotSink
	log    *logger.Logger

	now   func() time.Time
	newID func() string
}

// Option tweaks a Svc at construction
type Option func(*Svc)

// WithSink publishes domain snapshots of every issued laudo
func WithSink(s domain.SnapshotSink) Option { return func(v *Svc) { v.sink = s } }

// WithLogger overrides the component logger
func WithLogger(l *logger.Logger) Option { return func(v *Svc) { v.log = l } }

// WithClock overrides time.Now
func WithClock(now func() time.Time) Option { return func(v *Svc) { v.now = now } }

// WithIDs overrides laudo id generation
func WithIDs(fn func() string) Option { return func(v *Svc) { v.newID = fn } }

// New creates a new laudos service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], opts ...Option) *Svc {
	if db == nil {
		panic("laudos.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("laudos.Service requires a non nil Repo binder")
	}
	s := &Svc{
		Repo:   repokit.MustBind(binder, db),
		binder: binder,
		db:     db,
		now:    time.Now,
		newID:  func() string { return uuid.NewString() },
	}
	for _, o := range opts {
		o(s)
	}
	if s.log == nil {
		s.log = logger.Named("laudos")
	}
	return s
}

// Preview scores the given responses without touching storage
func (s *Svc) Preview(_ context.Context, in domain.PreviewInput) (report.Payload, error) {
	return BuildPreview(in)
}

// Domains lists the catalog
func (s *Svc) Domains(context.Context) ([]catalog.Domain, error) {
	return catalog.All(), nil
}

// Generate scores a lote, stores its laudo and publishes snapshots after commit
func (s *Svc) Generate(ctx context.Context, in domain.GenerateInput) (domain.LaudoRecord, error) {
	var rec domain.LaudoRecord

	err := repokit.WithTx(ctx, s.db, func(q repokit.Queryer) error {
		r := repokit.MustBind(s.binder, q)

		lote, err := r.LoteMeta(ctx, in.LoteID)
		if err != nil {
			if perr.IsCode(err, perr.ErrorCodeNotFound) {
				return perr.NotFoundf("lote %d not found", in.LoteID)
			}
			return perr.FromPostgres(err, "load lote")
		}

		rows, err := r.Responses(ctx, in.LoteID)
		if err != nil {
			return perr.FromPostgres(err, "load responses")
		}
		if len(rows) == 0 {
			return perr.Conflictf("lote %d has no finished assessments", in.LoteID)
		}

		items := make([]scoring.ItemResponse, 0, len(rows))
		for _, row := range rows {
			items = append(items, scoring.ItemResponse{DomainID: row.DomainID, Value: row.Value})
		}
		if err := CheckValues(items); err != nil {
			return err
		}

		meta := report.EntityMeta{
			CompanyName: lote.CompanyName,
			CompanyCNPJ: lote.CompanyCNPJ,
			ClinicName:  lote.ClinicName,
			LoteID:      lote.ID,
			LoteCode:    lote.Code,
			PeriodStart: lote.PeriodStart,
			PeriodEnd:   lote.PeriodEnd,
			Respondents: lote.Respondents,
			IssuerID:    in.EmissorID,
		}
		payload := report.Build(meta, items, in.Observations)
		body, err := json.Marshal(payload)
		if err != nil {
			return perr.Wrap(err, perr.ErrorCodeUnknown, "encode laudo payload")
		}

		rec = domain.LaudoRecord{
			ID:        s.newID(),
			LoteID:    lote.ID,
			EmissorID: in.EmissorID,
			FileName:  report.FileName(meta),
			IssuedAt:  s.now().UTC(),
			Payload:   payload,
		}
		err = r.InsertLaudo(ctx, repo.RowLaudo{
			ID:           rec.ID,
			LoteID:       rec.LoteID,
			EmissorID:    rec.EmissorID,
			Observations: in.Observations,
			FileName:     rec.FileName,
			Payload:      body,
			IssuedAt:     rec.IssuedAt,
		})
		if perr.IsDuplicateKey(err) {
			return perr.Wrapf(err, perr.ErrorCodeDuplicateKey, "laudo already issued for lote %d", in.LoteID)
		}
		return perr.FromPostgres(err, "insert laudo")
	})
	if err != nil {
		return domain.LaudoRecord{}, err
	}

	s.log.Info().
		Str("laudo_id", rec.ID).
		Int64("lote_id", rec.LoteID).
		Int("respondents", rec.Payload.Entity.Respondents).
		Int("high", rec.Payload.Summary.High).
		Msg("laudo issued")

	s.publish(ctx, rec)
	return rec, nil
}

// Get loads the laudo issued for a lote
func (s *Svc) Get(ctx context.Context, in domain.GetInput) (domain.LaudoRecord, error) {
	row, err := s.Repo.LaudoByLote(ctx, in.LoteID)
	if err != nil {
		if perr.IsCode(err, perr.ErrorCodeNotFound) {
			return domain.LaudoRecord{}, perr.NotFoundf("no laudo for lote %d", in.LoteID)
		}
		return domain.LaudoRecord{}, perr.FromPostgres(err, "load laudo")
	}
	var payload report.Payload
	if err := json.Unmarshal(row.Payload, &payload); err != nil {
		return domain.LaudoRecord{}, perr.Wrapf(err, perr.ErrorCodeDB, "decode laudo %s", row.ID)
	}
	return domain.LaudoRecord{
		ID:        row.ID,
		LoteID:    row.LoteID,
		EmissorID: row.EmissorID,
		FileName:  row.FileName,
		IssuedAt:  row.IssuedAt,
		Payload:   payload,
	}, nil
}

func (s *Svc) publish(ctx context.Context, rec domain.LaudoRecord) {
	if s.sink == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	if err := s.sink.Publish(ctx, rec.Snapshots()); err != nil {
		s.log.Warn().Err(err).Str("laudo_id", rec.ID).Msg("snapshot publish failed")
	}
}
