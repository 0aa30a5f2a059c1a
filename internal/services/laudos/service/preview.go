package service

import (
	"copsoq/internal/core/report"
	"copsoq/internal/core/scoring"
	perr "copsoq/internal/platform/errors"
	"copsoq/internal/services/laudos/domain"
)

// CheckValues rejects answers off the five point scale
// the aggregator itself accepts any value so this is the inbound gate
func CheckValues(items []scoring.ItemResponse) error {
	for i, it := range items {
		if !scoring.ValidValue(it.Value) {
			return perr.WithField(
				perr.Newf(perr.ErrorCodeValidation, "response %d has value %v, want one of 0 25 50 75 100", i, it.Value),
				"valor",
			)
		}
	}
	return nil
}

// BuildPreview scores an inbound response set and assembles the payload
// shared by the preview endpoint and the offline scorer
func BuildPreview(in domain.PreviewInput) (report.Payload, error) {
	items := in.Items()
	if err := CheckValues(items); err != nil {
		return report.Payload{}, err
	}
	return report.Build(in.Entity.Meta(), items, in.Observations), nil
}
