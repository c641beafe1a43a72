package service

import (
	"github.com/MikeRez0/checkout/internal/core/validation"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("github.com/MikeRez0/checkout/internal/core/service")

// checkRequest validates req and logs the violated rules. A non-nil error is
// a *domain.ValidationError and must be returned before any storage call.
func checkRequest(v *validation.Validator, logger *zap.Logger, req any) error {
	res := v.Validate(req)
	if res.Valid() {
		return nil
	}
	logger.Warn("Validation failed",
		zap.String("request", res.Request),
		zap.Strings("violations", res.Messages()))
	return res.Err()
}

func distinctIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
