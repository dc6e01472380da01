// Package recommend issues recommendation requests and prepares the results
// for display.
package recommend

import (
	"context"

	"github.com/mark3labs/partsync/internal/hardware"
	"github.com/mark3labs/partsync/internal/logger"
)

// Backend is the part of the API client used to fetch recommendations.
type Backend interface {
	Recommend(ctx context.Context, req hardware.RecommendRequest) ([]hardware.Recommendation, error)
}

// Request sends one recommendation request. Any failure is logged and
// reported as an empty result so the caller always reaches the results view.
func Request(ctx context.Context, backend Backend, req hardware.RecommendRequest) []hardware.Recommendation {
	logger.Debug("recommend: requesting for cpu=%d psu=%dW budget=%g strict=%v",
		req.CPUID, req.PSUWattage, req.Budget, req.Strict)

	recs, err := backend.Recommend(ctx, req)
	if err != nil {
		logger.Warn("recommend: degrading to empty result: %v", err)
		return nil
	}
	logger.Info("recommend: received %d results", len(recs))
	return recs
}
