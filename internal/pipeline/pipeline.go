// Package pipeline runs one load → rank → report cycle for a ranking request.
package pipeline

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/getaway-cli/internal/model"
	"github.com/sells-group/getaway-cli/internal/monitoring"
	"github.com/sells-group/getaway-cli/internal/scorer"
)

// Loader reads the destination dataset.
type Loader interface {
	Load(ctx context.Context) ([]model.Place, error)
}

// Ranker scores and ranks places for a request.
type Ranker interface {
	Recommend(req model.Request, places []model.Place) (*model.ResultSet, error)
}

// ReportWriter persists a ranked result set and returns where it went.
type ReportWriter interface {
	Write(rs *model.ResultSet) (string, error)
}

// Pipeline wires a loader, a ranker and the optional report writer and
// metrics together.
type Pipeline struct {
	loader  Loader
	ranker  Ranker
	reports ReportWriter
	metrics *monitoring.Metrics
	clock   clockwork.Clock
}

// New creates a Pipeline. reports and metrics may be nil to disable report
// files and metric collection. A nil clock uses the real clock.
func New(loader Loader, ranker Ranker, reports ReportWriter, metrics *monitoring.Metrics, clock clockwork.Clock) *Pipeline {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Pipeline{
		loader:  loader,
		ranker:  ranker,
		reports: reports,
		metrics: metrics,
		clock:   clock,
	}
}

// Run executes one ranking run. The dataset is re-read on every call.
//
// An invalid request is rejected before any work with a nil ResultSet.
// Otherwise a non-nil ResultSet is returned so callers can tell outcomes
// apart: dataset failures and unknown source cities return an error alongside
// it, an empty match set does not.
func (p *Pipeline) Run(ctx context.Context, req model.Request) (*model.ResultSet, error) {
	if err := scorer.ValidateRequest(req); err != nil {
		return nil, err
	}

	runID := uuid.New().String()
	start := p.clock.Now()
	log := zap.L().With(
		zap.String("component", "pipeline"),
		zap.String("run_id", runID),
		zap.String("source", req.SourceCity),
	)
	log.Debug("pipeline: starting run")

	rs, err := p.run(ctx, log, req)
	if rs == nil {
		rs = &model.ResultSet{Source: req.SourceCity, Request: req}
		switch {
		case errors.Is(err, scorer.ErrUnknownCity):
			rs.Outcome = model.OutcomeUnknownCity
		default:
			rs.Outcome = model.OutcomeDatasetError
		}
	}
	rs.RunID = runID

	elapsed := p.clock.Since(start)
	if p.metrics != nil {
		p.metrics.ObserveRun(rs, elapsed)
	}

	fields := []zap.Field{
		zap.String("outcome", string(rs.Outcome)),
		zap.Int("results", rs.Len()),
		zap.Duration("duration", elapsed),
	}
	if err != nil {
		log.Warn("pipeline: run failed", append(fields, zap.Error(err))...)
	} else {
		log.Info("pipeline: run complete", fields...)
	}
	return rs, err
}

func (p *Pipeline) run(ctx context.Context, log *zap.Logger, req model.Request) (*model.ResultSet, error) {
	var places []model.Place
	err := p.phase(log, "load", func() error {
		var loadErr error
		places, loadErr = p.loader.Load(ctx)
		return loadErr
	})
	if err != nil {
		return nil, eris.Wrap(err, "pipeline: load dataset")
	}

	var rs *model.ResultSet
	err = p.phase(log, "rank", func() error {
		var rankErr error
		rs, rankErr = p.ranker.Recommend(req, places)
		return rankErr
	})
	if err != nil {
		return nil, err
	}

	if p.reports == nil || rs.Empty() {
		return rs, nil
	}

	err = p.phase(log, "report", func() error {
		path, writeErr := p.reports.Write(rs)
		rs.ReportPath = path
		return writeErr
	})
	if err != nil {
		return rs, eris.Wrap(err, "pipeline: write report")
	}
	return rs, nil
}

// phase runs fn and logs its duration and outcome.
func (p *Pipeline) phase(log *zap.Logger, name string, fn func() error) error {
	start := p.clock.Now()
	err := fn()
	elapsed := p.clock.Since(start)

	if err != nil {
		log.Debug("pipeline: phase failed",
			zap.String("phase", name),
			zap.Duration("duration", elapsed),
			zap.Error(err),
		)
		return err
	}
	log.Debug("pipeline: phase complete",
		zap.String("phase", name),
		zap.Duration("duration", elapsed),
	)
	return nil
}
