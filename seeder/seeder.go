// Package seeder drains a target number of generated dish records into a sink,
// one randomly sized batch at a time.
package seeder

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"sync"
	"time"

	"dishseed/config"
	"dishseed/customerrors"
	"dishseed/dump"
	"dishseed/generator"
	"dishseed/history"
	"dishseed/metrics"
	"dishseed/models"
	"dishseed/report"
	"dishseed/sink"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

type Option func(*Seeder)

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Seeder) { s.metrics = m }
}

// WithDump sends every failed record to b.
func WithDump(b *dump.Buffer) Option {
	return func(s *Seeder) { s.failed = b }
}

func WithRand(rng *rand.Rand) Option {
	return func(s *Seeder) { s.rng = rng }
}

type Seeder struct {
	conf    config.Config
	sink    sink.Sink
	logger  *log.Logger
	rng     *rand.Rand
	gen     *generator.Generator
	hist    *history.History
	metrics *metrics.Metrics
	failed  *dump.Buffer
}

func New(conf config.Config, s sink.Sink, logger *log.Logger, opts ...Option) *Seeder {
	sd := &Seeder{conf: conf, sink: s, logger: logger}
	for _, opt := range opts {
		opt(sd)
	}
	if sd.rng == nil {
		seed := conf.Seeder.Seed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		sd.rng = rand.New(rand.NewPCG(seed, seed>>1|1))
	}
	if sd.logger == nil {
		sd.logger = log.New()
		sd.logger.SetOutput(io.Discard)
	}
	sd.gen = generator.New(sd.rng)
	sd.hist = history.New(conf.History.Capacity)
	return sd
}

// stats is shared by the workers of a batch.
type stats struct {
	mu         sync.Mutex
	successes  int
	failures   int
	duplicates int
	batches    int
	byCategory map[string]int
}

func (st *stats) record(r models.Record, ok bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	if ok {
		st.successes++
		st.byCategory[r.Category]++
	} else {
		st.failures++
	}
}

func (st *stats) summary(elapsed time.Duration) report.Summary {
	st.mu.Lock()
	defer st.mu.Unlock()
	byCategory := make(map[string]int, len(st.byCategory))
	for k, v := range st.byCategory {
		byCategory[k] = v
	}
	return report.Summary{
		Elapsed:    elapsed,
		Successes:  st.successes,
		Failures:   st.failures,
		Duplicates: st.duplicates,
		Batches:    st.batches,
		ByCategory: byCategory,
	}
}

// Run submits conf.Seeder.TargetCount records and reports how it went.
// Failed submissions never stop the run; cancelling ctx does, once the
// current batch has finished, and the partial summary is returned with ctx.Err().
// An invalid configuration is rejected before anything is submitted.
func (s *Seeder) Run(ctx context.Context) (report.Summary, error) {
	if err := config.ValidateConfig(s.conf); err != nil {
		return report.Summary{ByCategory: map[string]int{}}, fmt.Errorf("invalid seeder config: %w", err)
	}
	target := s.conf.Seeder.TargetCount
	st := &stats{byCategory: map[string]int{}}
	start := time.Now()
	s.logger.Infof("Starting to add %d dishes to the search service...", target)

	var err error
	for processed := 0; processed < target; {
		if err = ctx.Err(); err != nil {
			break
		}
		size := s.nextBatchSize(target - processed)
		s.logger.Infof("Processing batch of %d dishes (%.1f%% complete)...", size, float64(processed)/float64(target)*100)

		batch := s.buildBatch(size, st)
		s.submitBatch(ctx, batch, st)
		processed += size

		st.mu.Lock()
		st.batches++
		st.mu.Unlock()
		s.metrics.BatchDone()

		if processed < target {
			if err = sleep(ctx, s.pause()); err != nil {
				break
			}
		}
	}
	s.failed.Flush()

	sum := st.summary(time.Since(start))
	if err != nil {
		s.logger.Warnf("seeding interrupted after %d of %d dishes: %v", sum.Total(), target, err)
	}
	return sum, err
}

// nextBatchSize is uniform in [MinBatchSize, MaxBatchSize], clipped to remaining.
func (s *Seeder) nextBatchSize(remaining int) int {
	lo, hi := s.conf.Seeder.MinBatchSize, s.conf.Seeder.MaxBatchSize
	size := lo
	if hi > lo {
		size += s.rng.IntN(hi - lo + 1)
	}
	return min(size, remaining)
}

func (s *Seeder) pause() time.Duration {
	lo, hi := s.conf.Seeder.MinSleep, s.conf.Seeder.MaxSleep
	if hi <= lo {
		return lo
	}
	return lo + time.Duration(s.rng.Int64N(int64(hi-lo)+1))
}

func (s *Seeder) buildBatch(size int, st *stats) []models.Record {
	batch := make([]models.Record, 0, size)
	dups := 0
	for i := 0; i < size; i++ {
		if s.hist.Len() > 0 && s.rng.Float64() < s.conf.Seeder.DuplicateProbability {
			if r, ok := s.hist.Pick(s.rng); ok {
				batch = append(batch, r)
				dups++
				continue
			}
		}
		r := s.gen.Generate()
		s.hist.Add(r)
		batch = append(batch, r)
	}
	st.mu.Lock()
	st.duplicates += dups
	st.mu.Unlock()
	return batch
}

// submitBatch returns once every record of the batch has been submitted.
func (s *Seeder) submitBatch(ctx context.Context, batch []models.Record, st *stats) {
	// a plain group: one failed record must not cancel its siblings
	var g errgroup.Group
	g.SetLimit(s.conf.Seeder.MaxConcurrency)
	for _, r := range batch {
		g.Go(func() error {
			s.submit(ctx, r, st)
			return nil
		})
	}
	_ = g.Wait()
}

func (s *Seeder) submit(ctx context.Context, r models.Record, st *stats) {
	s.metrics.Start()
	began := time.Now()
	err := s.sink.Submit(ctx, r)
	s.metrics.Done(err == nil, time.Since(began))
	st.record(r, err == nil)
	if err == nil {
		s.logger.Infof("Added: %s", r)
		return
	}
	s.failed.Append(r)
	var se *customerrors.StatusError
	if errors.As(err, &se) {
		s.logger.Errorf("Failed to add %s: %s", r.Name, se)
	} else {
		s.logger.Errorf("Error adding %s: %v", r.Name, err)
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
