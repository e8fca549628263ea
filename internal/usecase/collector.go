package usecase

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"BioPulse/internal/domain/models"
	drepo "BioPulse/internal/domain/repository"
	"BioPulse/pkg/logger"
	"BioPulse/pkg/queue"
)

// ErrRunInFlight is returned when a trigger arrives while a run is already
// collecting. Runs are serialized; overlapping writers never race on the
// snapshot store.
var ErrRunInFlight = errors.New("collection already running")

// RunStatus is the terminal state of a pipeline run.
type RunStatus string

const (
	RunSucceeded       RunStatus = "success"
	RunPartiallyFailed RunStatus = "partial"
)

// RunResult reports one finished run.
type RunResult struct {
	Snapshot *models.Snapshot
	Status   RunStatus
	Degraded []string // adapter names that contributed nothing
}

// CollectorConfig bounds one pipeline run.
type CollectorConfig struct {
	MaxCompanies     int      // cap on the merged company list
	TrialsCompanies  int      // top N companies searched for trials
	WebsiteCompanies int      // top N companies probed for websites
	TrialWorkers     int      // bounded parallelism for per-term searches
	TrialKeywords    []string // fixed domain terms searched on every run
}

// Collector drives one full pipeline run: fetch all sources, normalize,
// merge, and atomically publish the snapshot. Any single adapter failing
// degrades its slice to empty; the run itself still completes.
type Collector struct {
	etfA    drepo.HoldingsSource
	etfB    drepo.HoldingsSource
	fda     drepo.ApprovalsSource
	trials  drepo.TrialsSource
	prober  drepo.WebsiteProber
	store   drepo.SnapshotStore
	sinks   []drepo.SnapshotSink
	metrics drepo.Metrics
	log     *logger.Logger
	cfg     CollectorConfig

	running atomic.Bool
}

// NewCollector creates the pipeline orchestrator.
func NewCollector(
	etfA, etfB drepo.HoldingsSource,
	fda drepo.ApprovalsSource,
	trials drepo.TrialsSource,
	prober drepo.WebsiteProber,
	store drepo.SnapshotStore,
	sinks []drepo.SnapshotSink,
	metrics drepo.Metrics,
	log *logger.Logger,
	cfg CollectorConfig,
) *Collector {
	return &Collector{
		etfA:    etfA,
		etfB:    etfB,
		fda:     fda,
		trials:  trials,
		prober:  prober,
		store:   store,
		sinks:   sinks,
		metrics: metrics,
		log:     log,
		cfg:     cfg,
	}
}

// Running reports whether a run is currently collecting.
func (c *Collector) Running() bool { return c.running.Load() }

// Collect executes one run. maxCompanies overrides the configured cap when
// positive. On cancellation, partial adapter results are discarded and the
// store keeps its previous snapshot.
func (c *Collector) Collect(ctx context.Context, maxCompanies int) (*RunResult, error) {
	if !c.running.CompareAndSwap(false, true) {
		return nil, ErrRunInFlight
	}
	defer c.running.Store(false)

	if maxCompanies <= 0 {
		maxCompanies = c.cfg.MaxCompanies
	}

	start := time.Now()
	var (
		mu       sync.Mutex
		degraded []string
	)
	degrade := func(adapter string, err error) {
		mu.Lock()
		degraded = append(degraded, adapter)
		mu.Unlock()
		c.metrics.RecordAdapterError(adapter)
		c.log.Warn("adapter degraded to empty contribution",
			logger.String("adapter", adapter), logger.Error(err))
	}

	// independent sources fetch concurrently; each goroutine builds a local
	// result and hands it back whole
	var (
		holdA, holdB []models.RawHolding
		approvals    []*models.Approval
		wg           sync.WaitGroup
	)
	wg.Add(3)
	go func() {
		defer wg.Done()
		hs, err := c.etfA.Holdings(ctx)
		if err != nil {
			degrade(c.etfA.Name(), err)
			return
		}
		holdA = hs
	}()
	go func() {
		defer wg.Done()
		hs, err := c.etfB.Holdings(ctx)
		if err != nil {
			degrade(c.etfB.Name(), err)
			return
		}
		holdB = hs
	}()
	go func() {
		defer wg.Done()
		as, err := c.fda.Recent(ctx)
		if err != nil {
			degrade("fda", err)
			return
		}
		approvals = as
	}()
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	companies := MergeHoldings(
		HoldingSet{Source: c.etfA.Source(), Holdings: NormalizeHoldings(holdA)},
		HoldingSet{Source: c.etfB.Source(), Holdings: NormalizeHoldings(holdB)},
	)
	if len(companies) > maxCompanies {
		companies = companies[:maxCompanies]
	}
	c.log.Info("holdings merged",
		logger.Int("companies", len(companies)),
		logger.Int("source_a", len(holdA)),
		logger.Int("source_b", len(holdB)))

	trials := c.collectTrials(ctx, companies, degrade)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	websites := c.collectWebsites(ctx, companies)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	snap := &models.Snapshot{
		Companies:   companies,
		Approvals:   emptyIfNilApprovals(approvals),
		Trials:      trials,
		Websites:    websites,
		CollectedAt: time.Now().UTC(),
	}
	c.store.Replace(snap)

	status := RunSucceeded
	if len(degraded) > 0 {
		status = RunPartiallyFailed
	}
	c.metrics.RecordRun(string(status), time.Since(start).Seconds())
	c.metrics.RecordDatasetSize("companies", len(snap.Companies))
	c.metrics.RecordDatasetSize("approvals", len(snap.Approvals))
	c.metrics.RecordDatasetSize("trials", len(snap.Trials))
	c.metrics.RecordDatasetSize("websites", len(snap.Websites))

	for _, sink := range c.sinks {
		if err := sink.Persist(ctx, snap); err != nil {
			c.log.Warn("snapshot sink failed", logger.Error(err))
		}
	}

	c.log.Info("collection finished",
		logger.String("status", string(status)),
		logger.Strings("degraded", degraded),
		logger.Duration("elapsed", time.Since(start)))

	return &RunResult{Snapshot: snap, Status: status, Degraded: degraded}, nil
}

// collectTrials fans out one registry search per term with bounded
// parallelism. The shared pacer inside the trials source keeps the aggregate
// call rate polite.
func (c *Collector) collectTrials(ctx context.Context, companies []*models.Company, degrade func(string, error)) []*models.Trial {
	terms := make([]string, 0, c.cfg.TrialsCompanies+len(c.cfg.TrialKeywords))
	for _, company := range TopByWeight(companies, c.cfg.TrialsCompanies) {
		if company.Name != "" {
			terms = append(terms, company.Name)
		}
	}
	terms = append(terms, c.cfg.TrialKeywords...)
	if len(terms) == 0 {
		return []*models.Trial{}
	}

	var (
		mu       sync.Mutex
		all      []*models.Trial
		failures int
	)
	tasks := make([]queue.Task, 0, len(terms))
	for _, term := range terms {
		term := term
		tasks = append(tasks, func(ctx context.Context) {
			ts, err := c.trials.Search(ctx, term)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failures++
				c.log.Warn("trials search failed",
					logger.String("term", term), logger.Error(err))
				return
			}
			all = append(all, ts...)
		})
	}
	queue.NewPool(c.cfg.TrialWorkers).Run(ctx, tasks)

	if failures == len(terms) {
		degrade("trials", errors.New("all trial searches failed"))
		return []*models.Trial{}
	}
	return DedupTrials(all)
}

// collectWebsites probes the heaviest companies sequentially; each probe is
// already several upstream requests.
func (c *Collector) collectWebsites(ctx context.Context, companies []*models.Company) []*models.WebsiteProfile {
	profiles := []*models.WebsiteProfile{}
	for _, company := range TopByWeight(companies, c.cfg.WebsiteCompanies) {
		if ctx.Err() != nil {
			break
		}
		profile, err := c.prober.Probe(ctx, company.Symbol)
		if err != nil {
			c.log.Warn("website probe failed",
				logger.String("symbol", company.Symbol), logger.Error(err))
			continue
		}
		if profile == nil {
			continue
		}
		profiles = append(profiles, profile)
		company.Website = profile.Website
	}
	return profiles
}

func emptyIfNilApprovals(in []*models.Approval) []*models.Approval {
	if in == nil {
		return []*models.Approval{}
	}
	return in
}
