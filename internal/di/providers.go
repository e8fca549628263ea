package di

import (
	"time"

	drepo "BioPulse/internal/domain/repository"
	"BioPulse/internal/handler/api"
	internalrepo "BioPulse/internal/repository"
	"BioPulse/internal/service/etf"
	"BioPulse/internal/service/fda"
	"BioPulse/internal/service/ratelimit"
	"BioPulse/internal/service/trials"
	"BioPulse/internal/service/website"
	"BioPulse/internal/usecase"
	"BioPulse/pkg/cache"
	"BioPulse/pkg/config"
	xhttp "BioPulse/pkg/http"
	"BioPulse/pkg/logger"
	"BioPulse/pkg/metrics"
	"BioPulse/pkg/server"
)

// ProvideLogger creates the process-wide structured logger.
func ProvideLogger(cfg *config.Config) (*logger.Logger, error) {
	level := "info"
	if cfg.Environment == "development" {
		level = "debug"
	}
	return logger.New(&logger.Config{Level: level, Format: "console", Output: "stdout"})
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() drepo.Metrics {
	return metrics.New()
}

// ProvideCache creates the cache service. Redis failures at startup degrade
// to a process-local memory cache rather than aborting boot.
func ProvideCache(cfg *config.Config, log *logger.Logger) cache.Service {
	if cfg.Cache.Enabled {
		redisCache, err := cache.NewRedisCache(
			cache.WithRedisHost(cfg.Cache.Host),
			cache.WithRedisPort(cfg.Cache.Port),
			cache.WithRedisPassword(cfg.Cache.Password),
			cache.WithRedisDB(cfg.Cache.DB),
		)
		if err != nil {
			log.Warn("redis unavailable, falling back to in-memory cache", logger.Error(err))
		} else {
			return cache.NewLayeredCache(redisCache)
		}
	}
	return cache.NewMemoryCache()
}

// ProvideSnapshotStore creates the in-memory snapshot store.
func ProvideSnapshotStore() drepo.SnapshotStore {
	return internalrepo.NewSnapshotStore()
}

// ProvideCacheSink mirrors snapshots into the cache for warm restarts. A
// snapshot older than two collection cycles is stale, so that bounds the TTL.
func ProvideCacheSink(svc cache.Service, cfg *config.Config) *internalrepo.CacheSink {
	return internalrepo.NewCacheSink(svc, 2*cfg.Collector.Interval)
}

// ProvideSinks assembles the snapshot sinks active for this deployment.
func ProvideSinks(cfg *config.Config, log *logger.Logger, cacheSink *internalrepo.CacheSink) []drepo.SnapshotSink {
	var sinks []drepo.SnapshotSink
	if cfg.Sink.Enabled {
		sinks = append(sinks, internalrepo.NewFileSink(cfg.Sink.Dir, log))
	}
	if cfg.Cache.Enabled {
		sinks = append(sinks, cacheSink)
	}
	return sinks
}

// ProvideCollector builds the source adapters and the pipeline orchestrator.
func ProvideCollector(
	cfg *config.Config,
	store drepo.SnapshotStore,
	sinks []drepo.SnapshotSink,
	m drepo.Metrics,
	log *logger.Logger,
) *usecase.Collector {
	apiClient := xhttp.NewClient(xhttp.WithTimeout(30 * time.Second))
	webClient := xhttp.NewClient(
		xhttp.WithTimeout(cfg.Website.Timeout),
		xhttp.WithUserAgent(cfg.Website.UserAgent),
	)

	minWeight := cfg.MinWeight()
	var sourceA drepo.HoldingsSource = etf.NewFundAClient(cfg.ETF.A.Name, cfg.ETF.A.HoldingsURL, minWeight, apiClient)
	if cfg.ETF.A.UseFallbacks {
		sourceA = etf.NewTieredSource(sourceA, cfg.ETF.A.ScrapeURL, minWeight, apiClient, log)
	}
	sourceB := etf.NewFundBClient(cfg.ETF.B.Name, cfg.ETF.B.HoldingsURL, cfg.ETF.B.FundID, minWeight, apiClient)

	fdaClient := fda.New(cfg.FDA.BaseURL, cfg.FDA.LookbackDays, cfg.FDA.Limit, apiClient)
	trialsClient := trials.New(cfg.Trials.BaseURL, cfg.Trials.PerTermLimit, apiClient, ratelimit.NewPacer(cfg.Trials.MinDelay))
	prober := website.New(cfg.Website.ProfileURL, webClient)

	return usecase.NewCollector(
		sourceA, sourceB, fdaClient, trialsClient, prober,
		store, sinks, m, log,
		usecase.CollectorConfig{
			MaxCompanies:     cfg.Collector.MaxCompanies,
			TrialsCompanies:  cfg.Collector.TrialsCompanies,
			WebsiteCompanies: cfg.Collector.WebsiteCompanies,
			TrialWorkers:     cfg.Trials.Workers,
			TrialKeywords:    cfg.Trials.Keywords,
		},
	)
}

// ProvideDataHandler creates the HTTP API handler.
func ProvideDataHandler(
	log *logger.Logger,
	collector *usecase.Collector,
	store drepo.SnapshotStore,
	svc cache.Service,
) *api.DataEchoHandler {
	return api.NewDataEchoHandler(log, collector, store, svc)
}

// ProvideApp creates the application server.
func ProvideApp(
	cfg *config.Config,
	collector *usecase.Collector,
	store drepo.SnapshotStore,
	cacheSink *internalrepo.CacheSink,
	handler *api.DataEchoHandler,
	log *logger.Logger,
) *server.App {
	return server.New(cfg, collector, store, cacheSink, handler, log)
}
