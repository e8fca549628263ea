package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"BioPulse/internal/domain/models"
	drepo "BioPulse/internal/domain/repository"
	"BioPulse/internal/usecase"
	"BioPulse/pkg/cache"
	xhttp "BioPulse/pkg/http"
	xlogger "BioPulse/pkg/logger"

	"github.com/labstack/echo/v4"
)

const companyDetailTTL = 10 * time.Minute

// DataEchoHandler serves the read-only dataset endpoints plus the manual
// collection trigger. All reads come straight off the current snapshot.
type DataEchoHandler struct {
	logger    *xlogger.Logger
	collector *usecase.Collector
	store     drepo.SnapshotStore
	cache     cache.Service
}

func NewDataEchoHandler(logger *xlogger.Logger, collector *usecase.Collector, store drepo.SnapshotStore, svc cache.Service) *DataEchoHandler {
	return &DataEchoHandler{logger: logger, collector: collector, store: store, cache: svc}
}

func (h *DataEchoHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", h.Health)

	g := e.Group("/api")
	g.GET("/companies", h.Companies)
	g.GET("/fda-approvals", h.Approvals)
	g.GET("/clinical-trials", h.Trials)
	g.GET("/company-websites", h.Websites)
	g.GET("/company/:symbol", h.Company)
	g.GET("/stats", h.Stats)
	g.POST("/collect", h.Collect)
}

func (h *DataEchoHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":     "ok",
		"collecting": h.collector.Running(),
	})
}

// List endpoints return the bare JSON array, no envelope.

func (h *DataEchoHandler) Companies(c echo.Context) error {
	return xhttp.RawResponse(c, h.store.Current().Companies)
}

func (h *DataEchoHandler) Approvals(c echo.Context) error {
	return xhttp.RawResponse(c, h.store.Current().Approvals)
}

func (h *DataEchoHandler) Trials(c echo.Context) error {
	return xhttp.RawResponse(c, h.store.Current().Trials)
}

func (h *DataEchoHandler) Websites(c echo.Context) error {
	return xhttp.RawResponse(c, h.store.Current().Websites)
}

// Company cross-references one symbol against every dataset in the current
// snapshot. The result is cached keyed by snapshot generation, so a new run
// naturally invalidates stale detail payloads.
func (h *DataEchoHandler) Company(c echo.Context) error {
	symbol := strings.ToUpper(strings.TrimSpace(c.Param("symbol")))
	if symbol == "" {
		return xhttp.AppErrorResponse(c, xhttp.BadRequestError("symbol is required"))
	}

	snap := h.store.Current()
	key := fmt.Sprintf("company:%s:%d", symbol, snap.CollectedAt.Unix())

	var cached models.CompanyDetail
	if err := h.cache.Get(c.Request().Context(), key, &cached); err == nil {
		return xhttp.RawResponse(c, &cached)
	}

	var company *models.Company
	for _, cand := range snap.Companies {
		if cand.Symbol == symbol {
			company = cand
			break
		}
	}
	if company == nil {
		return xhttp.AppErrorResponse(c, xhttp.NotFoundErrorf("company %s not found", symbol))
	}

	detail := &models.CompanyDetail{
		Company:   company,
		Approvals: usecase.MatchApprovals(company, snap.Approvals),
		Trials:    usecase.MatchTrials(company, snap.Trials),
	}
	if detail.Approvals == nil {
		detail.Approvals = []*models.Approval{}
	}
	if detail.Trials == nil {
		detail.Trials = []*models.Trial{}
	}
	for _, w := range snap.Websites {
		if w.Symbol == symbol {
			detail.Website = w
			break
		}
	}

	if err := h.cache.Set(c.Request().Context(), key, detail, companyDetailTTL); err != nil {
		h.logger.Debug("company detail cache set failed", xlogger.Error(err))
	}
	return xhttp.RawResponse(c, detail)
}

func (h *DataEchoHandler) Stats(c echo.Context) error {
	return xhttp.RawResponse(c, h.store.Current().Stats())
}

// Collect runs the pipeline synchronously and reports the outcome. A second
// trigger while one is running gets 409.
func (h *DataEchoHandler) Collect(c echo.Context) error {
	req := &models.CollectRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res, err := h.collector.Collect(c.Request().Context(), req.MaxCompanies)
	if err != nil {
		if errors.Is(err, usecase.ErrRunInFlight) {
			return xhttp.AppErrorResponse(c, xhttp.ConflictError("collection already running"))
		}
		h.logger.Error("collection run failed", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.InternalError("collection run failed").WithError(err))
	}

	return xhttp.RawResponse(c, models.CollectResponse{
		Status:      string(res.Status),
		Degraded:    res.Degraded,
		CollectedAt: res.Snapshot.CollectedAt,
	})
}
