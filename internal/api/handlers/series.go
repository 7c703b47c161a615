package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"tou-pricegen/internal/analysis"
	"tou-pricegen/internal/api/models"
	"tou-pricegen/internal/config"
	"tou-pricegen/internal/export"
	"tou-pricegen/internal/model"
	"tou-pricegen/internal/recorder"
	"tou-pricegen/internal/tou"

	"github.com/gin-gonic/gin"
)

// SeriesHandler serves generation requests against a base config.
type SeriesHandler struct {
	cfg *config.Config
	rec recorder.Recorder
}

func NewSeriesHandler(cfg *config.Config, rec recorder.Recorder) *SeriesHandler {
	if cfg == nil {
		cfg = config.Default()
	}
	if rec == nil {
		rec = recorder.NewNoopRecorder()
	}
	return &SeriesHandler{cfg: cfg, rec: rec}
}

// GenerateSeries handles POST /api/v1/series.
func (h *SeriesHandler) GenerateSeries(c *gin.Context) {
	var req models.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_BODY", err.Error())
		return
	}

	series, err := h.generate(req)
	if err != nil {
		respondGenerateError(c, err)
		return
	}
	h.record(series, "")

	c.JSON(http.StatusOK, models.NewSeriesResponse(series))
}

// GenerateSeriesCSV handles GET /api/v1/series.csv. Grid parameters come
// from query params, defaulting to the server config.
func (h *SeriesHandler) GenerateSeriesCSV(c *gin.Context) {
	req, ok := requestFromQuery(c)
	if !ok {
		return
	}

	series, err := h.generate(req)
	if err != nil {
		respondGenerateError(c, err)
		return
	}
	h.record(series, "")

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", config.DefaultOutputPath))
	c.Status(http.StatusOK)
	if err := export.EncodeSeriesCSV(c.Writer, series.Records); err != nil {
		// Headers are already out; nothing sane left to send.
		_ = c.Error(err)
	}
}

// SeriesStats handles GET /api/v1/series/stats.
func (h *SeriesHandler) SeriesStats(c *gin.Context) {
	req, ok := requestFromQuery(c)
	if !ok {
		return
	}

	series, err := h.generate(req)
	if err != nil {
		respondGenerateError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.StatsResponse{
		Tariff: series.Tariff,
		Stats:  analysis.Compute(series.Records, series.Tariff),
	})
}

func (h *SeriesHandler) generate(req models.GenerateRequest) (*model.Series, error) {
	startDate := h.cfg.Generation.StartDate
	if req.StartDate != "" {
		startDate = req.StartDate
	}
	start, err := tou.ParseStart(startDate)
	if err != nil {
		return nil, err
	}

	spec := model.GridSpec{
		Start:           start,
		NumDays:         h.cfg.Generation.NumDays,
		TimeStepMinutes: h.cfg.Generation.TimeStepMinutes,
	}
	if req.NumDays != 0 {
		spec.NumDays = req.NumDays
	}
	if req.TimeStepMinutes != 0 {
		spec.TimeStepMinutes = req.TimeStepMinutes
	}

	tariff := h.cfg.Tariff
	if req.Tariff != nil {
		tariff = config.MergeTariff(tariff, *req.Tariff)
	}

	return tou.Generate(spec, tariff)
}

func (h *SeriesHandler) record(series *model.Series, outputPath string) {
	_ = h.rec.RecordRun(recorder.Run{
		StartDate:       series.Spec.Start.Format(model.TimestampLayout),
		NumDays:         series.Spec.NumDays,
		TimeStepMinutes: series.Spec.TimeStepMinutes,
		TariffName:      series.Tariff.Name,
		Rows:            len(series.Records),
		OutputPath:      outputPath,
		CreatedAt:       time.Now(),
	})
}

func requestFromQuery(c *gin.Context) (models.GenerateRequest, bool) {
	var req models.GenerateRequest
	req.StartDate = c.Query("start_date")
	if v := c.Query("num_days"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			badRequest(c, "INVALID_PARAM", fmt.Sprintf("num_days: %v", err))
			return req, false
		}
		req.NumDays = n
	}
	if v := c.Query("time_step_minutes"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			badRequest(c, "INVALID_PARAM", fmt.Sprintf("time_step_minutes: %v", err))
			return req, false
		}
		req.TimeStepMinutes = n
	}
	return req, true
}

func respondGenerateError(c *gin.Context, err error) {
	if errors.Is(err, tou.ErrInvalidInput) {
		badRequest(c, "INVALID_INPUT", err.Error())
		return
	}
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error: models.ErrorDetail{Code: "GENERATION_ERROR", Message: err.Error()},
	})
}

func badRequest(c *gin.Context, code, msg string) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error: models.ErrorDetail{Code: code, Message: msg},
	})
}
