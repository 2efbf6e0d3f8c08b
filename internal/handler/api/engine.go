package api

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"NeoWatch/internal/domain/models"
	enginemetrics "NeoWatch/internal/service/metrics"
	"NeoWatch/internal/services/elements"
	"NeoWatch/internal/usecase"
	xhttp "NeoWatch/pkg/http"
	xlogger "NeoWatch/pkg/logger"
	"NeoWatch/pkg/util"
)

// EngineEchoHandler exposes the classification and risk engine over HTTP.
// Only validation failures return 400; the engine itself never errors,
// degraded answers are encoded in the result's method field.
type EngineEchoHandler struct {
	logger      *xlogger.Logger
	resolver    *usecase.ClassificationResolver
	synthesizer *usecase.RiskSynthesizer
}

func NewEngineEchoHandler(logger *xlogger.Logger, resolver *usecase.ClassificationResolver, synthesizer *usecase.RiskSynthesizer) *EngineEchoHandler {
	return &EngineEchoHandler{logger: logger, resolver: resolver, synthesizer: synthesizer}
}

func (h *EngineEchoHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.POST("/classify", h.Classify)
	g.POST("/risk", h.RiskBatch)
	g.POST("/risk/object", h.RiskObject)
}

func (h *EngineEchoHandler) Classify(c echo.Context) error {
	defer observe("classify", time.Now())

	req := &models.ClassifyRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	allowPredicted := true
	if req.AllowPredicted != nil {
		allowPredicted = *req.AllowPredicted
	}

	in := models.ClassificationInput{
		Name:              req.Name,
		ProviderClass:     req.OrbitClass,
		Elements:          elements.Extract(req.OrbitalData),
		Hazardous:         req.Hazardous,
		DiameterMinM:      req.DiameterMinM,
		DiameterMaxM:      req.DiameterMaxM,
		VelocityKPS:       req.VelocityKPS,
		MissDistanceAU:    req.MissDistanceAU,
		AbsoluteMagnitude: req.AbsoluteMagnitude,
	}

	result := h.resolver.Resolve(c.Request().Context(), in, allowPredicted)
	if h.logger != nil {
		h.logger.Debug("object classified",
			xlogger.String("object", req.Name),
			xlogger.String("class", result.OrbitClass),
			xlogger.String("method", string(result.Method)),
		)
	}
	return xhttp.SuccessResponse(c, result)
}

func (h *EngineEchoHandler) RiskBatch(c echo.Context) error {
	defer observe("risk_batch", time.Now())

	req := &models.RiskBatchRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	records := make([]models.ApproachRecord, 0, len(req.Objects))
	for _, o := range req.Objects {
		records = append(records, toApproachRecord(o))
	}

	result := h.synthesizer.Synthesize(c.Request().Context(), records)
	return xhttp.SuccessResponse(c, result)
}

func (h *EngineEchoHandler) RiskObject(c echo.Context) error {
	defer observe("risk_object", time.Now())

	req := &models.RiskObjectRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	result := h.synthesizer.SynthesizeSingle(c.Request().Context(), toApproachRecord(req.Object))
	return xhttp.SuccessResponse(c, result)
}

func toApproachRecord(o models.ApproachRequest) models.ApproachRecord {
	return models.ApproachRecord{
		Name:              o.Name,
		Diameter:          models.DiameterRange{Min: o.DiameterMinM, Max: o.DiameterMaxM},
		VelocityKPS:       o.VelocityKPS,
		MissDistanceAU:    o.MissDistanceAU,
		ApproachDate:      util.ParseTimeDefault(o.ApproachDate, time.Time{}),
		Hazardous:         o.Hazardous,
		OrbitClass:        o.OrbitClass,
		AbsoluteMagnitude: o.AbsoluteMagnitude,
		OrbitalPeriod:     o.OrbitalPeriod,
		Inclination:       o.Inclination,
		Eccentricity:      o.Eccentricity,
	}
}

func observe(endpoint string, start time.Time) {
	enginemetrics.EndpointDuration.With(prometheus.Labels{"endpoint": endpoint}).
		Observe(time.Since(start).Seconds())
}
