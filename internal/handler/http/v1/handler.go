package v1

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/shenikar/lockdown_map/internal/config"
	"github.com/shenikar/lockdown_map/internal/geosync"
	"github.com/shenikar/lockdown_map/internal/lockdown"
	"github.com/shenikar/lockdown_map/internal/mapstate"
	"github.com/shenikar/lockdown_map/internal/models"
	"github.com/shenikar/lockdown_map/internal/query"
	"github.com/shenikar/lockdown_map/internal/service"
	"github.com/sirupsen/logrus"
)

// FlagStoreFactory возвращает хранилище флага геолокации для сессии
type FlagStoreFactory func(session string) geosync.FlagStore

type Handler struct {
	lockdownService service.LockdownService
	mapService      service.MapService
	flags           FlagStoreFactory
	logger          *logrus.Logger
	validate        *validator.Validate
	cfg             *config.Config
	now             func() time.Time
}

func NewHandler(lockdownService service.LockdownService, mapService service.MapService, flags FlagStoreFactory, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		lockdownService: lockdownService,
		mapService:      mapService,
		flags:           flags,
		logger:          logger,
		validate:        validator.New(),
		cfg:             cfg,
		now:             time.Now,
	}
}

// at читает параметр at; без него используется текущее время
func (h *Handler) at(c *gin.Context) (time.Time, bool) {
	raw := c.Query("at")
	if raw == "" {
		return h.now(), true
	}
	return models.ParseDate(raw)
}

// @Summary List lockdown records
// @Description Get all lockdown records keyed by region name, with the current status of each region
// @Tags Lockdowns
// @Produce json
// @Success 200 {object} map[string]LockdownResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /lockdowns [get]
func (h *Handler) listLockdowns(c *gin.Context) {
	log := h.logger.WithField("method", "listLockdowns")

	lookup, err := h.lockdownService.GetLockdowns(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list lockdowns from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, LookupToLockdownResponses(lookup, h.now()))
}

// @Summary Get lockdown record
// @Description Get the lockdown record of a single region
// @Tags Lockdowns
// @Produce json
// @Param region path string true "Region name"
// @Success 200 {object} LockdownResponse
// @Failure 404 {object} map[string]string "Region not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /lockdowns/{region} [get]
func (h *Handler) getLockdown(c *gin.Context) {
	region := c.Param("region")
	log := h.logger.WithField("method", "getLockdown").WithField("region", region)

	rec, err := h.lockdownService.GetLockdown(c.Request.Context(), region)
	if err != nil {
		if errors.Is(err, models.ErrRegionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "region not found"})
			return
		}
		log.WithError(err).Error("Failed to get lockdown from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelToLockdownResponse(rec, h.now()))
}

// @Summary Create or replace lockdown record
// @Description Replace the lockdown intervals of a region. Omit lockdowns to mark the region as unknown. Requires API key.
// @Tags Lockdowns
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param region path string true "Region name"
// @Param lockdown body UpsertLockdownRequest true "Lockdown record"
// @Success 200 {object} LockdownResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /lockdowns/{region} [put]
func (h *Handler) upsertLockdown(c *gin.Context) {
	region := c.Param("region")
	log := h.logger.WithField("method", "upsertLockdown").WithField("region", region)

	var input UpsertLockdownRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model, err := DTOToLockdownModel(region, input)
	if err != nil {
		log.WithError(err).Warn("Invalid lockdown dates")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.lockdownService.SaveLockdown(c.Request.Context(), model); err != nil {
		log.WithError(err).Error("Failed to save lockdown in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save lockdown"})
		return
	}
	c.JSON(http.StatusOK, ModelToLockdownResponse(model, h.now()))
}

// @Summary Delete lockdown record
// @Description Delete the lockdown record of a region; the region becomes unknown. Requires API key.
// @Tags Lockdowns
// @Produce json
// @Security ApiKeyAuth
// @Param region path string true "Region name"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Region not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /lockdowns/{region} [delete]
func (h *Handler) deleteLockdown(c *gin.Context) {
	region := c.Param("region")
	log := h.logger.WithField("method", "deleteLockdown").WithField("region", region)

	if err := h.lockdownService.DeleteLockdown(c.Request.Context(), region); err != nil {
		if errors.Is(err, models.ErrRegionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "region not found"})
			return
		}
		log.WithError(err).Error("Failed to delete lockdown in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete lockdown"})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Get region status
// @Description Classify the lockdown status of a region at the given moment (defaults to now)
// @Tags Lockdowns
// @Produce json
// @Param region path string true "Region name"
// @Param at query string false "Moment of classification (RFC3339 or YYYY-MM-DD)"
// @Success 200 {object} RegionStatusResponse
// @Failure 400 {object} map[string]string "Invalid at parameter"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /regions/{region}/status [get]
func (h *Handler) getRegionStatus(c *gin.Context) {
	region := c.Param("region")
	log := h.logger.WithField("method", "getRegionStatus").WithField("region", region)

	at, ok := h.at(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid at parameter"})
		return
	}

	status, err := h.lockdownService.RegionStatus(c.Request.Context(), region, at)
	if err != nil {
		log.WithError(err).Error("Failed to get region status from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, RegionStatusResponse{
		Region: region,
		Status: string(status),
		Color:  lockdown.StatusColor(status),
		At:     at,
	})
}

// @Summary Get enriched countries
// @Description Get the country features with lockdown data, status and fill color
// @Tags Map
// @Produce json
// @Param at query string false "Moment of classification (RFC3339 or YYYY-MM-DD)"
// @Success 200 {object} map[string]interface{} "GeoJSON FeatureCollection"
// @Failure 400 {object} map[string]string "Invalid at parameter"
// @Failure 502 {object} map[string]string "Map data could not be fetched"
// @Router /map/countries [get]
func (h *Handler) getCountries(c *gin.Context) {
	log := h.logger.WithField("method", "getCountries")

	at, ok := h.at(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid at parameter"})
		return
	}

	fc, err := h.mapService.EnrichedCountries(c.Request.Context(), at)
	if err != nil {
		h.mapError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, fc)
}

// @Summary Get country labels
// @Description Get the label points of the countries
// @Tags Map
// @Produce json
// @Success 200 {object} map[string]interface{} "GeoJSON FeatureCollection"
// @Failure 502 {object} map[string]string "Map data could not be fetched"
// @Router /map/labels [get]
func (h *Handler) getLabels(c *gin.Context) {
	log := h.logger.WithField("method", "getLabels")

	fc, err := h.mapService.Labels(c.Request.Context())
	if err != nil {
		h.mapError(c, log, err)
		return
	}
	if fc == nil {
		fc = geojson.NewFeatureCollection()
	}
	c.JSON(http.StatusOK, fc)
}

// @Summary Get map style
// @Description Get the Mapbox GL style with the countries and labels sources and layers
// @Tags Map
// @Produce json
// @Param at query string false "Moment of classification (RFC3339 or YYYY-MM-DD)"
// @Success 200 {object} map[string]interface{} "Mapbox GL style"
// @Failure 400 {object} map[string]string "Invalid at parameter"
// @Failure 502 {object} map[string]string "Map data could not be fetched"
// @Router /map/style [get]
func (h *Handler) getStyle(c *gin.Context) {
	log := h.logger.WithField("method", "getStyle")

	at, ok := h.at(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid at parameter"})
		return
	}

	style, err := h.mapService.Style(c.Request.Context(), at)
	if err != nil {
		h.mapError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, style)
}

func (h *Handler) mapError(c *gin.Context, log *logrus.Entry, err error) {
	if errors.Is(err, mapstate.ErrDataFetch) {
		log.WithError(err).Error("Failed to fetch map data")
		c.JSON(http.StatusBadGateway, gin.H{"error": "map data unavailable"})
		return
	}
	log.WithError(err).Error("Failed to build map")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

// @Summary Select a country
// @Description Apply a click on a country or its label to the page query string
// @Tags Map
// @Accept json
// @Produce json
// @Param click body MapClickRequest true "Clicked feature and current query string"
// @Success 200 {object} MapClickResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Router /map/click [post]
func (h *Handler) clickCountry(c *gin.Context) {
	var input MapClickRequest
	log := h.logger.WithField("method", "clickCountry")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	params, err := query.Parse(input.Query)
	if err != nil {
		log.WithError(err).Warn("Invalid query string")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query string"})
		return
	}

	feature := geojson.NewFeature(orb.Point{})
	feature.Properties[models.PropName] = input.Name
	if input.ISO2 != "" {
		feature.Properties[models.PropISO2] = input.ISO2
	}
	mapstate.DispatchClick(params, feature)

	c.JSON(http.StatusOK, MapClickResponse{
		Query:   params.Encode(),
		Country: params.Get("country"),
		ISO2:    params.Get("iso2"),
	})
}

// viewCapture запоминает последний центр карты, выставленный синхронизацией
type viewCapture struct {
	center *orb.Point
	zoom   float64
}

func (v *viewCapture) SetCenter(center orb.Point, zoom float64) {
	v.center = &center
	v.zoom = zoom
}

// @Summary Sync geolocation permission
// @Description Report the geolocation permission state of a map session. The map is recentered only when access is granted; the server never asks for permission.
// @Tags Map
// @Accept json
// @Produce json
// @Param session path string true "Map session ID"
// @Param permission body PermissionRequest true "Permission state and position"
// @Success 200 {object} PermissionResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /map/sessions/{session}/permission [post]
func (h *Handler) syncPermission(c *gin.Context) {
	session := c.Param("session")
	log := h.logger.WithField("method", "syncPermission").WithField("session", session)

	var input PermissionRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state := geosync.PermissionState(input.State)
	reported := geosync.Reported{State: state}
	if input.Latitude != nil && input.Longitude != nil {
		reported.Position = &geosync.Position{Latitude: *input.Latitude, Longitude: *input.Longitude}
	}
	if state == geosync.PermissionGranted && reported.Position == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "latitude and longitude are required when access is granted"})
		return
	}

	flags := h.flags(session)
	view := &viewCapture{}
	var perms geosync.Permissions
	if state != "" {
		perms = reported
	}
	syncer := geosync.New(perms, reported, flags, view, h.cfg.MapZoom, h.logger)

	var err error
	if input.Event == "load" || perms == nil {
		err = syncer.Start(c.Request.Context())
	} else {
		err = syncer.HandleChange(c.Request.Context(), state)
	}
	if err != nil {
		log.WithError(err).Error("Failed to sync geolocation permission")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	granted, err := flags.Granted(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to read geolocation flag")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	resp := PermissionResponse{Granted: granted}
	if view.center != nil {
		resp.Center = []float64{view.center.Lon(), view.center.Lat()}
		resp.Zoom = view.zoom
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Get geolocation flag
// @Description Get whether geolocation access was granted in a map session
// @Tags Map
// @Produce json
// @Param session path string true "Map session ID"
// @Success 200 {object} GeolocationFlagResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /map/sessions/{session}/geolocation [get]
func (h *Handler) getGeolocationFlag(c *gin.Context) {
	session := c.Param("session")
	log := h.logger.WithField("method", "getGeolocationFlag").WithField("session", session)

	granted, err := h.flags(session).Granted(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to read geolocation flag")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, GeolocationFlagResponse{Session: session, Granted: granted})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
