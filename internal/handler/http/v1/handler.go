package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/road_hazard_map/internal/config"
	"github.com/shenikar/road_hazard_map/internal/models"
	"github.com/shenikar/road_hazard_map/internal/service"
	"github.com/shenikar/road_hazard_map/internal/session"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	hazardService   service.HazardService
	locationService service.LocationService
	sessions        *session.Store
	logger          *logrus.Logger
	validate        *validator.Validate
	cfg             *config.Config
}

func NewHandler(hazardService service.HazardService, locationService service.LocationService, sessions *session.Store, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		hazardService:   hazardService,
		locationService: locationService,
		sessions:        sessions,
		logger:          logger,
		validate:        validator.New(),
		cfg:             cfg,
	}
}

// @Summary Report a new road hazard
// @Description Report a new road hazard at the given coordinates. Requires an active session.
// @Tags Hazards
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param hazard body CreateHazardRequest true "Hazard report request"
// @Success 201 {object} HazardResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /hazards [post]
func (h *Handler) createHazard(c *gin.Context) {
	var input CreateHazardRequest
	log := h.logger.WithField("method", "createHazard")

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

	// Координаты приходят текстом, нечисловые значения отклоняются
	// до обращения к хранилищу
	latitude, err := strconv.ParseFloat(input.Latitude, 64)
	if err != nil {
		log.WithError(err).Warn("Invalid latitude value")
		c.JSON(http.StatusBadRequest, gin.H{"error": "latitude must be a number"})
		return
	}
	longitude, err := strconv.ParseFloat(input.Longitude, 64)
	if err != nil {
		log.WithError(err).Warn("Invalid longitude value")
		c.JSON(http.StatusBadRequest, gin.H{"error": "longitude must be a number"})
		return
	}

	if err := h.validate.Var(latitude, "latitude"); err != nil {
		log.Warn("Latitude out of range")
		c.JSON(http.StatusBadRequest, gin.H{"error": "latitude out of range"})
		return
	}
	if err := h.validate.Var(longitude, "longitude"); err != nil {
		log.Warn("Longitude out of range")
		c.JSON(http.StatusBadRequest, gin.H{"error": "longitude out of range"})
		return
	}

	sess, _ := sessionFromContext(c)

	model := DTOToHazardModel(input, latitude, longitude)
	if err := h.hazardService.Report(c.Request.Context(), model, sess.Username); err != nil {
		log.WithError(err).Error("Failed to report hazard in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, ModelToHazardResponse(model))
}

// @Summary Get the list of road hazards
// @Description Get all reported hazards, newest first. Requires an active session.
// @Tags Hazards
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param limit query int false "Maximum number of hazards to return"
// @Success 200 {array} HazardResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /hazards [get]
func (h *Handler) listHazards(c *gin.Context) {
	log := h.logger.WithField("method", "listHazards")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	hazards, err := h.hazardService.List(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list hazards from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	if limit > 0 && limit < len(hazards) {
		hazards = hazards[:limit]
	}

	c.JSON(http.StatusOK, ModelsToHazardResponses(hazards))
}

// @Summary Get hazard statistics
// @Description Get the total count of reported hazards. Requires an active session.
// @Tags Hazards
// @Accept json
// @Produce json
// @Security SessionAuth
// @Success 200 {object} StatsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /hazards/stats [get]
func (h *Handler) getStats(c *gin.Context) {
	log := h.logger.WithField("method", "getStats")

	count, err := h.hazardService.Count(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to get stats from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, StatsResponse{HazardCount: count})
}

// @Summary Log in
// @Description Open a new session for the given username. An empty or blank username falls back to the default one. No password is required.
// @Tags Session
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Login request"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /session/login [post]
func (h *Handler) login(c *gin.Context) {
	var input LoginRequest
	log := h.logger.WithField("method", "login")

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

	sess, err := h.sessions.Login(input.Username)
	if err != nil {
		log.WithError(err).Error("Failed to open session")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	log.WithField("username", sess.Username).Info("User logged in")
	c.JSON(http.StatusOK, sessionToResponse(sess))
}

// @Summary Log out
// @Description Close the current session. The username is retained, only the logged-in flag is cleared.
// @Tags Session
// @Accept json
// @Produce json
// @Security SessionAuth
// @Success 200 {object} SessionResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /session/logout [post]
func (h *Handler) logout(c *gin.Context) {
	log := h.logger.WithField("method", "logout")

	sess, _ := sessionFromContext(c)
	updated, ok := h.sessions.Logout(sess.Token)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid session token"})
		return
	}

	log.WithField("username", updated.Username).Info("User logged out")
	c.JSON(http.StatusOK, sessionToResponse(updated))
}

// @Summary Get current session
// @Description Get the state of the current session.
// @Tags Session
// @Accept json
// @Produce json
// @Security SessionAuth
// @Success 200 {object} SessionResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /session [get]
func (h *Handler) getSession(c *gin.Context) {
	sess, _ := sessionFromContext(c)
	c.JSON(http.StatusOK, sessionToResponse(sess))
}

// @Summary Publish a device location fix
// @Description Store the latest known device coordinate for the current session. Requires an active session.
// @Tags Location
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param location body LocationPingRequest true "Location fix"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /location [post]
func (h *Handler) publishLocation(c *gin.Context) {
	var input LocationPingRequest
	log := h.logger.WithField("method", "publishLocation")

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

	sess, _ := sessionFromContext(c)
	fix := &models.LocationFix{
		Latitude:  *input.Latitude,
		Longitude: *input.Longitude,
	}
	if err := h.locationService.PublishFix(c.Request.Context(), sess.Token, fix); err != nil {
		log.WithError(err).Error("Failed to publish location fix in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Get the latest device location
// @Description Get the last published coordinate for the current session, or the default map coordinate if none was published. Requires an active session.
// @Tags Location
// @Accept json
// @Produce json
// @Security SessionAuth
// @Success 200 {object} LatestLocationResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /location/latest [get]
func (h *Handler) latestLocation(c *gin.Context) {
	sess, _ := sessionFromContext(c)

	fix, live := h.locationService.Latest(c.Request.Context(), sess.Token)
	source := "default"
	if live {
		source = "live"
	}

	c.JSON(http.StatusOK, LatestLocationResponse{
		Latitude:  fix.Latitude,
		Longitude: fix.Longitude,
		Zoom:      h.cfg.DefaultZoom,
		Source:    source,
	})
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

// sessionToResponse преобразует сессию в DTO для ответа
func sessionToResponse(sess session.Session) SessionResponse {
	return SessionResponse{
		Token:     sess.Token,
		Username:  sess.Username,
		LoggedIn:  sess.LoggedIn,
		ExpiresAt: sess.ExpiresAt,
	}
}
