package v1

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/help_request_system/internal/config"
	"github.com/shenikar/help_request_system/internal/models"
	"github.com/shenikar/help_request_system/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	helpRequests service.HelpRequestService
	participants service.ParticipantService
	sos          service.AnonymousSOSService
	ws           http.Handler
	logger       *logrus.Logger
	validate     *validator.Validate
	cfg          *config.Config
}

func NewHandler(
	helpRequests service.HelpRequestService,
	participants service.ParticipantService,
	sos service.AnonymousSOSService,
	ws http.Handler,
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		helpRequests: helpRequests,
		participants: participants,
		sos:          sos,
		ws:           ws,
		logger:       logger,
		validate:     validator.New(),
		cfg:          cfg,
	}
}

// bind разбирает и валидирует тело запроса, при ошибке отвечает 400
func (h *Handler) bind(c *gin.Context, log *logrus.Entry, input any) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// writeServiceError переводит доменную ошибку в HTTP статус
func writeServiceError(c *gin.Context, log *logrus.Entry, err error, notFound, conflict string) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		log.WithError(err).Warn("Resource not found")
		c.JSON(http.StatusNotFound, gin.H{"error": notFound})
	case errors.Is(err, models.ErrConflict):
		log.WithError(err).Warn("Conflicting state transition")
		if conflict == "" {
			conflict = models.ErrConflict.Error()
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": conflict})
	case errors.Is(err, models.ErrValidation):
		log.WithError(err).Warn("Validation failed in service")
		c.JSON(http.StatusBadRequest, gin.H{"error": validationMessage(err)})
	default:
		log.WithError(err).Error("Service call failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// validationMessage отбрасывает служебные префиксы обёрток
func validationMessage(err error) string {
	msg := err.Error()
	if i := strings.LastIndex(msg, ": "+models.ErrValidation.Error()); i >= 0 {
		msg = msg[:i]
	}
	if i := strings.LastIndex(msg, ": "); i >= 0 {
		msg = msg[i+2:]
	}
	return msg
}

// @Summary Create a help request
// @Description Create a pending help request for a victim and broadcast it to every connected client.
// @Tags HelpRequests
// @Accept json
// @Produce json
// @Param request body CreateHelpRequestRequest true "Help request creation request"
// @Success 201 {object} HelpRequestResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 404 {object} map[string]string "Requester not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /helprequest [post]
func (h *Handler) createHelpRequest(c *gin.Context) {
	var input CreateHelpRequestRequest
	log := h.logger.WithField("method", "createHelpRequest")

	if !h.bind(c, log, &input) {
		return
	}

	request, err := h.helpRequests.CreateRequest(c.Request.Context(), input.RequesterID, DTOToLocation(input.Latitude, input.Longitude))
	if err != nil {
		writeServiceError(c, log, err, "requester not found", "")
		return
	}
	c.JSON(http.StatusCreated, ModelToHelpRequestResponse(request))
}

// @Summary List pending help requests
// @Description Get every help request without an assigned officer, oldest first, with the requester name.
// @Tags HelpRequests
// @Produce json
// @Success 200 {array} HelpRequestResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /helprequests [get]
func (h *Handler) listPendingHelpRequests(c *gin.Context) {
	log := h.logger.WithField("method", "listPendingHelpRequests")

	requests, err := h.helpRequests.ListPendingRequests(c.Request.Context())
	if err != nil {
		writeServiceError(c, log, err, "not found", "")
		return
	}
	c.JSON(http.StatusOK, ModelsToHelpRequestResponses(requests))
}

// @Summary Accept a help request
// @Description Assign a pending help request to an officer. Only one officer can win.
// @Tags HelpRequests
// @Accept json
// @Produce json
// @Param request body AcceptHelpRequestRequest true "Accept request"
// @Success 200 {object} HelpRequestResponse
// @Failure 400 {object} map[string]string "Validation error or request already accepted"
// @Failure 404 {object} map[string]string "Help request or officer not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /helprequest/accept [post]
func (h *Handler) acceptHelpRequest(c *gin.Context) {
	var input AcceptHelpRequestRequest
	log := h.logger.WithField("method", "acceptHelpRequest")

	if !h.bind(c, log, &input) {
		return
	}
	// формат уже проверен валидатором
	requestID := uuid.MustParse(input.RequestID)
	log = log.WithField("request_id", requestID)

	request, err := h.helpRequests.AcceptRequest(c.Request.Context(), requestID, input.OfficerID)
	if err != nil {
		writeServiceError(c, log, err, "help request or officer not found", "help request already accepted")
		return
	}
	c.JSON(http.StatusOK, ModelToHelpRequestResponse(request))
}

// @Summary Release a help request
// @Description Detach the officer from a help request according to the configured release policy.
// @Tags HelpRequests
// @Accept json
// @Produce json
// @Param request body ReleaseHelpRequestRequest true "Release request"
// @Success 200 {object} HelpRequestResponse
// @Failure 400 {object} map[string]string "Validation error or request cannot be released"
// @Failure 404 {object} map[string]string "Help request not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /helprequest/release [post]
func (h *Handler) releaseHelpRequest(c *gin.Context) {
	var input ReleaseHelpRequestRequest
	log := h.logger.WithField("method", "releaseHelpRequest")

	if !h.bind(c, log, &input) {
		return
	}
	requestID := uuid.MustParse(input.RequestID)
	log = log.WithField("request_id", requestID)

	request, err := h.helpRequests.ReleaseRequest(c.Request.Context(), requestID)
	if err != nil {
		writeServiceError(c, log, err, "help request not found", "help request cannot be released")
		return
	}
	c.JSON(http.StatusOK, ModelToHelpRequestResponse(request))
}

// @Summary Get officer by ID
// @Description Get the officer display name used to label notifications.
// @Tags Officers
// @Produce json
// @Param id path string true "Officer ID"
// @Success 200 {object} OfficerResponse
// @Failure 404 {object} map[string]string "Officer not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /officer/{id} [get]
func (h *Handler) getOfficer(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "getOfficer").WithField("id", id)

	officer, err := h.participants.GetOfficer(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, log, err, "officer not found", "")
		return
	}
	c.JSON(http.StatusOK, OfficerResponse{Name: officer.Name})
}

// @Summary Send an anonymous SOS
// @Description Store an anonymous distress signal and broadcast it to every connected client.
// @Tags AnonymousSOS
// @Accept json
// @Produce json
// @Param sos body AnonymousSOSRequest true "Anonymous SOS location"
// @Success 201 {object} AnonymousSOSResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /anonymous-sos [post]
func (h *Handler) createAnonymousSOS(c *gin.Context) {
	var input AnonymousSOSRequest
	log := h.logger.WithField("method", "createAnonymousSOS")

	if !h.bind(c, log, &input) {
		return
	}

	sos, err := h.sos.Signal(c.Request.Context(), DTOToLocation(input.Latitude, input.Longitude))
	if err != nil {
		writeServiceError(c, log, err, "not found", "")
		return
	}
	c.JSON(http.StatusCreated, ModelToAnonymousSOSResponse(sos))
}

// @Summary List recent anonymous SOS signals
// @Description Get anonymous SOS signals from the configured window, newest first. Requires API key when keys are configured.
// @Tags AnonymousSOS
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} AnonymousSOSResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /anonymous-sos [get]
func (h *Handler) listAnonymousSOS(c *gin.Context) {
	log := h.logger.WithField("method", "listAnonymousSOS")

	signals, err := h.sos.ListRecent(c.Request.Context())
	if err != nil {
		writeServiceError(c, log, err, "not found", "")
		return
	}
	c.JSON(http.StatusOK, ModelsToAnonymousSOSResponses(signals))
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
