package api

import (
	"errors"
	"net/http"

	reqdto "onvacation-backend/internal/handler/dto/request"
	resdto "onvacation-backend/internal/handler/dto/response"
	"onvacation-backend/internal/handler/httperr"
	"onvacation-backend/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AgencyHandler struct {
	agencyUseCase usecase.AgencyUseCase
}

func NewAgencyHandler(agencyUseCase usecase.AgencyUseCase) *AgencyHandler {
	return &AgencyHandler{agencyUseCase: agencyUseCase}
}

// @Summary Create agency
// @Tags agencies
// @Accept json
// @Produce json
// @Param request body reqdto.CreateAgencyRequest true "Agency request"
// @Success 201 {object} resdto.Envelope
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/agencies [post]
func (h *AgencyHandler) Create(c *gin.Context) {
	var req reqdto.CreateAgencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	rm, err := h.agencyUseCase.Create(c.Request.Context(), req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrDuplicateAgencyEmail):
			httperr.AbortWithError(c, http.StatusConflict, err, "Agency email already registered")
		case errors.Is(err, usecase.ErrDomainValidationFailed):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Agency data is invalid")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to create agency")
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.OK("Agency created", resdto.FromAgencyRM(rm)))
}

// @Summary Get agency
// @Tags agencies
// @Produce json
// @Param id path string true "Agency ID"
// @Success 200 {object} resdto.Envelope
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/agencies/{id} [get]
func (h *AgencyHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid agency id")
		return
	}

	rm, err := h.agencyUseCase.Get(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrAgencyNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Agency not found")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load agency")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.OK("Agency found", resdto.FromAgencyRM(rm)))
}

// @Summary Find agency by email
// @Tags agencies
// @Produce json
// @Param email query string true "Agency email"
// @Success 200 {object} resdto.Envelope
// @Failure 404 {object} httperr.Response
// @Router /api/agencies/by-email [get]
func (h *AgencyHandler) GetByEmail(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errors.New("missing email parameter"), "Email parameter is required")
		return
	}

	rm, err := h.agencyUseCase.GetByEmail(c.Request.Context(), email)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrAgencyNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Agency not found")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load agency")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.OK("Agency found", resdto.FromAgencyRM(rm)))
}

// @Summary Find agency by name
// @Description Case-insensitive match on the agency name
// @Tags agencies
// @Produce json
// @Param name query string true "Agency name"
// @Success 200 {object} resdto.Envelope
// @Failure 404 {object} httperr.Response
// @Router /api/agencies/by-name [get]
func (h *AgencyHandler) GetByName(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errors.New("missing name parameter"), "Name parameter is required")
		return
	}

	rm, err := h.agencyUseCase.GetByName(c.Request.Context(), name)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrAgencyNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Agency not found")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load agency")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.OK("Agency found", resdto.FromAgencyRM(rm)))
}

// @Summary List agencies
// @Tags agencies
// @Produce json
// @Success 200 {object} resdto.Envelope
// @Router /api/agencies [get]
func (h *AgencyHandler) List(c *gin.Context) {
	rms, err := h.agencyUseCase.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list agencies")
		return
	}

	c.JSON(http.StatusOK, resdto.OK("Agencies found", resdto.FromAgencyRMs(rms)))
}

// @Summary List active agencies
// @Tags agencies
// @Produce json
// @Success 200 {object} resdto.Envelope
// @Router /api/agencies/active [get]
func (h *AgencyHandler) ListActive(c *gin.Context) {
	rms, err := h.agencyUseCase.ListActive(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list agencies")
		return
	}

	c.JSON(http.StatusOK, resdto.OK("Agencies found", resdto.FromAgencyRMs(rms)))
}

// @Summary Update agency
// @Description Partial update: absent fields keep their stored value
// @Tags agencies
// @Accept json
// @Produce json
// @Param id path string true "Agency ID"
// @Param request body reqdto.UpdateAgencyRequest true "Update request"
// @Success 200 {object} resdto.Envelope
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/agencies/{id} [put]
func (h *AgencyHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid agency id")
		return
	}

	var req reqdto.UpdateAgencyRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format")
		return
	}

	rm, err := h.agencyUseCase.Update(c.Request.Context(), id, req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrAgencyNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Agency not found")
		case errors.Is(err, usecase.ErrDuplicateAgencyEmail):
			httperr.AbortWithError(c, http.StatusConflict, err, "Agency email already registered")
		case errors.Is(err, usecase.ErrDomainValidationFailed):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Agency data is invalid")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to update agency")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.OK("Agency updated", resdto.FromAgencyRM(rm)))
}

// @Summary Delete agency
// @Tags agencies
// @Produce json
// @Param id path string true "Agency ID"
// @Success 200 {object} resdto.Envelope
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/agencies/{id} [delete]
func (h *AgencyHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid agency id")
		return
	}

	if err := h.agencyUseCase.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, usecase.ErrAgencyNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Agency not found")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to delete agency")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.OK("Agency deleted", nil))
}
