package api

import (
	"errors"
	"fmt"
	"net/http"

	reqdto "onvacation-backend/internal/handler/dto/request"
	resdto "onvacation-backend/internal/handler/dto/response"
	"onvacation-backend/internal/handler/httperr"
	"onvacation-backend/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	reservationUseCase usecase.ReservationUseCase
	importUseCase      usecase.ImportUseCase
}

func NewReservationHandler(reservationUseCase usecase.ReservationUseCase, importUseCase usecase.ImportUseCase) *ReservationHandler {
	return &ReservationHandler{
		reservationUseCase: reservationUseCase,
		importUseCase:      importUseCase,
	}
}

// @Summary Create reservation
// @Description Register a new reservation with its quota and agency data
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.Envelope
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	rm, err := h.reservationUseCase.Create(c.Request.Context(), req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrDomainValidationFailed):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Reservation data is invalid")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to create reservation")
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.OK("Reservation created", resdto.FromReservationRM(rm)))
}

// @Summary Get reservation
// @Tags reservations
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.Envelope
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation id")
		return
	}

	rm, err := h.reservationUseCase.Get(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrReservationNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load reservation")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.OK("Reservation found", resdto.FromReservationRM(rm)))
}

// @Summary Search reservations
// @Description List reservations matching the optional filters. Absent
// @Description filters impose no constraint; present filters are ANDed.
// @Tags reservations
// @Produce json
// @Param agencyName query string false "Exact agency name"
// @Param agencyEmail query string false "Exact agency email"
// @Param startDate query string false "Travel date lower bound (YYYY-MM-DD, inclusive)"
// @Param endDate query string false "Travel date upper bound (YYYY-MM-DD, inclusive)"
// @Success 200 {object} resdto.Envelope
// @Failure 400 {object} httperr.Response
// @Router /api/reservations/search [get]
func (h *ReservationHandler) Search(c *gin.Context) {
	filter, err := buildFilter(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid search filters")
		return
	}

	rms, err := h.reservationUseCase.Search(c.Request.Context(), filter)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to search reservations")
		return
	}

	c.JSON(http.StatusOK, resdto.OK("Reservations found", resdto.FromReservationRMs(rms)))
}

// @Summary List reservations
// @Tags reservations
// @Produce json
// @Success 200 {object} resdto.Envelope
// @Router /api/reservations [get]
func (h *ReservationHandler) List(c *gin.Context) {
	rms, err := h.reservationUseCase.Search(c.Request.Context(), usecase.Filter{})
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list reservations")
		return
	}

	c.JSON(http.StatusOK, resdto.OK("Reservations found", resdto.FromReservationRMs(rms)))
}

// @Summary List reservations by quota month
// @Description Case-insensitive match on the quota month label
// @Tags reservations
// @Produce json
// @Param month path string true "Quota month, e.g. ENERO"
// @Success 200 {object} resdto.Envelope
// @Router /api/reservations/quota-month/{month} [get]
func (h *ReservationHandler) ListByQuotaMonth(c *gin.Context) {
	rms, err := h.reservationUseCase.ListByQuotaMonth(c.Request.Context(), c.Param("month"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list reservations")
		return
	}

	c.JSON(http.StatusOK, resdto.OK("Reservations found", resdto.FromReservationRMs(rms)))
}

// @Summary Reservation count per agency
// @Description Aggregated reservation totals grouped by agency email,
// @Description most reservations first
// @Tags reservations
// @Produce json
// @Success 200 {object} resdto.Envelope
// @Router /api/reservations/report/by-agency [get]
func (h *ReservationHandler) CountByAgency(c *gin.Context) {
	rms, err := h.reservationUseCase.CountByAgency(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to build report")
		return
	}

	c.JSON(http.StatusOK, resdto.OK("Report generated", resdto.FromAgencyCountRMs(rms)))
}

// @Summary Update reservation
// @Description Partial update: absent fields keep their stored value
// @Tags reservations
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Param request body reqdto.UpdateReservationRequest true "Update request"
// @Success 200 {object} resdto.Envelope
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/reservations/{id} [put]
func (h *ReservationHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation id")
		return
	}

	var req reqdto.UpdateReservationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format")
		return
	}

	rm, err := h.reservationUseCase.Update(c.Request.Context(), id, req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrReservationNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found")
		case errors.Is(err, usecase.ErrDomainValidationFailed):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Reservation data is invalid")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to update reservation")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.OK("Reservation updated", resdto.FromReservationRM(rm)))
}

// @Summary Delete reservation
// @Tags reservations
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.Envelope
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/reservations/{id} [delete]
func (h *ReservationHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation id")
		return
	}

	if err := h.reservationUseCase.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, usecase.ErrReservationNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to delete reservation")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.OK("Reservation deleted", nil))
}

// @Summary Import reservations from a spreadsheet
// @Description Upload an xlsx file; each valid row becomes a reservation.
// @Description Invalid rows are skipped and counted.
// @Tags reservations
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Reservation sheet (xlsx)"
// @Success 200 {object} resdto.Envelope
// @Failure 400 {object} httperr.Response
// @Router /api/reservations/import [post]
func (h *ReservationHandler) Import(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Sheet file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Failed to open uploaded file")
		return
	}
	defer file.Close()

	result, err := h.importUseCase.ImportReservations(c.Request.Context(), file)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Failed to import reservation sheet")
		return
	}

	msg := fmt.Sprintf("%d reservations imported, %d skipped", result.Imported, result.Skipped)
	c.JSON(http.StatusOK, resdto.OK(msg, result))
}

func buildFilter(c *gin.Context) (usecase.Filter, error) {
	var filter usecase.Filter
	if v := c.Query("agencyName"); v != "" {
		filter.AgencyName = &v
	}
	if v := c.Query("agencyEmail"); v != "" {
		filter.AgencyEmail = &v
	}
	start, err := reqdto.ParseDateOnly(c.Query("startDate"))
	if err != nil {
		return usecase.Filter{}, err
	}
	end, err := reqdto.ParseDateOnly(c.Query("endDate"))
	if err != nil {
		return usecase.Filter{}, err
	}
	filter.StartDate = start
	filter.EndDate = end
	return filter, nil
}
