package api

import (
	"errors"
	"net/http"

	reqdto "onvacation-backend/internal/handler/dto/request"
	resdto "onvacation-backend/internal/handler/dto/response"
	"onvacation-backend/internal/handler/httperr"
	"onvacation-backend/internal/usecase"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	notificationUseCase usecase.NotificationUseCase
}

func NewNotificationHandler(notificationUseCase usecase.NotificationUseCase) *NotificationHandler {
	return &NotificationHandler{notificationUseCase: notificationUseCase}
}

// @Summary Send agency email
// @Description Compose and send an email to an agency, optionally appending
// @Description the agency's reservation list to the body
// @Tags notifications
// @Accept json
// @Produce json
// @Param request body reqdto.SendEmailRequest true "Email request"
// @Success 200 {object} resdto.Envelope
// @Failure 400 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/notifications/email [post]
func (h *NotificationHandler) SendEmail(c *gin.Context) {
	var req reqdto.SendEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	msg, err := h.notificationUseCase.SendAgencyEmail(c.Request.Context(), req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrMissingRecipient),
			errors.Is(err, usecase.ErrMissingSubject),
			errors.Is(err, usecase.ErrMissingBody):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Email request is incomplete")
		case errors.Is(err, usecase.ErrEmailGateway):
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Email delivery failed")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to send email")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.OK("Email sent", resdto.FromEmailMessage(msg)))
}
