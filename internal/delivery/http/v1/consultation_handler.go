package v1

import (
	"errors"

	"github.com/gin-gonic/gin"

	"go-lawfirm-backend/internal/delivery/http/response"
	"go-lawfirm-backend/internal/domain"
	"go-lawfirm-backend/pkg/apperror"
)

type ConsultationHandler struct {
	consultationUC domain.ConsultationUsecase
}

// NewConsultationHandler registers the consultation intake route (public, no
// auth required). Extra per-route middleware (the form rate limiter) is
// passed through so the route owns its whole chain.
func NewConsultationHandler(public *gin.RouterGroup, consultationUC domain.ConsultationUsecase, extra ...gin.HandlerFunc) {
	handler := &ConsultationHandler{
		consultationUC: consultationUC,
	}

	chain := append(extra, handler.Submit)
	public.POST("/consultations", chain...)
}

// Submit godoc
// @Summary      Submit Consultation Request
// @Description  Validate a consultation form submission and fan out firm email, client email and client SMS notifications. Notification failures are reported per channel and never fail the request.
// @Tags         consultations
// @Accept       json
// @Produce      json
// @Param        consultation  body      domain.ConsultationRequest  true  "Consultation Form Data"
// @Success      200           {object}  response.SubmissionResponse
// @Failure      400           {object}  response.ErrorResponse
// @Failure      500           {object}  response.ErrorResponse
// @Router       /consultations [post]
func (h *ConsultationHandler) Submit(c *gin.Context) {
	var req domain.ConsultationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// An empty or malformed body is treated as an empty submission so
		// the validator names the first missing field instead of surfacing
		// a JSON parse error.
		req = domain.ConsultationRequest{}
	}

	report, err := h.consultationUC.Submit(c.Request.Context(), &req)
	if err != nil {
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			c.Error(apperror.BadRequest(vErr.Message))
			return
		}
		c.Error(apperror.Internal(err))
		return
	}

	response.Submitted(c, "Your consultation request has been received. Our team will contact you shortly.", report)
}
