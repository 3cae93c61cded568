package payslip

import (
	"net/http"

	"github.com/piyushraj0718/payrollmanagement/internal/shared/apperror"
	"github.com/piyushraj0718/payrollmanagement/internal/shared/response"

	"github.com/gin-gonic/gin"
)

const (
	contentTypePDF  = "application/pdf"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func bindRequest(c *gin.Context) (PayslipRequest, bool) {
	var req PayslipRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		writeServiceError(c, apperror.MapValidationError(err))
		return req, false
	}
	return req, true
}

func (h *Handler) Get(c *gin.Context) {
	req, ok := bindRequest(c)
	if !ok {
		return
	}

	resp, err := h.service.Generate(c.Request.Context(), c.GetString("organization"), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) DownloadPDF(c *gin.Context) {
	req, ok := bindRequest(c)
	if !ok {
		return
	}

	body, name, err := h.service.RenderPDF(c.Request.Context(), c.GetString("organization"), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Attachment(c, contentTypePDF, name, body)
}

func (h *Handler) DownloadXLSX(c *gin.Context) {
	req, ok := bindRequest(c)
	if !ok {
		return
	}

	body, name, err := h.service.ExportXLSX(c.Request.Context(), c.GetString("organization"), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Attachment(c, contentTypeXLSX, name, body)
}
