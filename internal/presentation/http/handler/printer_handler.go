package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sangkips/residence-api/internal/presentation/http/dto/response"
	"github.com/sangkips/residence-api/pkg/printer"
)

// PrinterStateReader exposes the PDF printer lifecycle state.
type PrinterStateReader interface {
	State() printer.State
}

// PrinterStatus is the PDF printer status payload.
type PrinterStatus struct {
	State string `json:"state"`
	Ready bool   `json:"ready"`
}

// PrinterHandler handles PDF printer status requests.
type PrinterHandler struct {
	printer PrinterStateReader
	service string
}

// NewPrinterHandler creates a new printer handler. service names the app in health output.
func NewPrinterHandler(p PrinterStateReader, service string) *PrinterHandler {
	return &PrinterHandler{printer: p, service: service}
}

func (h *PrinterHandler) status() PrinterStatus {
	state := h.printer.State()
	return PrinterStatus{State: state.String(), Ready: state == printer.StateReady}
}

// GetStatus returns the PDF printer state.
func (h *PrinterHandler) GetStatus(c *gin.Context) {
	response.OK(c, "Printer status retrieved", h.status())
}

// Health reports liveness. The service is degraded while PDF export is unavailable.
func (h *PrinterHandler) Health(c *gin.Context) {
	st := h.status()
	code, status := http.StatusOK, "ok"
	if !st.Ready {
		code, status = http.StatusServiceUnavailable, "degraded"
	}
	c.JSON(code, gin.H{
		"status":  status,
		"service": h.service,
		"printer": st,
	})
}
