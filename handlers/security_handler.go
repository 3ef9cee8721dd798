package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type SecurityHandler struct{}

func NewSecurityHandler() *SecurityHandler {
	return &SecurityHandler{}
}

// CSPReport accepts browser policy-violation reports. Reporting must never be
// observable as a failure to the reporting client, so the answer is 204 no
// matter what the body contains or what goes wrong internally.
func (h *SecurityHandler) CSPReport(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, 64*1024))
	if err == nil && len(body) > 0 {
		var report map[string]interface{}
		if json.Unmarshal(body, &report) == nil {
			log.Printf("csp violation report: %v", report)
		} else {
			log.Printf("csp violation report (unparsable, %d bytes)", len(body))
		}
	}

	c.Status(http.StatusNoContent)
}
