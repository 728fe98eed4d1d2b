package api

import (
	"context"
	"net/http"
	"time"

	"github.com/maksimkurb/keen-console/src/internal/log"
	"github.com/maksimkurb/keen-console/src/internal/store"
)

var (
	// Version information set via ldflags at build time
	Version = "dev"
	Date    = "n/a"
	Commit  = "n/a"
)

// probeTimeout bounds each server call of the status endpoint.
const probeTimeout = 3 * time.Second

// GetStatus returns console status information.
// GET /api/v1/status
func (h *Handler) GetStatus(w http.ResponseWriter, r *http.Request) {
	response := StatusResponse{
		Version: VersionInfo{
			Version: Version,
			Date:    Date,
			Commit:  Commit,
		},
		Uptime:      time.Since(h.started).Round(time.Second).String(),
		StoreDriver: h.deps.StoreDriver,
		Sessions:    h.deps.Sessions.Len(),
	}

	if v, ok := h.deps.Store.(store.ServerVersioner); ok {
		ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
		version, err := v.ServerVersion(ctx)
		cancel()
		if err != nil {
			log.Warnf("Failed to get server version: %v", err)
		}
		response.ServerVersion = version
	}

	if h.deps.Probe != nil {
		ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
		defer cancel()

		result, err := h.deps.Probe(ctx)
		response.DNS = &DNSStatus{Result: result}
		if err != nil {
			response.DNS.Error = err.Error()
		}
	}

	writeJSONData(w, response)
}
