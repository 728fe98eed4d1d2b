//go:build dev

package api

import (
	"net/http/pprof"

	"github.com/go-chi/chi/v5"

	"github.com/maksimkurb/keen-console/src/internal/log"
)

var pprofProfiles = []string{"heap", "goroutine", "threadcreate", "block", "allocs", "mutex"}

// registerPprof mounts the runtime profiles in dev builds.
func registerPprof(r chi.Router) {
	log.Debugf("[API] Profiling enabled at /debug/pprof")

	r.Route("/debug/pprof", func(r chi.Router) {
		r.HandleFunc("/", pprof.Index)
		r.HandleFunc("/cmdline", pprof.Cmdline)
		r.HandleFunc("/profile", pprof.Profile)
		r.HandleFunc("/symbol", pprof.Symbol)
		r.HandleFunc("/trace", pprof.Trace)
		for _, name := range pprofProfiles {
			r.Handle("/"+name, pprof.Handler(name))
		}
	})
}
