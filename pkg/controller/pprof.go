package controller

import (
	"net/http"
	"net/http/pprof"
	"strings"
)

// profiles served through pprof.Handler in addition to the index.
var profiles = []string{"allocs", "block", "goroutine", "heap", "mutex", "threadcreate"} //nolint: gochecknoglobals

// PprofMux returns a mux serving net/http/pprof under prefix (e.g.
// "/debug/pprof"). Only GET requests are routed; the index links resolve
// relative to prefix.
func PprofMux(prefix string) *http.ServeMux {
	prefix = strings.TrimSuffix(prefix, "/")
	mux := http.NewServeMux()

	mux.HandleFunc("GET "+prefix+"/", pprof.Index)
	mux.HandleFunc("GET "+prefix+"/cmdline", pprof.Cmdline)
	mux.HandleFunc("GET "+prefix+"/profile", pprof.Profile)
	mux.HandleFunc("GET "+prefix+"/symbol", pprof.Symbol)
	mux.HandleFunc("GET "+prefix+"/trace", pprof.Trace)
	for _, p := range profiles {
		mux.Handle("GET "+prefix+"/"+p, pprof.Handler(p))
	}

	return mux
}
