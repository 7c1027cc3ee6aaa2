package health

import (
	"net/http"
	"time"

	process "github.com/s-larionov/process-manager"
)

func NewHealthCheckServer(listen, path string, handler http.Handler) *http.Server {
	mux := http.NewServeMux()
	mux.Handle(path, handler)

	return &http.Server{
		Addr:              listen,
		Handler:           mux,
		ReadHeaderTimeout: time.Minute,
	}
}

func DefaultHandler(m *process.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if m == nil {
			w.WriteHeader(http.StatusServiceUnavailable)

			return
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
}
