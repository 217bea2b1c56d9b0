package v1

import (
	"net/http"

	"github.com/asecurityteam/scaffold/pkg/domain"
)

type greetingFailure struct {
	Message string `logevent:"message,default=greeting-failure"`
	Reason  string `logevent:"reason"`
}

// Hello is the application controller. It serves the greeting produced by
// the configured domain.Greeter.
type Hello struct {
	LogFn   domain.LogFn
	StatFn  domain.StatFn
	Greeter domain.Greeter
}

func (h *Hello) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	msg, err := h.Greeter.Greeting(ctx)
	if err != nil {
		h.LogFn(ctx).Error(greetingFailure{Reason: err.Error()})
		h.StatFn(ctx).Count("hello", 1, "outcome:error")
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	h.StatFn(ctx).Count("hello", 1, "outcome:ok")
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(msg))
}

// NotFound answers requests for routes that are not bound with a
// domain.NotFoundError document.
type NotFound struct {
	StatFn domain.StatFn
}

func (h *NotFound) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.StatFn(r.Context()).Count("route.not_found", 1)
	writeError(w, http.StatusNotFound, domain.NotFoundError{ID: r.URL.Path})
}
