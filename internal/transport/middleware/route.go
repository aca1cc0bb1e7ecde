package middleware

import (
	"net/http"

	"github.com/gorilla/mux"
)

// routeTemplate returns the matched mux path template, or "unmatched".
// Labelling by template keeps ids out of metric labels.
func routeTemplate(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if tpl, err := route.GetPathTemplate(); err == nil {
			return tpl
		}
	}
	return "unmatched"
}
