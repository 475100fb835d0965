package htmx

import "net/http"

// IsHTMX returns true if the request originated from HTMX.
func IsHTMX(r *http.Request) bool {
	return r.Header.Get(HeaderHXRequest) == "true"
}

// TriggerName returns the name attribute of the element that fired the request.
func TriggerName(r *http.Request) string {
	return r.Header.Get(HeaderHXTriggerName)
}

// TriggerID returns the id attribute of the element that fired the request.
func TriggerID(r *http.Request) string {
	return r.Header.Get(HeaderHXTriggerID)
}

// Redirect performs a redirect for both HTMX and regular requests.
func Redirect(w http.ResponseWriter, r *http.Request, url string, status int) {
	if IsHTMX(r) {
		w.Header().Set(HeaderHXRedirect, url)
		// The browser follows HX-Redirect only on a 2xx response.
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, url, status)
}
