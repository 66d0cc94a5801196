package pkgrouter

import "net/http"

// MaxBodyBytes caps the request body at n bytes.
//
// Reads beyond the cap fail with *http.MaxBytesError. A non-positive n
// disables the cap.
func MaxBodyBytes(n int64) Middleware {
	return func(next http.Handler) http.Handler {
		if n <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, n)
			next.ServeHTTP(w, r)
		})
	}
}
