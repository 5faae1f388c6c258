package routes

import (
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"go-restaurant/controllers"
)

const requestIDHeader = "X-Request-ID"

func SetupRoutes(c *controllers.FoodController, logger *log.Logger) *mux.Router {
	r := mux.NewRouter()
	r.Use(requestLogger(logger))
	r.HandleFunc("/foods", c.GetAllFoods).Methods("GET")
	r.HandleFunc("/foods", c.CreateFood).Methods("POST")
	r.HandleFunc("/foods/{id}", c.GetFood).Methods("GET")
	r.HandleFunc("/foods/{id}", c.UpdateFood).Methods("PUT")
	r.HandleFunc("/foods/{id}", c.DeleteFood).Methods("DELETE")
	return r
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// requestLogger stamps every request with an id, echoing one sent by the
// client, and logs the outcome.
func requestLogger(logger *log.Logger) mux.MiddlewareFunc {
	if logger == nil {
		logger = log.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(requestIDHeader)
			if id == "" {
				id = uuid.New().String()
			}
			w.Header().Set(requestIDHeader, id)

			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)
			logger.Printf("%s %s %s %d %s", id, r.Method, r.URL.Path, rec.status, time.Since(start))
		})
	}
}
