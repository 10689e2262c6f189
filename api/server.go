package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/matt-g-everett/ledring/stream"
)

// Driver is the part of stream.Driver the API controls.
type Driver interface {
	Start() bool
	Stop()
	Status() stream.Status
}

// Api serves driver status and lifecycle commands over HTTP, plus static
// client files.
type Api struct {
	driver Driver
	static string
}

// NewApi creates an Api. static is the directory served at "/"; leave it
// empty to serve no files.
func NewApi(driver Driver, static string) *Api {
	a := new(Api)
	a.driver = driver
	a.static = static
	return a
}

// Router builds the request router.
func (a *Api) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/ring", a.getRing).Methods("GET")
	r.HandleFunc("/api/ring/start", a.startRing).Methods("POST")
	r.HandleFunc("/api/ring/stop", a.stopRing).Methods("POST")
	if a.static != "" {
		r.PathPrefix("/").Handler(http.FileServer(http.Dir(a.static)))
	}
	return r
}

// Serve listens on addr until the server fails.
func (a *Api) Serve(addr string) error {
	log.Printf("Listening on %s...", addr)
	return http.ListenAndServe(addr, a.Router())
}

func (a *Api) getRing(w http.ResponseWriter, r *http.Request) {
	writeStatus(w, http.StatusOK, a.driver.Status())
}

func (a *Api) startRing(w http.ResponseWriter, r *http.Request) {
	if !a.driver.Start() {
		writeStatus(w, http.StatusServiceUnavailable, a.driver.Status())
		return
	}
	writeStatus(w, http.StatusOK, a.driver.Status())
}

func (a *Api) stopRing(w http.ResponseWriter, r *http.Request) {
	a.driver.Stop()
	writeStatus(w, http.StatusOK, a.driver.Status())
}

func writeStatus(w http.ResponseWriter, code int, status stream.Status) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(status); err != nil {
		log.Printf("Writing status: %v", err)
	}
}
