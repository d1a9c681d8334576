package server

import (
	"net/http"

	"github.com/mergington/activities/pkg/codec"
	"github.com/mergington/activities/pkg/registry"
)

type messageResponse struct {
	Message string `json:"message"`
}

type detailResponse struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	b, err := codec.JSONStrict.Marshal(v)
	if err != nil {
		http.Error(w, "encode failure", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", codec.JSONStrict.ContentType())
	w.WriteHeader(status)
	_, _ = w.Write(b)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, detailResponse{Detail: detail})
}

// renderError maps registry error kinds to HTTP statuses. Anything the
// registry did not produce is a 500.
func renderError(w http.ResponseWriter, err error) {
	switch registry.KindOf(err) {
	case registry.KindNotFound:
		writeDetail(w, http.StatusNotFound, err.Error())
	case registry.KindConflict:
		writeDetail(w, http.StatusBadRequest, err.Error())
	default:
		writeDetail(w, http.StatusInternalServerError, "internal error")
	}
}
