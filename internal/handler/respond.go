package handler

import (
	"encoding/json"
	"net/http"
)

// successResponse is the envelope every success response uses.
type successResponse struct {
	Status string `json:"status"`
	Data   any    `json:"data"`
}

func writeSuccess(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(successResponse{Status: "success", Data: data})
}
