package rest

import (
	"encoding/json"
	"fmt"
	"net/http"
)

type Response[T any] struct {
	Status int `json:"Status"`
	Body   T   `json:"Body,omitempty"`
}

type ErrorResponse struct {
	ErrorDescription string `json:"ErrorDescription"`
}

const internalErrorJSON = `{"Status":500,"Body":{"ErrorDescription":"Internal server error"}}`

// WriteResponseWithStatus writes body wrapped in the Status/Body envelope with a matching HTTP status.
func WriteResponseWithStatus(w http.ResponseWriter, status int, body any) {
	payload, err := json.Marshal(Response[any]{Status: status, Body: body})
	if err != nil {
		WriteInternalErrorResponse(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(payload)
}

func WriteErrorResponse(w http.ResponseWriter, status int, description string) {
	WriteResponseWithStatus(w, status, ErrorResponse{ErrorDescription: description})
}

func WriteInternalErrorResponse(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = fmt.Fprintln(w, internalErrorJSON)
}
