/**
 * @description
 * This file defines the uniform response envelope used by every banking
 * endpoint and the helpers for writing it. Success and failure responses share
 * the same shape so that clients can parse either without branching on the
 * status code first.
 *
 * @dependencies
 * - encoding/json, net/http, time: Standard Go libraries.
 */

package api

import (
	"encoding/json"
	"net/http"
	"time"
)

// apiResponse is the envelope wrapping every banking endpoint response:
// {status, data, message, error_code?, timestamp}.
type apiResponse struct {
	Status    string      `json:"status"`
	Data      interface{} `json:"data,omitempty"`
	Message   string      `json:"message"`
	ErrorCode int         `json:"error_code,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// writeSuccess writes a success envelope with the given payload and message.
func writeSuccess(w http.ResponseWriter, status int, data interface{}, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiResponse{
		Status:    "success",
		Data:      data,
		Message:   message,
		Timestamp: time.Now().UTC(),
	})
}

// writeFailure writes a failure envelope. The error_code mirrors the HTTP
// status so that clients reading only the body still see the outcome.
func writeFailure(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiResponse{
		Status:    "failure",
		Message:   message,
		ErrorCode: status,
		Timestamp: time.Now().UTC(),
	})
}
