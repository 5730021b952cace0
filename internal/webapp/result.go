package webapp

import (
	"encoding/json"
	"io"
	"net/http"
)

// Result is the response envelope the embedded page expects: a status
// code distinct from the HTTP one, a type for toast styling, a message
// and the payload.
type Result[T any] struct {
	Code    int    `json:"code"`
	Type    string `json:"type"`
	Message string `json:"message"`
	Result  T      `json:"result"`
}

const (
	resultSuccess = 2000
	resultError   = -1
)

// Ok wraps a payload in a success envelope.
func Ok[T any](result T) Result[T] {
	return Result[T]{Code: resultSuccess, Type: "success", Message: "ok", Result: result}
}

// Fail builds an error envelope with no payload.
func Fail(message string) Result[any] {
	return Result[any]{Code: resultError, Type: "error", Message: message, Result: nil}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func readBodyJSON(r *http.Request, maxBytes int64, out any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBytes))
	if err != nil {
		return err
	}
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}
