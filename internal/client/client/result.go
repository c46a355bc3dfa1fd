package client

import (
	"encoding/json"
	"fmt"
)

// Result is the uniform outcome of an API call. On success Data holds the
// raw response body; on failure Message explains what went wrong.
type Result struct {
	Success bool
	Data    json.RawMessage
	Message string
}

func succeeded(data []byte) Result {
	return Result{Success: true, Data: json.RawMessage(data)}
}

func failed(msg, fallback string) Result {
	if msg == "" {
		msg = fallback
	}
	return Result{Message: msg}
}

// Decode unmarshals the response body of a successful result into v.
func (r Result) Decode(v any) error {
	if !r.Success || len(r.Data) == 0 {
		return ErrNoData
	}
	if err := json.Unmarshal(r.Data, v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
