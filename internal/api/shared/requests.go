package shared

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// maxRequestBodySize caps request bodies at 1 MiB; every request body in
// this API is a small JSON object.
const maxRequestBodySize = 1 << 20

// DecodeJSON decodes the request body into dst, rejecting unknown fields
// and oversized bodies.
func DecodeJSON(r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(nil, r.Body, maxRequestBodySize)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("failed to decode request body: %w", err)
	}
	return nil
}
