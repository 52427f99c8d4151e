package request

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"

	"cosmos-server/internal/shared/errors"
)

// DecodeJSON reads a JSON body of at most limit bytes into v. An empty body
// leaves v untouched, so callers pre-fill v with their defaults.
func DecodeJSON(w http.ResponseWriter, r *http.Request, limit int64, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, limit)

	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil || stderrors.Is(err, io.EOF) {
		return nil
	}

	var tooLarge *http.MaxBytesError
	if stderrors.As(err, &tooLarge) {
		return errors.Validation(fmt.Sprintf("request body exceeds %d bytes", limit))
	}
	return errors.WrapValidation("invalid JSON request body", err)
}
