package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/mesh-intelligence/eventbook/pkg/types"
)

// detail is the error and confirmation body shape: {"detail": "..."}.
type detail struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeDetail(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusOK, detail{Detail: msg})
}

// writeError maps the service error taxonomy onto HTTP statuses: missing
// records are 404, rejected payloads 422, duplicate ids 409, anything else
// an opaque 500 (the cause is logged, not leaked).
func (s *Server) writeError(w http.ResponseWriter, err error) {
	var nf *types.NotFoundError
	switch {
	case errors.As(err, &nf):
		writeJSON(w, http.StatusNotFound, detail{Detail: nf.Entity + " not found"})
	case errors.Is(err, types.ErrInvalid):
		writeJSON(w, http.StatusUnprocessableEntity, detail{Detail: err.Error()})
	case errors.Is(err, types.ErrDuplicateID):
		writeJSON(w, http.StatusConflict, detail{Detail: err.Error()})
	default:
		s.log.Error("request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, detail{Detail: "internal error"})
	}
}

// decodeJSON parses the request body into v, rejecting unknown fields and
// surfacing malformed bodies as validation errors.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		var ve *types.ValidationError
		if errors.As(err, &ve) {
			return ve
		}
		return &types.ValidationError{Field: "body", Reason: "is not valid JSON for this entity"}
	}
	return nil
}

// pathID parses the {id} path segment.
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0, &types.ValidationError{Field: "id", Reason: "must be an integer"}
	}
	return id, nil
}
