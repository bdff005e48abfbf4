package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"strconv"

	"github.com/gin-gonic/gin"
)

// bindPatchBody decodes a partial-update body into dst and also returns the
// raw key set, so handlers can tell "field absent" apart from "field present
// but null".
func bindPatchBody(c *gin.Context, dst interface{}) (map[string]json.RawMessage, error) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return nil, err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return nil, err
	}

	return raw, nil
}

// firstNullField returns the first of fields that is present in the payload
// with an explicit null value. Null is rejected for non-nullable columns.
func firstNullField(raw map[string]json.RawMessage, fields ...string) string {
	for _, field := range fields {
		if value, ok := raw[field]; ok && isJSONNull(value) {
			return field
		}
	}
	return ""
}

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}

func isJSONNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}

func parseID(raw string) (uint64, bool) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}
