package handlers

import (
	"encoding/json"
	"fmt"
	"io"
)

// Required fields in declared order; validation reports the first one
// missing from a request body.
var (
	stationRequired    = []string{"id_name", "name", "latitude", "longitude", "city", "address"}
	pumpRequired       = []string{"id_name", "fuel_type", "price", "available", "station_id"}
	nestedPumpRequired = []string{"id_name", "fuel_type", "price", "available"}
)

const nestedPumpMessage = "The request body must contain a id_name, fuel_type, price and available property for each pump"

// decodeBody reads a JSON object body into a raw key map so field presence
// can be checked independently of field types. A value of the wrong type
// passes this stage and fails later, at the typed decode.
func decodeBody(r io.Reader) (map[string]json.RawMessage, error) {
	var raw map[string]json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// firstMissing returns the first required field absent from the body, in
// declared order, or "" when all are present.
func firstMissing(body map[string]json.RawMessage, required []string) string {
	for _, field := range required {
		if _, ok := body[field]; !ok {
			return field
		}
	}
	return ""
}

func missingFieldMessage(field string) string {
	return fmt.Sprintf("The request body must contain a %s property", field)
}

// decodeInto re-marshals a raw key map into a typed value. Type mismatches
// surface here, after validation, and are reported as store-level failures
// by the callers.
func decodeInto(raw map[string]json.RawMessage, v any) error {
	b, err := json.Marshal(raw)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, v)
}

// entryID extracts a numeric, non-null id from a nested pump entry.
func entryID(entry map[string]json.RawMessage) (string, bool) {
	raw, ok := entry["id"]
	if !ok {
		return "", false
	}
	var id *json.Number
	if err := json.Unmarshal(raw, &id); err != nil || id == nil {
		return "", false
	}
	return id.String(), true
}

// entryDeleted reports whether a nested pump entry carries deleted: true.
func entryDeleted(entry map[string]json.RawMessage) bool {
	raw, ok := entry["deleted"]
	if !ok {
		return false
	}
	var deleted bool
	if err := json.Unmarshal(raw, &deleted); err != nil {
		return false
	}
	return deleted
}
