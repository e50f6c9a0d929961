package models

import "encoding/json"

// Document is a client payload stored exactly as posted. The store assigns
// the _id.
type Document map[string]interface{}

// withExtra encodes known and adds the extra fields it does not already carry.
func withExtra(known interface{}, extra map[string]interface{}) ([]byte, error) {
	data, err := json.Marshal(known)
	if err != nil || len(extra) == 0 {
		return data, err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}

	merged := make(map[string]interface{}, len(fields)+len(extra))
	for k, v := range extra {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return json.Marshal(merged)
}
