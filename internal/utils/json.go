package utils

import (
	"encoding/json"

	"educator-site/internal/event"
)

var log = event.Log

// JSONWriter is anything that can write a JSON frame, e.g. a websocket connection.
type JSONWriter interface {
	WriteJSON(v interface{}) error
}

// SafeJSONParse parses JSON safely
func SafeJSONParse(data []byte, v interface{}) error {
	if len(data) == 0 {
		data = []byte("{}")
	}
	return json.Unmarshal(data, v)
}

// SendJSON sends a JSON payload to a connection.
// Websocket connections are not safe for concurrent writes; the caller serializes.
func SendJSON(c JSONWriter, payload interface{}) error {
	return c.WriteJSON(payload)
}

// LogError logs an error if it's not nil
func LogError(err error, context string) {
	if err != nil {
		log.Errorf("%s: %v", context, err)
	}
}
