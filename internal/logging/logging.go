package logging

import (
	"encoding/json"
	"log"
	"time"
)

// Event writes data as a single JSON line through the standard logger.
// "ts" is stamped in loc; "level" defaults to "error" when status is "error" and "info" otherwise.
func Event(loc *time.Location, data map[string]any) {
	if loc == nil {
		loc = time.UTC
	}
	data["ts"] = time.Now().In(loc).Format(time.RFC3339Nano)
	if _, ok := data["level"]; !ok {
		if data["status"] == "error" {
			data["level"] = "error"
		} else {
			data["level"] = "info"
		}
	}

	b, err := json.Marshal(data)
	if err != nil {
		log.Printf("failed to marshal log event: %v", err)
		return
	}
	log.SetFlags(0)
	log.Println(string(b))
}
