package api

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

// setStreamHeaders prepares the response for NDJSON streaming. The
// X-Accel-Buffering header keeps nginx-style proxies from buffering
// the stream.
func setStreamHeaders(c *gin.Context) {
	h := c.Writer.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	h.Set("X-Accel-Buffering", "no")
	c.Writer.WriteHeader(http.StatusOK)
}

// writeFrame serializes one frame as a JSON line and flushes it so the
// client sees each event as it happens.
func writeFrame(c *gin.Context, frame any) error {
	data, err := json.Marshal(frame)
	if err != nil {
		return err
	}
	if _, err := c.Writer.Write(append(data, '\n')); err != nil {
		return err
	}
	c.Writer.Flush()
	return nil
}

// writeRawFrame writes an already-serialized JSON payload as one line.
// Used when relaying broker events, which arrive pre-encoded.
func writeRawFrame(c *gin.Context, payload []byte) error {
	if _, err := c.Writer.Write(append(payload, '\n')); err != nil {
		return err
	}
	c.Writer.Flush()
	return nil
}
