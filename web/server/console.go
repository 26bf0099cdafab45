package server

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// ConsoleMessage is a render log line forwarded to the browser console
type ConsoleMessage struct {
	RenderID  string    `json:"renderId"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"` // "info", "warning", "error"
}

// WebLogger implements core.Logger for a single render. Every line goes to
// the server log and, when there is room, to the render's console channel.
type WebLogger struct {
	renderID    string
	consoleChan chan<- ConsoleMessage
}

// NewWebLogger creates a new web logger for a specific render
func NewWebLogger(renderID string, consoleChan chan<- ConsoleMessage) core.Logger {
	return &WebLogger{
		renderID:    renderID,
		consoleChan: consoleChan,
	}
}

// Printf implements core.Logger interface
func (wl *WebLogger) Printf(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	log.Printf("[%s] %s", wl.renderID, strings.TrimRight(message, "\n"))

	if wl.consoleChan == nil {
		return
	}
	select {
	case wl.consoleChan <- ConsoleMessage{
		RenderID:  wl.renderID,
		Message:   message,
		Timestamp: time.Now(),
		Level:     consoleLevel(message),
	}:
	default:
		// Channel full, drop rather than stall a render worker
	}
}

func consoleLevel(message string) string {
	lower := strings.ToLower(strings.TrimSpace(message))
	switch {
	case strings.HasPrefix(lower, "error"):
		return "error"
	case strings.HasPrefix(lower, "warning"):
		return "warning"
	default:
		return "info"
	}
}
