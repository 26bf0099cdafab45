package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/renderer"
)

// TileUpdate represents a single finished tile sent via SSE
type TileUpdate struct {
	TileX      int    `json:"tileX"` // Pixel column of the tile's top-left corner
	TileY      int    `json:"tileY"` // Pixel row of the tile's top-left corner
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	ImageData  string `json:"imageData"`  // Base64 encoded PNG of just this tile
	TileNumber int    `json:"tileNumber"` // Completion order (1-based)
	TotalTiles int    `json:"totalTiles"`
}

// CompleteUpdate carries the finished image and its statistics
type CompleteUpdate struct {
	ImageData string `json:"imageData"` // Base64 encoded PNG
	Stats     Stats  `json:"stats"`
}

// SSEEvent represents a unified SSE event for thread-safe writing
type SSEEvent struct {
	Type string `json:"type"` // "console", "tile", "error", "complete"
	Data string `json:"data"` // JSON-encoded data
}

// handleRenderStream renders a scene and streams console lines, finished
// tiles and the final image as Server-Sent Events
func (s *Server) handleRenderStream(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}
	sceneObj, err := s.loadScene(w, r, req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.setSSEHeaders(w)
	ctx := r.Context()

	// A single goroutine owns the response writer
	sseEventChan := make(chan SSEEvent, 100)
	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		s.writeSSEEvents(ctx, w, sseEventChan)
	}()
	defer func() {
		close(sseEventChan)
		<-writerDone
	}()

	consoleChan, webLogger := s.setupConsoleLogging()
	consoleDone := make(chan struct{})
	go func() {
		defer close(consoleDone)
		s.streamConsoleMessages(ctx, consoleChan, sseEventChan)
	}()

	pool, err := s.newWorkerPool(sceneObj, req, webLogger)
	if err != nil {
		close(consoleChan)
		<-consoleDone
		s.handleError(ctx, sseEventChan, err.Error())
		return
	}

	totalTiles := len(renderer.NewTileGrid(req.Width, req.Height, DefaultTileSize))
	var tileNumber atomic.Int64
	pool.OnTileComplete(func(tile renderer.Tile, fb *renderer.FrameBuffer) {
		s.handleTileUpdate(ctx, sseEventChan, tile, fb, int(tileNumber.Add(1)), totalTiles)
	})

	fb, stats, err := pool.Render(ctx)

	// The pool only logs inside Render, so the console channel can close now
	close(consoleChan)
	<-consoleDone

	if err != nil {
		s.handleError(ctx, sseEventChan, fmt.Sprintf("Rendering failed: %v", err))
		return
	}

	imageData, err := imageToBase64PNG(fb.ToImage())
	if err != nil {
		s.handleError(ctx, sseEventChan, fmt.Sprintf("Failed to encode image: %v", err))
		return
	}
	s.sendEvent(ctx, sseEventChan, "complete", CompleteUpdate{
		ImageData: imageData,
		Stats:     newStats(stats, sceneObj),
	})
}

// setSSEHeaders sets the required headers for Server-Sent Events
func (s *Server) setSSEHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")
}

// setupConsoleLogging creates console channel and web logger for a render
func (s *Server) setupConsoleLogging() (chan ConsoleMessage, core.Logger) {
	consoleChan := make(chan ConsoleMessage, 50)
	renderID := fmt.Sprintf("render-%d", time.Now().UnixNano())
	return consoleChan, NewWebLogger(renderID, consoleChan)
}

// writeSSEEvents writes events until the channel is closed or the client
// goes away
func (s *Server) writeSSEEvents(ctx context.Context, w http.ResponseWriter, sseEventChan <-chan SSEEvent) {
	flusher, _ := w.(http.Flusher)
	for {
		select {
		case event, ok := <-sseEventChan:
			if !ok {
				return
			}
			if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Type, event.Data); err != nil {
				return
			}
			if flusher != nil {
				flusher.Flush()
			}

		case <-ctx.Done():
			return
		}
	}
}

// streamConsoleMessages forwards console messages until consoleChan is closed
func (s *Server) streamConsoleMessages(ctx context.Context, consoleChan <-chan ConsoleMessage, sseEventChan chan<- SSEEvent) {
	for msg := range consoleChan {
		data, err := json.Marshal(msg)
		if err != nil {
			log.Printf("Error marshaling console message: %v", err)
			continue
		}

		select {
		case sseEventChan <- SSEEvent{Type: "console", Data: string(data)}:
		case <-ctx.Done():
		}
	}
}

// handleTileUpdate encodes a finished tile and queues it. It runs on the
// render workers.
func (s *Server) handleTileUpdate(ctx context.Context, sseEventChan chan<- SSEEvent, tile renderer.Tile,
	fb *renderer.FrameBuffer, tileNumber, totalTiles int) {
	if ctx.Err() != nil {
		return
	}

	tileData, err := imageToBase64PNG(fb.SubImage(tile.Bounds))
	if err != nil {
		log.Printf("Error encoding tile %d: %v", tile.ID, err)
		return
	}

	s.sendEvent(ctx, sseEventChan, "tile", TileUpdate{
		TileX:      tile.Bounds.Min.X,
		TileY:      tile.Bounds.Min.Y,
		Width:      tile.Bounds.Dx(),
		Height:     tile.Bounds.Dy(),
		ImageData:  tileData,
		TileNumber: tileNumber,
		TotalTiles: totalTiles,
	})
}

// sendEvent marshals v and queues it unless the client has gone away
func (s *Server) sendEvent(ctx context.Context, sseEventChan chan<- SSEEvent, eventType string, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("Error marshaling %s event: %v", eventType, err)
		return
	}

	select {
	case sseEventChan <- SSEEvent{Type: eventType, Data: string(data)}:
	case <-ctx.Done():
	}
}

// handleError sends an error event to the SSE channel
func (s *Server) handleError(ctx context.Context, sseEventChan chan<- SSEEvent, message string) {
	log.Printf("Render error: %s", message)
	select {
	case sseEventChan <- SSEEvent{Type: "error", Data: message}:
	case <-ctx.Done():
	}
}
