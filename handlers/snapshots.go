package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/andrewpaige1/studysnap-api/events"
)

var heartbeatInterval = 15 * time.Second

// StreamSnapshots sends the current state of every collection, then a new
// snapshot each time one changes, as Server-Sent Events.
func (h *StudyHandler) StreamSnapshots(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}
	flusher, ok := w.(http.Flusher)
	if !ok {
		writeJSONError(w, http.StatusInternalServerError, "Streaming unsupported")
		return
	}

	ctx := r.Context()
	initial, updates, err := h.Service.Subscribe(ctx, user.ID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)

	for _, snap := range initial {
		h.writeEvent(w, snap)
	}
	flusher.Flush()

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

	for {
		select {
		case <-ctx.Done():
			h.Log.Debug("snapshot stream closed", "user_id", user.ID, "err", ctx.Err())
			return
		case <-heartbeat.C:
			fmt.Fprint(w, ": ping\n\n")
			flusher.Flush()
		case snap, ok := <-updates:
			if !ok {
				return
			}
			h.writeEvent(w, snap)
			flusher.Flush()
		}
	}
}

func (h *StudyHandler) writeEvent(w http.ResponseWriter, snap events.Snapshot) {
	jsonBytes, err := json.Marshal(snap)
	if err != nil {
		h.Log.Warn("failed to marshal snapshot", "error", err)
		return
	}
	_, _ = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", snap.Collection, jsonBytes)
}
