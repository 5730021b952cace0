package webapp

import (
	"encoding/binary"
	"math"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// liveBatch is the number of samples per binary frame; 40 samples at
// 1 kHz paces one frame every 40 ms.
const liveBatch = 40

// Live handles GET /live: a bedside-monitor WebSocket feed. Parameters
// arrive in the query string like /api/spectrum; the duration is
// ignored and the stream runs until the client goes away. Frames are
// little-endian float32 sample batches at real-time pacing.
func (h *Handler) Live(w http.ResponseWriter, r *http.Request) {
	req, err := h.buildRequest(queryParams(r.URL.Query()))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, Fail(err.Error()))
		return
	}

	stream, err := h.engine.Stream(req)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, Fail(err.Error()))
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	logger := h.logger.With(
		zap.String("conn_id", uuid.NewString()),
		zap.String("method", req.MethodID))
	logger.Info("live stream opened")
	defer func() {
		conn.Close()
		logger.Info("live stream closed")
	}()

	// Reader pump; its only job is noticing the client closing.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	interval := time.Duration(liveBatch) * time.Second / time.Duration(req.SamplingRateHz)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	frame := make([]byte, 4*liveBatch)
	for {
		select {
		case <-done:
			return
		case <-r.Context().Done():
			return
		case <-ticker.C:
			for i, v := range stream.Next(liveBatch) {
				binary.LittleEndian.PutUint32(frame[i*4:], math.Float32bits(float32(v)))
			}
			_ = conn.SetWriteDeadline(time.Now().Add(time.Second))
			if err := conn.WriteMessage(websocket.BinaryMessage, frame); err != nil {
				return
			}
		}
	}
}
