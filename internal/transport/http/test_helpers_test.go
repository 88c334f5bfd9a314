package http

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/rs/zerolog"

	"github.com/vovakirdan/driftroom-server/internal/config"
	"github.com/vovakirdan/driftroom-server/internal/core"
	"github.com/vovakirdan/driftroom-server/internal/proto"
	"github.com/vovakirdan/driftroom-server/internal/utils"
)

func startTestServer(t *testing.T, roomTTL time.Duration) (*httptest.Server, *core.Registry) {
	t.Helper()

	cfg := config.Default()
	cfg.Addr = ":0"
	cfg.ReadHeaderTimeout = time.Second
	cfg.ShutdownTimeout = time.Second
	cfg.RoomTTL = roomTTL

	disabledLogger := zerolog.Nop()

	registry := core.NewRegistry(cfg.RoomTTL, cfg.HistoryLimit, utils.NewRoomID, &disabledLogger)
	hub := core.NewHub(registry, &disabledLogger)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go hub.Run(ctx)

	server := NewServer(hub, registry, &cfg, &disabledLogger)
	ts := httptest.NewServer(server.Handler)
	t.Cleanup(ts.Close)

	return ts, registry
}

func sendInbound(ctx context.Context, t *testing.T, conn *websocket.Conn, typ string, data any) {
	t.Helper()

	payload, err := json.Marshal(data)
	if err != nil {
		t.Fatalf("marshal %s: %v", typ, err)
	}
	if err := wsjson.Write(ctx, conn, proto.Inbound{Type: typ, Data: payload}); err != nil {
		t.Fatalf("write %s: %v", typ, err)
	}
}

// readUntilEvent reads outbound frames until one matches the wanted event
// name, failing the test on error frames along the way.
func readUntilEvent(ctx context.Context, t *testing.T, conn *websocket.Conn, event string) json.RawMessage {
	t.Helper()

	for {
		var outbound struct {
			Type  string          `json:"type"`
			Event string          `json:"event"`
			Data  json.RawMessage `json:"data"`
			Error *proto.Error    `json:"error"`
		}
		if err := wsjson.Read(ctx, conn, &outbound); err != nil {
			t.Fatalf("read waiting for %s: %v", event, err)
		}
		if outbound.Type == proto.OutboundTypeError {
			t.Fatalf("unexpected error frame waiting for %s: %+v", event, outbound.Error)
		}
		if outbound.Event == event {
			return outbound.Data
		}
	}
}
