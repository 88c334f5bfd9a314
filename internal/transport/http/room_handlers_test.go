package http

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"
)

func TestHealthEndpoint(t *testing.T) {
	ts, _ := startTestServer(t, time.Minute)

	resp, err := ts.Client().Get(ts.URL + "/health")
	if err != nil {
		t.Fatalf("health request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}
}

func TestCreateRoom(t *testing.T) {
	ts, registry := startTestServer(t, time.Minute)

	resp, err := ts.Client().Post(ts.URL+"/api/create-room", "application/json", nil)
	if err != nil {
		t.Fatalf("create room request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}

	var created CreateRoomResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(created.RoomID) != 8 {
		t.Fatalf("expected 8-char room id, got %q", created.RoomID)
	}

	if _, ok := registry.Stats(created.RoomID); !ok {
		t.Fatal("created room missing from registry")
	}
}

func TestGetRoom(t *testing.T) {
	ts, registry := startTestServer(t, time.Minute)

	roomID := registry.CreateRoom()

	resp, err := ts.Client().Get(ts.URL + "/api/room/" + roomID)
	if err != nil {
		t.Fatalf("get room request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}

	var info RoomInfoResponse
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !info.Exists || info.UserCount != 0 || info.MessageCount != 0 {
		t.Fatalf("unexpected room info: %+v", info)
	}
}

func TestGetRoomNotFound(t *testing.T) {
	ts, _ := startTestServer(t, time.Minute)

	resp, err := ts.Client().Get(ts.URL + "/api/room/nope1234")
	if err != nil {
		t.Fatalf("get room request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err != nil {
		t.Fatalf("failed to decode error body %q: %v", body, err)
	}
	if errResp.Error != "Room not found" {
		t.Fatalf("unexpected error message: %q", errResp.Error)
	}
}
