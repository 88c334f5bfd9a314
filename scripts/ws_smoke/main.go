package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/vovakirdan/driftroom-server/internal/proto"
)

func main() {
	if err := run(); err != nil {
		log.Printf("ws_smoke: %v", err)
		os.Exit(1)
	}
}

func run() error {
	base := flag.String("base", "http://localhost:3001", "server base URL")
	user := flag.String("user", "tester", "display name to join with")
	room := flag.String("room", "", "room id; created via the API when empty")
	text := flag.String("text", "hello from smoke test", "message text to send")
	emoji := flag.String("emoji", "", "reaction emoji (optional)")
	timeout := flag.Duration("timeout", 5*time.Second, "total timeout for the run")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	roomID := *room
	if roomID == "" {
		created, err := createRoom(ctx, *base)
		if err != nil {
			return err
		}
		roomID = created
		fmt.Printf("Created room %s\n", roomID)
	}

	wsURL := strings.Replace(*base, "http", "ws", 1) + "/ws"
	conn, _, err := websocket.Dial(ctx, wsURL, nil)
	if err != nil {
		return fmt.Errorf("dial: %w", err)
	}
	defer conn.Close(websocket.StatusNormalClosure, "bye")

	send := func(typ string, data any) error {
		payload, err := json.Marshal(data)
		if err != nil {
			return fmt.Errorf("marshal %s: %w", typ, err)
		}
		if err := wsjson.Write(ctx, conn, proto.Inbound{Type: typ, Data: payload}); err != nil {
			return fmt.Errorf("send %s: %w", typ, err)
		}
		return nil
	}

	if err := send(proto.InboundTypeJoinRoom, proto.JoinRoomData{RoomID: roomID, Username: *user}); err != nil {
		return err
	}
	if err := send(proto.InboundTypeSendMessage, proto.SendMessageData{Message: *text, Emoji: *emoji}); err != nil {
		return err
	}

	for {
		var outbound proto.Outbound
		if err := wsjson.Read(ctx, conn, &outbound); err != nil {
			return fmt.Errorf("read: %w", err)
		}

		fmt.Printf("Received outbound: type=%s", outbound.Type)
		if outbound.Event != "" {
			fmt.Printf(" event=%s", outbound.Event)
		}
		fmt.Println()

		if outbound.Error != nil {
			return fmt.Errorf("server error: %s (%s)", outbound.Error.Msg, outbound.Error.Code)
		}

		raw, err := json.Marshal(outbound.Data)
		if err != nil {
			return fmt.Errorf("marshal outbound data: %w", err)
		}

		switch outbound.Event {
		case proto.EventRoomJoined:
			var evt proto.RoomJoinedData
			if err := json.Unmarshal(raw, &evt); err == nil {
				fmt.Printf("Joined: room=%s users=%d\n", evt.RoomID, evt.UserCount)
			}
		case proto.EventPreviousMessages:
			var evt []proto.MessageData
			if err := json.Unmarshal(raw, &evt); err == nil {
				fmt.Printf("History: %d messages\n", len(evt))
			}
		case proto.EventNewMessage:
			var evt proto.MessageData
			if unmarshalErr := json.Unmarshal(raw, &evt); unmarshalErr != nil {
				fmt.Printf("Raw data: %s\n", string(raw))
				return fmt.Errorf("unmarshal message: %w", unmarshalErr)
			}
			fmt.Printf("Message: user=%s text=%q emoji=%s ts=%s\n", evt.Username, evt.Message, evt.Emoji, evt.Timestamp)
			return nil
		default:
			// keep looping for the message echo
		}
	}
}

func createRoom(ctx context.Context, base string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, base+"/api/create-room", nil)
	if err != nil {
		return "", fmt.Errorf("create room request: %w", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("create room: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("create room: unexpected status %d", resp.StatusCode)
	}

	var body struct {
		RoomID string `json:"roomId"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("decode create room response: %w", err)
	}
	return body.RoomID, nil
}
