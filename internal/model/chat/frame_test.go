package chat

import (
	"errors"
	"testing"
)

func TestDecodeChatFrame(t *testing.T) {
	frame, err := DecodeFrame([]byte(`{"type":"chat","sessionId":"s1","content":"hi"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if frame.Kind != KindChat {
		t.Fatalf("expected kind chat, got %s", frame.Kind)
	}
	if frame.SessionID != "s1" {
		t.Fatalf("expected session s1, got %s", frame.SessionID)
	}
	if frame.Chat == nil || frame.Chat.Content != "hi" {
		t.Fatalf("expected chat content hi, got %+v", frame.Chat)
	}
	if frame.Subscribe != nil {
		t.Fatalf("subscribe payload should be nil for a chat frame")
	}
}

func TestDecodeSubscribeFrame(t *testing.T) {
	frame, err := DecodeFrame([]byte(`{"type":"subscribe","sessionId":"s1","channel":"alerts"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if frame.Kind != KindSubscribe {
		t.Fatalf("expected kind subscribe, got %s", frame.Kind)
	}
	if frame.Subscribe == nil || frame.Subscribe.Channel != "alerts" {
		t.Fatalf("expected channel alerts, got %+v", frame.Subscribe)
	}
}

func TestDecodeMalformedFrame(t *testing.T) {
	_, err := DecodeFrame([]byte(`{not json`))
	if !errors.Is(err, ErrMalformedFrame) {
		t.Fatalf("expected ErrMalformedFrame, got %v", err)
	}
}

func TestDecodeUnknownKind(t *testing.T) {
	_, err := DecodeFrame([]byte(`{"type":"presence","sessionId":"s1"}`))
	if !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
}

func TestDecodeMissingKind(t *testing.T) {
	_, err := DecodeFrame([]byte(`{"sessionId":"s1","content":"hi"}`))
	if !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind for missing type, got %v", err)
	}
}
