package notify

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

type fakeRedis struct {
	channel string
	payload []byte
	err     error
	closed  bool
}

func (f *fakeRedis) Publish(ctx context.Context, channel string, message any) *redis.IntCmd {
	f.channel = channel
	f.payload, _ = message.([]byte)
	return redis.NewIntResult(1, f.err)
}

func (f *fakeRedis) Close() error {
	f.closed = true
	return nil
}

func TestRedisPublish(t *testing.T) {
	fake := &fakeRedis{}
	p := newRedis(fake, "")

	if p.Channel() != DefaultChannel {
		t.Fatalf("Channel() = %q, want %q", p.Channel(), DefaultChannel)
	}

	ev := Event{
		Session:  "s1",
		Version:  3,
		Intent:   "place",
		WidgetID: "sales-1",
		Surface:  []string{"sales-1", "metrics-2"},
		At:       time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	if err := p.Publish(context.Background(), ev); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}
	if fake.channel != DefaultChannel {
		t.Errorf("published on %q, want %q", fake.channel, DefaultChannel)
	}

	var got Event
	if err := json.Unmarshal(fake.payload, &got); err != nil {
		t.Fatalf("payload is not JSON: %v", err)
	}
	if got.Version != 3 || got.WidgetID != "sales-1" || len(got.Surface) != 2 {
		t.Errorf("decoded event = %+v", got)
	}
}

func TestRedisPublishError(t *testing.T) {
	fake := &fakeRedis{err: errors.New("connection refused")}
	p := newRedis(fake, "custom")

	err := p.Publish(context.Background(), Event{Intent: "remove"})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "custom") {
		t.Errorf("error %q should name the channel", err)
	}
}

func TestRedisClose(t *testing.T) {
	fake := &fakeRedis{}
	if err := newRedis(fake, "c").Close(); err != nil {
		t.Fatal(err)
	}
	if !fake.closed {
		t.Error("Close() should close the client")
	}
}

func TestNullPublisher(t *testing.T) {
	p := NewNull()
	if err := p.Publish(context.Background(), Event{}); err != nil {
		t.Errorf("Publish() error = %v", err)
	}
	if err := p.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}
