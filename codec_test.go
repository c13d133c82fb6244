package replica

import (
	"reflect"
	"testing"
)

func TestMessagePack_ContentType(t *testing.T) {
	c := MessagePack()
	if c.ContentType() != "application/msgpack" {
		t.Errorf("ContentType() = %q, want %q", c.ContentType(), "application/msgpack")
	}
}

func TestMessagePack_RoundTrip(t *testing.T) {
	type sample struct {
		Name   string
		Count  int
		Labels map[string]int
	}

	c := MessagePack()
	original := sample{Name: "original", Count: 42, Labels: map[string]int{"one": 1}}

	data, err := c.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var decoded sample
	if err := c.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if !reflect.DeepEqual(original, decoded) {
		t.Errorf("round trip = %+v, want %+v", decoded, original)
	}
}
