package bson

import (
	"reflect"
	"testing"
)

type profile struct {
	ID   string `bson:"id"`
	Name string `bson:"name"`
}

func TestNew(t *testing.T) {
	c := New()
	if c == nil {
		t.Error("New() should return non-nil codec")
	}
}

func TestContentType(t *testing.T) {
	c := New()
	if c.ContentType() != "application/bson" {
		t.Errorf("ContentType() = %q, want %q", c.ContentType(), "application/bson")
	}
}

func TestRoundTrip(t *testing.T) {
	c := New()
	original := profile{ID: "1", Name: "original"}

	data, err := c.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var decoded profile
	if err := c.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if !reflect.DeepEqual(original, decoded) {
		t.Errorf("round trip = %+v, want %+v", decoded, original)
	}
}
