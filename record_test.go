package replica_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/zoobzio/replica"
)

// personRecord is a fixed-shape aggregate: exported components in
// declaration order, rebuilt through the canonical constructor.
type personRecord struct {
	Name string
	Age  int
}

func newPersonRecord(name string, age int) personRecord {
	return personRecord{Name: name, Age: age}
}

// taggedRecord carries a mutable component; the canonical constructor
// receives it already deep-copied.
type taggedRecord struct {
	Name string
	Tags []string
}

func newTaggedRecord(name string, tags []string) taggedRecord {
	return taggedRecord{Name: name, Tags: tags}
}

// brokenRecord's canonical constructor rejects every input.
type brokenRecord struct {
	Name string
}

func newBrokenRecord(name string) (brokenRecord, error) {
	return brokenRecord{}, errors.New("rejected")
}

func TestCopy_Record(t *testing.T) {
	if err := replica.RegisterRecord[personRecord](newPersonRecord); err != nil {
		t.Fatalf("RegisterRecord: %v", err)
	}

	original := personRecord{Name: "John", Age: 30}
	copied, err := replica.Copy(&original)
	if err != nil {
		t.Fatalf("Copy() error = %v", err)
	}

	if copied == &original {
		t.Error("Copy() should return a new instance")
	}
	if copied.Name != original.Name || copied.Age != original.Age {
		t.Errorf("Copy() = %+v, want %+v", *copied, original)
	}
}

func TestCopy_RecordMutableComponent(t *testing.T) {
	if err := replica.RegisterRecord[taggedRecord](newTaggedRecord); err != nil {
		t.Fatalf("RegisterRecord: %v", err)
	}

	original := taggedRecord{Name: "release", Tags: []string{"tag1", "tag2"}}
	copied, err := replica.Copy(original)
	if err != nil {
		t.Fatalf("Copy() error = %v", err)
	}

	copied.Tags[0] = "changed"
	if original.Tags[0] != "tag1" {
		t.Error("record component shares its slice with the original")
	}
}

func TestCopy_RecordReconstructionFailure(t *testing.T) {
	if err := replica.RegisterRecord[brokenRecord](newBrokenRecord); err != nil {
		t.Fatalf("RegisterRecord: %v", err)
	}

	_, err := replica.Copy(brokenRecord{Name: "x"})
	if err == nil {
		t.Fatal("Copy() should surface the reconstruction failure")
	}
	if !errors.Is(err, replica.ErrRecord) {
		t.Errorf("Copy() error = %v, want ErrRecord", err)
	}
	if !strings.Contains(err.Error(), "failed to deep copy record of type") {
		t.Errorf("error %q should carry the record failure message", err.Error())
	}
	if !strings.Contains(err.Error(), "brokenRecord") {
		t.Errorf("error %q should name the type", err.Error())
	}
}
