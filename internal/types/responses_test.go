package types

import (
	"strings"
	"testing"

	"github.com/Saadoxyz/safepass-go/visitor"
)

func TestDecodeEnvelope_Bare(t *testing.T) {
	t.Parallel()
	var v visitor.Visitor
	body := `{"id":"v1","name":"Asim","status":"pending"}`
	if err := DecodeEnvelope(strings.NewReader(body), &v); err != nil {
		t.Fatalf("DecodeEnvelope: %v", err)
	}
	if v.ID != "v1" || v.Status != visitor.StatusPending {
		t.Fatalf("unexpected record: %+v", v)
	}
}

func TestDecodeEnvelope_Wrapped(t *testing.T) {
	t.Parallel()
	var v visitor.Visitor
	body := `{"data":{"id":"v2","name":"Sana","status":"approved"}}`
	if err := DecodeEnvelope(strings.NewReader(body), &v); err != nil {
		t.Fatalf("DecodeEnvelope: %v", err)
	}
	if v.ID != "v2" || v.Status != visitor.StatusApproved {
		t.Fatalf("unexpected record: %+v", v)
	}
}

func TestDecodeEnvelope_WrappedList(t *testing.T) {
	t.Parallel()
	var vs []visitor.Visitor
	body := `{"data":[{"id":"a"},{"id":"b"}]}`
	if err := DecodeEnvelope(strings.NewReader(body), &vs); err != nil {
		t.Fatalf("DecodeEnvelope: %v", err)
	}
	if len(vs) != 2 || vs[0].ID != "a" {
		t.Fatalf("unexpected list: %+v", vs)
	}
}

func TestDecodeEnvelope_BareList(t *testing.T) {
	t.Parallel()
	var vs []visitor.Visitor
	body := `[{"id":"a"}]`
	if err := DecodeEnvelope(strings.NewReader(body), &vs); err != nil {
		t.Fatalf("DecodeEnvelope: %v", err)
	}
	if len(vs) != 1 {
		t.Fatalf("unexpected list: %+v", vs)
	}
}

func TestDecodeEnvelope_NullData(t *testing.T) {
	t.Parallel()
	var m MessageResponse
	body := `{"data":null,"message":"ok"}`
	if err := DecodeEnvelope(strings.NewReader(body), &m); err != nil {
		t.Fatalf("DecodeEnvelope: %v", err)
	}
	if m.Message != "ok" {
		t.Fatalf("null data must fall through to the bare payload, got %+v", m)
	}
}

func TestDecodeEnvelope_Malformed(t *testing.T) {
	t.Parallel()
	var v visitor.Visitor
	if err := DecodeEnvelope(strings.NewReader("not json"), &v); err == nil {
		t.Fatal("expected decode error")
	}
}
