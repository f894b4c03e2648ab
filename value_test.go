package vktor_test

import (
	"testing"

	"github.com/shevron/vktor"
)

func TestValueAccessors_WrongKind(t *testing.T) {
	p := vktor.New(4)
	if err := p.Feed([]byte(`true`), true); err != nil {
		t.Fatal(err)
	}
	if _, err := p.Next(); err != nil {
		t.Fatal(err)
	}
	if p.Token() != vktor.True {
		t.Fatalf("got %s, want true", p.Token())
	}
	if _, err := p.Int(); err == nil {
		t.Error("Int() on a bool token: expected NoValue error")
	} else if pe, ok := err.(*vktor.ParseError); !ok || pe.Kind != vktor.NoValue {
		t.Errorf("got %v, want NoValue", err)
	}
	if _, err := p.String(); err == nil {
		t.Error("String() on a bool token: expected NoValue error")
	}
}

func TestValueAccessors_FloatFromInteger(t *testing.T) {
	p := vktor.New(4)
	if err := p.Feed([]byte(`7`), true); err != nil {
		t.Fatal(err)
	}
	if _, err := p.Next(); err != nil {
		t.Fatal(err)
	}
	f, err := p.Float()
	if err != nil {
		t.Fatalf("Float() on an integer token: %v", err)
	}
	if f != 7.0 {
		t.Errorf("got %v, want 7.0", f)
	}
}

func TestValueAccessors_ObjectKeyAsString(t *testing.T) {
	p := vktor.New(4)
	if err := p.Feed([]byte(`{"k":1}`), true); err != nil {
		t.Fatal(err)
	}
	if _, err := p.Next(); err != nil { // ObjectStart
		t.Fatal(err)
	}
	if _, err := p.Next(); err != nil { // ObjectKey
		t.Fatal(err)
	}
	if p.Token() != vktor.ObjectKey {
		t.Fatalf("got %s, want ObjectKey", p.Token())
	}
	s, err := p.String()
	if err != nil || s != "k" {
		t.Fatalf("String() = %q, %v; want \"k\", nil", s, err)
	}
}
