package graphics

import (
	"errors"
	"testing"
)

func TestAttributePoolSmallestFree(t *testing.T) {
	p := NewAttributePool(3)
	for want := uint32(0); want < 3; want++ {
		got, err := p.Acquire()
		if err != nil {
			t.Fatalf("Acquire %d: %v", want, err)
		}
		if got != want {
			t.Errorf("Expected slot %d, got %d", want, got)
		}
	}

	if _, err := p.Acquire(); !errors.Is(err, ErrAttributesExhausted) {
		t.Fatalf("Expected exhaustion, got %v", err)
	}

	p.Release(1)
	p.Release(1)
	got, err := p.Acquire()
	if err != nil || got != 1 {
		t.Errorf("Expected freed slot 1 to be reused, got %d (%v)", got, err)
	}
	if len(p.InUse()) != 3 {
		t.Errorf("Expected 3 slots in use, got %v", p.InUse())
	}
}
