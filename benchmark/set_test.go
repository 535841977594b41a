package benchmark

import (
	"testing"
)

func TestNewSet(t *testing.T) {
	s := NewSet[int32](16)
	if s.Size() != 0 {
		t.Errorf("NewSet() error = %v, wantErr %v", s.Size(), 0)
	}
}

func TestNewSetNegativeCapacity(t *testing.T) {
	s := NewSet[int32](-1)
	if s.Size() != 0 {
		t.Errorf("NewSet() error = %v, wantErr %v", s.Size(), 0)
	}
}

func TestAdd(t *testing.T) {
	s := NewSet[string](0)
	if !s.Add("element") {
		t.Errorf("Add() error, first add reported duplicate")
	}
	if s.Add("element") {
		t.Errorf("Add() error, second add reported new element")
	}
	if !s.Contains("element") {
		t.Errorf("Add() error, element not found")
	}
}

func TestContains(t *testing.T) {
	s := NewSet[int32](0)
	s.Add(7)
	if !s.Contains(7) {
		t.Errorf("Contains() error, element not found")
	}
	if s.Contains(8) {
		t.Errorf("Contains() error, unexpected element found")
	}
}

func TestSize(t *testing.T) {
	s := NewSet[int32](0)
	s.Add(1)
	s.Add(2)
	s.Add(2)
	if s.Size() != 2 {
		t.Errorf("Size() error = %v, wantErr %v", s.Size(), 2)
	}
}
