package main

import (
	"strings"
	"testing"

	"github.com/kalexmills/cellgraph/internal"
)

func TestDispatchSetAndGet(t *testing.T) {
	sheet := internal.NewSheet()
	if err := dispatch(sheet, &strings.Builder{}, "set A1 2"); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if err := dispatch(sheet, &strings.Builder{}, "set A2 =A1+3"); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	var out strings.Builder
	if err := dispatch(sheet, &out, "get A2"); err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if !strings.Contains(out.String(), "value: 5") {
		t.Fatalf("unexpected get output: %q", out.String())
	}
}

func TestDispatchGetEmptyCell(t *testing.T) {
	sheet := internal.NewSheet()
	var out strings.Builder
	if err := dispatch(sheet, &out, "get Z9"); err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if strings.TrimSpace(out.String()) != "(empty)" {
		t.Fatalf("expected (empty), got %q", out.String())
	}
}

func TestDispatchUnknownCommand(t *testing.T) {
	sheet := internal.NewSheet()
	err := dispatch(sheet, &strings.Builder{}, "frobnicate A1")
	if err == nil {
		t.Fatalf("expected error for unknown command")
	}
}

func TestDispatchClear(t *testing.T) {
	sheet := internal.NewSheet()
	if err := dispatch(sheet, &strings.Builder{}, "set A1 x"); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if err := dispatch(sheet, &strings.Builder{}, "clear A1"); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	var out strings.Builder
	if err := dispatch(sheet, &out, "get A1"); err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if !strings.Contains(out.String(), "(empty)") {
		t.Fatalf("expected empty after clear, got %q", out.String())
	}
}

func TestDispatchPrint(t *testing.T) {
	sheet := internal.NewSheet()
	if err := dispatch(sheet, &strings.Builder{}, "set A1 hello"); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	var out strings.Builder
	if err := dispatch(sheet, &out, "print"); err != nil {
		t.Fatalf("print failed: %v", err)
	}
	if !strings.Contains(out.String(), "hello") {
		t.Fatalf("expected grid to contain hello, got %q", out.String())
	}
}
