package core

import "testing"

func TestEntryPool(t *testing.T) {
	e1 := GetEntry()
	if e1 == nil {
		t.Fatal("GetEntry() returned nil")
	}
	if len(e1.Fields) != 0 {
		t.Errorf("Expected empty fields, got %d", len(e1.Fields))
	}

	e1.Logger = "svc"
	e1.Message = "test"
	e1.Fields = append(e1.Fields, Field{Key: "test", Str: "value"})

	PutEntry(e1)

	e2 := GetEntry()
	if e2 == nil {
		t.Fatal("GetEntry() returned nil after PutEntry()")
	}
	if e2.Logger != "" {
		t.Errorf("Expected empty logger name after pool reset, got %q", e2.Logger)
	}
	if e2.Message != "" {
		t.Errorf("Expected empty message after pool reset, got %q", e2.Message)
	}
	if len(e2.Fields) != 0 {
		t.Errorf("Expected empty fields after pool reset, got %d", len(e2.Fields))
	}
}

func TestPutEntryNil(t *testing.T) {
	// Must not panic
	PutEntry(nil)
}

func TestGetCaller(t *testing.T) {
	caller := GetCaller(0)
	if !caller.Defined {
		t.Fatal("GetCaller() returned undefined CallerInfo")
	}
	if caller.File == "" {
		t.Error("Expected non-empty file")
	}
	if caller.ShortFile == "" {
		t.Error("Expected non-empty short file")
	}
	if caller.Line == 0 {
		t.Error("Expected non-zero line number")
	}
	if caller.Function == "" {
		t.Error("Expected non-empty function name")
	}
}

func BenchmarkGetEntry(b *testing.B) {
	for i := 0; i < b.N; i++ {
		e := GetEntry()
		PutEntry(e)
	}
}
