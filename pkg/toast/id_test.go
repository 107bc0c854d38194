package toast

import (
	"testing"

	"github.com/google/uuid"
	"github.com/segmentio/ksuid"
)

func TestIDGeneratorFor(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
		check   func(string) error
	}{
		{format: "", check: func(id string) error { _, err := uuid.Parse(id); return err }},
		{format: "uuid", check: func(id string) error { _, err := uuid.Parse(id); return err }},
		{format: "ksuid", check: func(id string) error { _, err := ksuid.Parse(id); return err }},
		{format: "snowflake", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			gen, err := IDGeneratorFor(tt.format)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("IDGeneratorFor(%q) error = %v", tt.format, err)
			}
			id := gen.NewID()
			if err := tt.check(id); err != nil {
				t.Errorf("NewID() = %q: %v", id, err)
			}
			if gen.NewID() == id {
				t.Error("two calls returned the same id")
			}
		})
	}
}

func TestSeverity(t *testing.T) {
	if !SeverityError.Valid() || Severity("warning").Valid() {
		t.Error("Valid() mismatch")
	}
	if got := ParseSeverity("  Success "); got != SeveritySuccess {
		t.Errorf("ParseSeverity = %q", got)
	}
	if got := Severity("nope").Normalize(); got != SeverityInfo {
		t.Errorf("Normalize = %q, want info", got)
	}
}

func TestMessageHasDescription(t *testing.T) {
	if (Message{}).HasDescription() {
		t.Error("empty description should report false")
	}
	if !(Message{Description: "x"}).HasDescription() {
		t.Error("non-empty description should report true")
	}
}
