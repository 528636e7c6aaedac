package header

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

const testAPIVersion = "crxcheck.antiprint.io/v1alpha1"

func TestKind_String(t *testing.T) {
	if got := KindVersionCheckResult.String(); got != "VersionCheckResult" {
		t.Errorf("Kind.String() = %v", got)
	}
}

func TestKind_IsValid(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		want bool
	}{
		{name: "version check result is valid", kind: KindVersionCheckResult, want: true},
		{name: "empty kind is invalid", kind: Kind(""), want: false},
		{name: "unknown kind is invalid", kind: Kind("Recipe"), want: false},
		{name: "case sensitive", kind: Kind("versioncheckresult"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.kind.IsValid(); got != tt.want {
				t.Errorf("Kind.IsValid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHeader_Init(t *testing.T) {
	var h Header
	h.Init(KindVersionCheckResult, testAPIVersion, "v1.0.0")

	if h.Kind != KindVersionCheckResult {
		t.Errorf("Kind = %v", h.Kind)
	}
	if h.APIVersion != testAPIVersion {
		t.Errorf("APIVersion = %v", h.APIVersion)
	}
	if h.Metadata[MetadataVersion] != "v1.0.0" {
		t.Errorf("version metadata = %q", h.Metadata[MetadataVersion])
	}
	if _, err := time.Parse(time.RFC3339, h.Metadata[MetadataTimestamp]); err != nil {
		t.Errorf("timestamp not RFC3339: %v", err)
	}
	if _, err := uuid.Parse(h.Metadata[MetadataRunID]); err != nil {
		t.Errorf("runID not a UUID: %v", err)
	}
}

func TestHeader_InitResetsMetadata(t *testing.T) {
	h := Header{Metadata: map[string]string{"stale": "x"}}
	h.Init(KindVersionCheckResult, testAPIVersion, "")

	if _, ok := h.Metadata["stale"]; ok {
		t.Error("expected stale metadata to be cleared")
	}
	if _, ok := h.Metadata[MetadataVersion]; ok {
		t.Error("expected no version key for empty version")
	}

	first := h.Metadata[MetadataRunID]
	h.Init(KindVersionCheckResult, testAPIVersion, "")
	if h.Metadata[MetadataRunID] == first {
		t.Error("expected a new runID on each Init")
	}
}
