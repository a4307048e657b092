package redis

import (
	"testing"
)

func TestParseMemoryInfo(t *testing.T) {
	raw := "# Memory\r\n" +
		"used_memory:1048576\r\n" +
		"used_memory_human:1.00M\r\n" +
		"used_memory_rss:2097152\r\n" +
		"used_memory_peak:4194304\r\n" +
		"maxmemory:0\r\n" +
		"mem_fragmentation_ratio:1.25\r\n"

	info := parseMemoryInfo(raw)

	if info.UsedMemory != 1048576 {
		t.Errorf("UsedMemory = %d, want 1048576", info.UsedMemory)
	}
	if info.UsedMemoryHuman != "1.00M" {
		t.Errorf("UsedMemoryHuman = %q, want %q", info.UsedMemoryHuman, "1.00M")
	}
	if info.UsedMemoryPeak != 4194304 {
		t.Errorf("UsedMemoryPeak = %d, want 4194304", info.UsedMemoryPeak)
	}
	if info.MaxMemory != 0 {
		t.Errorf("MaxMemory = %d, want 0", info.MaxMemory)
	}
	if info.FragmentationRatio != 1.25 {
		t.Errorf("FragmentationRatio = %v, want 1.25", info.FragmentationRatio)
	}
}

func TestParseMemoryInfoTolerance(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty input", ""},
		{"comments only", "# Memory\r\n# more\r\n"},
		{"malformed line without separator", "used_memory\r\n"},
		{"malformed numeric value", "used_memory:not-a-number\r\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := parseMemoryInfo(tt.raw)
			if info == nil {
				t.Fatal("parseMemoryInfo returned nil")
			}
			if info.UsedMemory != 0 {
				t.Errorf("UsedMemory = %d, want 0", info.UsedMemory)
			}
		})
	}
}

func TestNewClientDefaultsToLocalhost(t *testing.T) {
	client, err := NewClient("", "", "", 0)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	defer client.Close()

	if got := client.Options().Addr; got != "localhost:6379" {
		t.Errorf("Addr = %q, want localhost:6379", got)
	}
}

func TestNewClientRejectsBadURL(t *testing.T) {
	if _, err := NewClient("://not-a-url", "", "", 0); err == nil {
		t.Fatal("expected error for malformed url")
	}
}

func TestNewClientPrefersURL(t *testing.T) {
	client, err := NewClient("redis://localhost:6380/2", "localhost:6379", "", 0)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	defer client.Close()

	if got := client.Options().Addr; got != "localhost:6380" {
		t.Errorf("Addr = %q, want %q", got, "localhost:6380")
	}
	if got := client.Options().DB; got != 2 {
		t.Errorf("DB = %d, want 2", got)
	}
}
