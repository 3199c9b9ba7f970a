package obsdb

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeOffsetFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "element_offsets.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCacheElemOffsets(t *testing.T) {
	path := writeOffsetFile(t, "element,offset\nTMAX,PT18H\nTMIN,PT6H\n")

	offsets, err := CacheElemOffsets(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(offsets) != 2 {
		t.Fatalf("Got %v offsets, wanted 2", len(offsets))
	}

	midnight := time.Date(1950, 4, 1, 0, 0, 0, 0, time.UTC)
	shifted, ok := offsets["TMAX"].AddTo(midnight)
	if !ok {
		t.Fatal("Offset should apply cleanly")
	}
	if shifted.Hour() != 18 {
		t.Errorf("Got hour %v, wanted 18", shifted.Hour())
	}
}

func TestCacheElemOffsetsEmptyPath(t *testing.T) {
	offsets, err := CacheElemOffsets("")
	if err != nil {
		t.Fatal(err)
	}
	if len(offsets) != 0 {
		t.Errorf("Got %v offsets, wanted none", len(offsets))
	}
}

func TestCacheElemOffsetsErrors(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"bad period", "element,offset\nTMAX,18hours\n"},
		{"missing columns", "element\nTMAX\n"},
	}

	for _, c := range cases {
		path := writeOffsetFile(t, c.content)
		if _, err := CacheElemOffsets(path); err == nil {
			t.Errorf("%s: expected an error", c.name)
		}
	}
}

func TestCacheElemOffsetsMissingFile(t *testing.T) {
	if _, err := CacheElemOffsets("does_not_exist.csv"); err == nil {
		t.Error("Expected an error for a nonexistent file")
	}
}
