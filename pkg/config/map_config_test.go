package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testMapYAML = `
width: 4
height: 3
tileSize: 64
tileLayers:
  - name: Farmable
    rows:
      - "..XX"
      - ".XX."
      - "...."
  - name: Water
    rows:
      - "W..."
      - "...."
      - "...."
objectLayers:
  - name: Trees
    objects:
      - {name: Small, x: 10, y: 20, width: 64, height: 96}
      - {name: Large, x: 100, y: 20, width: 128, height: 160}
  - name: Player
    objects:
      - {name: Start, x: 128, y: 128}
      - name: Bed
        x: 0
        y: 0
        width: 64
        height: 64
        properties:
          kind: double
`

func TestParseMapConfig(t *testing.T) {
	m, err := ParseMapConfig([]byte(testMapYAML))
	if err != nil {
		t.Fatalf("ParseMapConfig failed: %v", err)
	}

	cols, rows := m.Size()
	if cols != 4 || rows != 3 {
		t.Errorf("Size() = (%d, %d), want (4, 3)", cols, rows)
	}

	tiles, ok := m.TileLayer(LayerNameFarmable)
	if !ok {
		t.Fatal("Farmable layer not found")
	}
	want := []TilePlacement{
		{Col: 2, Row: 0, Visual: 'X'},
		{Col: 3, Row: 0, Visual: 'X'},
		{Col: 1, Row: 1, Visual: 'X'},
		{Col: 2, Row: 1, Visual: 'X'},
	}
	if len(tiles) != len(want) {
		t.Fatalf("expected %d tiles, got %d", len(want), len(tiles))
	}
	for i := range want {
		if tiles[i] != want[i] {
			t.Errorf("tile %d = %+v, want %+v", i, tiles[i], want[i])
		}
	}

	trees, ok := m.ObjectLayer(ObjectLayerTrees)
	if !ok || len(trees) != 2 {
		t.Fatalf("expected 2 trees, got %d (ok=%v)", len(trees), ok)
	}
	if trees[1].Name != "Large" || trees[1].Width != 128 {
		t.Errorf("unexpected tree: %+v", trees[1])
	}

	bed, ok := FindObject(m, ObjectLayerPlayer, MarkerBed)
	if !ok {
		t.Fatal("Bed marker not found")
	}
	if bed.Properties["kind"] != "double" {
		t.Errorf("expected bed property kind=double, got %v", bed.Properties)
	}

	if _, ok := m.TileLayer("Missing"); ok {
		t.Error("missing layer reported as present")
	}
}

func TestMapConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "尺寸为零",
			yaml:    "width: 0\nheight: 1\ntileSize: 64\n",
			wantErr: "map size",
		},
		{
			name:    "行数不一致",
			yaml:    "width: 2\nheight: 2\ntileSize: 64\ntileLayers:\n  - name: Ground\n    rows: [\"..\"]\n",
			wantErr: "has 1 rows",
		},
		{
			name:    "列数不一致",
			yaml:    "width: 2\nheight: 1\ntileSize: 64\ntileLayers:\n  - name: Ground\n    rows: [\"...\"]\n",
			wantErr: "has 3 columns",
		},
		{
			name:    "重复图层",
			yaml:    "width: 1\nheight: 1\ntileSize: 64\ntileLayers:\n  - name: Ground\n    rows: [\".\"]\n  - name: Ground\n    rows: [\".\"]\n",
			wantErr: "duplicate layer",
		},
		{
			name:    "对象缺少名称",
			yaml:    "width: 1\nheight: 1\ntileSize: 64\nobjectLayers:\n  - name: Trees\n    objects:\n      - {x: 1, y: 1}\n",
			wantErr: "has no name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseMapConfig([]byte(tt.yaml))
			if err == nil {
				t.Fatalf("expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestLoadMapConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "farm.yaml")
	if err := os.WriteFile(path, []byte(testMapYAML), 0644); err != nil {
		t.Fatalf("write temp map: %v", err)
	}
	m, err := LoadMapConfig(path)
	if err != nil {
		t.Fatalf("LoadMapConfig failed: %v", err)
	}
	if m.CellSize() != 64 {
		t.Errorf("CellSize() = %.1f, want 64", m.CellSize())
	}

	if _, err := LoadMapConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
