package utils

import "testing"

func TestWorldToTile(t *testing.T) {
	tests := []struct {
		name    string
		x, y    float64
		wantCol int
		wantRow int
	}{
		{"origin", 0, 0, 0, 0},
		{"inside first tile", 63.9, 10, 0, 0},
		{"tile boundary belongs to next tile", 64, 64, 1, 1},
		{"far tile", 640, 130, 10, 2},
		{"negative is not clamped", -1, -65, -1, -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			col, row := WorldToTile(tt.x, tt.y, 64)
			if col != tt.wantCol || row != tt.wantRow {
				t.Errorf("WorldToTile(%v, %v) = (%d, %d), want (%d, %d)",
					tt.x, tt.y, col, row, tt.wantCol, tt.wantRow)
			}
		})
	}
}

func TestTileRectRoundTrip(t *testing.T) {
	r := TileRect(3, 5, 64)
	if r.X != 192 || r.Y != 320 || r.W != 64 || r.H != 64 {
		t.Fatalf("unexpected tile rect %+v", r)
	}
	col, row := WorldToTile(r.CenterX(), r.CenterY(), 64)
	if col != 3 || row != 5 {
		t.Errorf("center maps back to (%d, %d), want (3, 5)", col, row)
	}
}

func TestTileInBounds(t *testing.T) {
	if !TileInBounds(0, 0, 4, 3) || !TileInBounds(3, 2, 4, 3) {
		t.Error("corner tiles should be in bounds")
	}
	if TileInBounds(4, 0, 4, 3) || TileInBounds(0, 3, 4, 3) || TileInBounds(-1, 0, 4, 3) {
		t.Error("out of range tiles should be rejected")
	}
}
