package parser

import "testing"

func TestParseCellRef(t *testing.T) {
	tests := []struct {
		ref     string
		col     int
		row     int
		wantErr bool
	}{
		{"C2", 3, 2, false},
		{"$C$2", 3, 2, false},
		{" c2 ", 3, 2, false},
		{"AA10", 27, 10, false},
		{"", 0, 0, true},
		{"C2:D4", 0, 0, true},
		{"2C", 0, 0, true},
	}

	for _, tt := range tests {
		col, row, err := ParseCellRef(tt.ref)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseCellRef(%q) error = %v, wantErr %v", tt.ref, err, tt.wantErr)
			continue
		}
		if tt.wantErr {
			continue
		}
		if col != tt.col || row != tt.row {
			t.Errorf("ParseCellRef(%q) = (%d, %d), expected (%d, %d)", tt.ref, col, row, tt.col, tt.row)
		}
	}
}

func TestNormalizeCellRef(t *testing.T) {
	name, err := NormalizeCellRef("$c$2")
	if err != nil {
		t.Fatalf("NormalizeCellRef failed: %v", err)
	}
	if name != "C2" {
		t.Errorf("NormalizeCellRef($c$2) = %q, expected C2", name)
	}
}
