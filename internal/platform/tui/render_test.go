package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/calma/internal/core"
)

func TestPointerCell(t *testing.T) {
	tests := []struct {
		name  string
		p     core.Pointer
		wantX int
		wantY int
	}{
		{"invalid", core.Pointer{X: 50, Y: 50}, -1, -1},
		{"centre", core.Pointer{X: 50, Y: 50, Valid: true}, 10, 5},
		{"origin", core.Pointer{X: 0, Y: 0, Valid: true}, 0, 0},
		{"far edge clamps", core.Pointer{X: 100, Y: 100, Valid: true}, 19, 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := pointerCell(tt.p, 20, 10)
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("pointerCell = (%d, %d), want (%d, %d)", x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestPointerCellMatchesMouse(t *testing.T) {
	for col := range 80 {
		p := PointerFromMouse(tea.MouseMsg{X: col, Y: 3, Action: tea.MouseActionMotion}, 80, 24, core.Pointer{})
		if x, y := pointerCell(p, 80, 24); x != col || y != 3 {
			t.Fatalf("column %d maps back to (%d, %d)", col, x, y)
		}
	}
}

func TestSpans(t *testing.T) {
	s := core.NewScreen(10, 3)
	s.DrawTextColored(0, 0, "CATCH", core.ColorBrightWhite)
	s.DrawTextColored(7, 0, "1/4", core.ColorBrightYellow)
	s.DrawTextColored(2, 2, "vaca", core.ColorBrown)

	rows := spans(s, core.Pointer{X: 45, Y: 90, Valid: true})

	for i, sp := range rows[0] {
		if !sp.hud {
			t.Errorf("top row span %d not marked as HUD", i)
		}
	}
	if rows[0][0].text != "CATCH" || rows[0][0].color != core.ColorBrightWhite {
		t.Errorf("first HUD span = %+v", rows[0][0])
	}
	for _, sp := range rows[1] {
		if sp.hud || sp.pointer {
			t.Errorf("middle row span %+v", sp)
		}
	}

	// Row 2: "  va" "c" "a" with the pointer on column 4.
	var texts []string
	for _, sp := range rows[2] {
		texts = append(texts, sp.text)
	}
	want := []string{"  ", "va", "c", "a", "    "}
	if strings.Join(texts, "|") != strings.Join(want, "|") {
		t.Fatalf("row 2 spans = %q, want %q", texts, want)
	}
	if !rows[2][2].pointer || rows[2][2].color != core.ColorBrown {
		t.Errorf("pointer span = %+v", rows[2][2])
	}

	var line strings.Builder
	for _, sp := range rows[2] {
		line.WriteString(sp.text)
	}
	if line.String() != "  vaca    " {
		t.Errorf("row text = %q", line.String())
	}
}

func TestRenderFrameKeepsText(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.DrawTextColored(1, 0, "PUZZLE", core.ColorBrightWhite)
	s.DrawTextColored(0, 1, "oveja", core.ColorWhite)

	out := RenderFrame(s, core.Pointer{X: 10, Y: 75, Valid: true, Down: true})
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(lines))
	}
	if !strings.Contains(out, "PUZZLE") {
		t.Error("HUD text lost")
	}
	// The pointer splits "oveja" after "o"; the letters survive styling.
	for _, part := range []string{"o", "v", "eja"} {
		if !strings.Contains(lines[1], part) {
			t.Errorf("row 1 %q lost %q", lines[1], part)
		}
	}
}
