package hud

import (
	"strings"
	"testing"
)

func TestStatusLines(t *testing.T) {
	s := Status{Wave: 2, Enemies: 7, Shots: 3, Lights: 5, ShotLights: true}
	lines := s.Lines()
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines without FPS, got %d: %q", len(lines), lines)
	}
	if lines[0] != "Wave 2  Enemies 7  Shots 3" {
		t.Errorf("Unexpected first line %q", lines[0])
	}
	if !strings.Contains(lines[1], "Shot lights on") {
		t.Errorf("Expected shot light state in %q", lines[1])
	}

	s.ShotLights = false
	s.FPS = 60
	lines = s.Lines()
	if len(lines) != 3 || lines[2] != "FPS 60" {
		t.Errorf("Expected FPS line, got %q", lines)
	}
	if !strings.Contains(lines[1], "Shot lights off") {
		t.Errorf("Expected shot lights off in %q", lines[1])
	}
}
