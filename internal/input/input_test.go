package input_test

import (
	"testing"

	"shadow-demo/internal/input"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func TestJustPressedIsEdgeTriggered(t *testing.T) {
	im := input.NewInputManager()

	im.HandleKeyEvent(glfw.KeyH, glfw.Press)
	if !im.JustPressed(input.ActionToggleShotLight) {
		t.Fatalf("Expected JustPressed after press")
	}
	im.PostUpdate()

	// Held and repeating: no new edge.
	im.HandleKeyEvent(glfw.KeyH, glfw.Repeat)
	if im.JustPressed(input.ActionToggleShotLight) {
		t.Errorf("Repeat must not produce a new press edge")
	}
	if !im.IsActive(input.ActionToggleShotLight) {
		t.Errorf("Expected action to stay active while held")
	}

	im.HandleKeyEvent(glfw.KeyH, glfw.Release)
	if !im.JustReleased(input.ActionToggleShotLight) {
		t.Errorf("Expected JustReleased after release")
	}
	im.PostUpdate()
	if im.IsActive(input.ActionToggleShotLight) || im.JustReleased(input.ActionToggleShotLight) {
		t.Errorf("Expected clean state after release frame")
	}
}

func TestAlternateBindings(t *testing.T) {
	im := input.NewInputManager()

	im.HandleKeyEvent(glfw.KeyLeft, glfw.Press)
	if !im.IsActive(input.ActionMoveLeft) {
		t.Errorf("Expected left arrow to move left")
	}
	im.HandleMouseButtonEvent(glfw.MouseButtonLeft, glfw.Press)
	if !im.JustPressed(input.ActionFire) {
		t.Errorf("Expected mouse button to fire")
	}

	im.UnbindKey(glfw.KeyLeft)
	im.HandleKeyEvent(glfw.KeyLeft, glfw.Release)
	if !im.IsActive(input.ActionMoveLeft) {
		t.Errorf("Unbound key must not change action state")
	}
}

func TestOutOfRangeAction(t *testing.T) {
	im := input.NewInputManager()
	im.BindKey(glfw.KeyZ, input.ActionCount)
	im.HandleKeyEvent(glfw.KeyZ, glfw.Press)

	if im.IsActive(input.ActionCount) || im.JustPressed(-1) {
		t.Errorf("Out of range actions must never be active")
	}
	if got := input.ActionCount.String(); got != "Unknown" {
		t.Errorf("Expected Unknown, got %q", got)
	}
}
