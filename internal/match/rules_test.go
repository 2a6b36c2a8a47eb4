package match

import (
	"errors"
	"strings"
	"testing"
)

func TestPresets_AreValid(t *testing.T) {
	for _, name := range PresetNames {
		r, err := Preset(name)
		if err != nil {
			t.Fatalf("preset %s: %v", name, err)
		}
		if err := r.Validate(); err != nil {
			t.Fatalf("preset %s invalid: %v", name, err)
		}
	}
	if _, err := Preset("tournament"); err == nil {
		t.Fatal("expected error for unknown preset")
	}
}

func TestPresets_CarryBothCollisionPolicies(t *testing.T) {
	if Classic().Collision != CollisionFace {
		t.Fatalf("classic should use face collisions, got %s", Classic().Collision)
	}
	if Versus().Collision != CollisionEdgeAware {
		t.Fatalf("versus should use edge-aware collisions, got %s", Versus().Collision)
	}
	if Versus().Right != ControllerComputer {
		t.Fatal("versus right paddle should be computer controlled")
	}
}

func TestValidate_RejectsBrokenRules(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Rules)
		want   string
	}{
		{"zero width", func(r *Rules) { r.Width = 0 }, "width must be > 0"},
		{"paddle taller than field", func(r *Rules) { r.PaddleHeight = 700 }, "paddle_height"},
		{"no win score", func(r *Rules) { r.WinScore = 0 }, "win_score"},
		{"shrinking rallies", func(r *Rules) { r.SpeedGain = 0.9 }, "speed_gain"},
		{"tunnelling cap", func(r *Rules) { r.MaxSpeed = 40 }, "pass through a paddle"},
		{"paddles overlap", func(r *Rules) { r.PaddleInset = 390 }, "paddle_inset"},
		{"edge-aware without tolerance", func(r *Rules) {
			r.Collision = CollisionEdgeAware
			r.EdgeTolerance = 0
		}, "edge_tolerance"},
		{"vertical serve", func(r *Rules) { r.ServeAngle = 2 }, "serve_angle"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := Classic()
			tc.mutate(&r)
			err := r.Validate()
			if !errors.Is(err, ErrInvalidRules) {
				t.Fatalf("expected ErrInvalidRules, got %v", err)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected %q in %q", tc.want, err.Error())
			}
		})
	}
}

func TestPolicyNames_ParseCaseInsensitively(t *testing.T) {
	var c CollisionPolicy
	if err := c.UnmarshalText([]byte("Edge-Aware")); err != nil || c != CollisionEdgeAware {
		t.Fatalf("collision: got %s, %v", c, err)
	}
	var s ServePolicy
	if err := s.UnmarshalText([]byte("reverse")); err != nil || s != ServeReverse {
		t.Fatalf("serve: got %s, %v", s, err)
	}
	var ctl Controller
	if err := ctl.UnmarshalText([]byte("COMPUTER")); err != nil || ctl != ControllerComputer {
		t.Fatalf("controller: got %s, %v", ctl, err)
	}
	if err := ctl.UnmarshalText([]byte("robot")); err == nil {
		t.Fatal("expected error for unknown controller")
	}
	b, err := CollisionEdgeAware.MarshalText()
	if err != nil || string(b) != "edge-aware" {
		t.Fatalf("marshal: got %q, %v", b, err)
	}
}
