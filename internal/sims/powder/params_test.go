package powder

import "testing"

func TestParametersSnapshot(t *testing.T) {
	w := New(4, 4)
	snap := w.Parameters()
	if len(snap.Groups) != 1 {
		t.Fatalf("groups = %d, want 1", len(snap.Groups))
	}
	keys := map[string]bool{}
	for _, p := range snap.Groups[0].Params {
		keys[p.Key] = true
	}
	for _, want := range []string{"fire_ignite_chance", "lava_cool_ticks", "actor_sight"} {
		if !keys[want] {
			t.Fatalf("snapshot missing %q", want)
		}
	}
}

func TestSetIntParameter(t *testing.T) {
	w := New(4, 4)
	if !w.SetIntParameter("fire_ignite_chance", 70) {
		t.Fatal("known key rejected")
	}
	if got := w.cfg.Params.FireIgniteChance; got != 70 {
		t.Fatalf("fire ignite chance = %d, want 70", got)
	}
	if w.SetIntParameter("does_not_exist", 1) {
		t.Fatal("unknown key accepted")
	}
}

func TestSetIntParameterClamps(t *testing.T) {
	w := New(4, 4)
	w.SetIntParameter("fire_ignite_chance", 150)
	if got := w.cfg.Params.FireIgniteChance; got != 100 {
		t.Fatalf("over-max chance = %d, want clamp to 100", got)
	}
	w.SetIntParameter("lava_cool_ticks", -10)
	if got := w.cfg.Params.LavaCoolTicks; got != 0 {
		t.Fatalf("negative ticks = %d, want clamp to 0", got)
	}
	if len(w.ParameterControls()) == 0 {
		t.Fatal("controls list should not be empty")
	}
}
