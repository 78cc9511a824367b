package domain

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

func TestDiff(t *testing.T) {
	root := Position{ID: 0, Name: "root", Kind: KindNode}
	settings := Position{ID: 1, Name: "settings", Kind: KindNode}
	audio := Position{ID: 2, Name: "audio", Kind: KindNode}

	tests := []struct {
		name     string
		old      *State
		new      *State
		wantDiff *StateDiff // nil means no diff
	}{
		{
			name: "Initial Load (Old is Nil)",
			old:  nil,
			new:  &State{Current: root, History: []Position{}},
			wantDiff: &StateDiff{
				Current: &root,
			},
		},
		{
			name:     "No Changes",
			old:      &State{Current: settings, History: []Position{root}},
			new:      &State{Current: settings, History: []Position{root}},
			wantDiff: nil,
		},
		{
			name: "Forward Move",
			old:  &State{Current: root, History: []Position{}},
			new:  &State{Current: settings, History: []Position{root}},
			wantDiff: &StateDiff{
				Current: &settings,
				Pushed:  []Position{root},
			},
		},
		{
			name: "Back Move",
			old:  &State{Current: audio, History: []Position{root, settings}},
			new:  &State{Current: settings, History: []Position{root}},
			wantDiff: &StateDiff{
				Current: &settings,
				Popped:  1,
			},
		},
		{
			name: "Re-entering Node",
			old:  &State{Current: root, History: []Position{}},
			new:  &State{Current: root, History: []Position{root}},
			wantDiff: &StateDiff{
				Pushed: []Position{root},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Diff(tt.old, tt.new)
			if !reflect.DeepEqual(got, tt.wantDiff) {
				gotJSON, _ := json.Marshal(got)
				wantJSON, _ := json.Marshal(tt.wantDiff)
				t.Errorf("Diff() mismatch\ngot:  %s\nwant: %s", gotJSON, wantJSON)
			}
		})
	}
}

func TestDiff_JSONShape(t *testing.T) {
	settings := Position{ID: 1, Name: "settings", Kind: KindNode}
	d := &StateDiff{Current: &settings}

	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	s := string(b)
	if !strings.Contains(s, `"kind":"node"`) {
		t.Errorf("expected kind to be encoded as text, got %s", s)
	}
	if strings.Contains(s, "pushed") || strings.Contains(s, "popped") {
		t.Errorf("expected empty fields to be omitted, got %s", s)
	}
}
