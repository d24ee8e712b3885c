package state

import (
	"testing"

	"github.com/samuelfneumann/smartcab/traffic"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name     string
		inputs   traffic.Inputs
		waypoint traffic.Action
		want     State
	}{
		{
			name:     "red forward",
			inputs:   traffic.Inputs{Light: traffic.Red},
			waypoint: traffic.Forward,
			want:     RedNotRight,
		},
		{
			name: "red left ignores traffic",
			inputs: traffic.Inputs{
				Light:    traffic.Red,
				Left:     traffic.Forward,
				Oncoming: traffic.Left,
			},
			waypoint: traffic.Left,
			want:     RedNotRight,
		},
		{
			name:     "red right left clear",
			inputs:   traffic.Inputs{Light: traffic.Red},
			waypoint: traffic.Right,
			want:     RedRightLeftClear,
		},
		{
			name:     "red right left turning",
			inputs:   traffic.Inputs{Light: traffic.Red, Left: traffic.Left},
			waypoint: traffic.Right,
			want:     RedRightLeftNotForward,
		},
		{
			name:     "red right left forward",
			inputs:   traffic.Inputs{Light: traffic.Red, Left: traffic.Forward},
			waypoint: traffic.Right,
			want:     RedRightLeftForward,
		},
		{
			name:     "green right",
			inputs:   traffic.Inputs{Light: traffic.Green, Left: traffic.Forward},
			waypoint: traffic.Right,
			want:     GreenRight,
		},
		{
			name:     "green forward",
			inputs:   traffic.Inputs{Light: traffic.Green, Oncoming: traffic.Forward},
			waypoint: traffic.Forward,
			want:     GreenForward,
		},
		{
			name:     "green left clear",
			inputs:   traffic.Inputs{Light: traffic.Green, Right: traffic.Forward},
			waypoint: traffic.Left,
			want:     GreenLeftClear,
		},
		{
			name:     "green left oncoming left",
			inputs:   traffic.Inputs{Light: traffic.Green, Oncoming: traffic.Left},
			waypoint: traffic.Left,
			want:     GreenLeftOncomingLeft,
		},
		{
			name:     "green left oncoming forward",
			inputs:   traffic.Inputs{Light: traffic.Green, Oncoming: traffic.Forward},
			waypoint: traffic.Left,
			want:     GreenLeftOncomingBlocked,
		},
		{
			name:     "green left oncoming right",
			inputs:   traffic.Inputs{Light: traffic.Green, Oncoming: traffic.Right},
			waypoint: traffic.Left,
			want:     GreenLeftOncomingBlocked,
		},
	}

	for _, test := range tests {
		if got := Encode(test.inputs, test.waypoint); got != test.want {
			t.Errorf("%v: Encode(%v, %v) = %v, want %v", test.name,
				test.inputs, test.waypoint, got, test.want)
		}
	}
}

func TestEncodeCoversAllStates(t *testing.T) {
	seen := make(map[State]bool)
	lights := []traffic.Light{traffic.Red, traffic.Green}

	for _, light := range lights {
		for _, waypoint := range traffic.Actions() {
			for _, left := range traffic.Actions() {
				for _, oncoming := range traffic.Actions() {
					inputs := traffic.Inputs{
						Light:    light,
						Left:     left,
						Oncoming: oncoming,
					}
					s := Encode(inputs, waypoint)
					if !s.Valid() {
						t.Fatalf("Encode(%v, %v) = %v, not a valid state",
							inputs, waypoint, s)
					}
					seen[s] = true
				}
			}
		}
	}

	if len(seen) != NumStates {
		t.Errorf("encoded %d distinct states, want %d", len(seen), NumStates)
	}
}

func TestEncodeUnknownLightPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Encode should panic on an unknown light")
		}
	}()
	Encode(traffic.Inputs{Light: traffic.Light(7)}, traffic.Forward)
}
