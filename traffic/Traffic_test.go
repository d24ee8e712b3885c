package traffic

import "testing"

func TestTurns(t *testing.T) {
	tests := []struct {
		heading     Heading
		left, right Heading
	}{
		{North, West, East},
		{East, North, South},
		{South, East, West},
		{West, South, North},
	}

	for _, test := range tests {
		if got := test.heading.TurnLeft(); got != test.left {
			t.Errorf("%v.TurnLeft() = %v, want %v", test.heading, got,
				test.left)
		}
		if got := test.heading.TurnRight(); got != test.right {
			t.Errorf("%v.TurnRight() = %v, want %v", test.heading, got,
				test.right)
		}
		if got := test.heading.Dot(test.heading.TurnLeft().TurnLeft()); got != -1 {
			t.Errorf("%v: opposite heading dot = %d, want -1", test.heading,
				got)
		}
	}
}

func TestActionIndex(t *testing.T) {
	for i, a := range Actions() {
		if a.Index() != i {
			t.Errorf("%v.Index() = %d, want %d", a, a.Index(), i)
		}
		if ActionAt(i) != a {
			t.Errorf("ActionAt(%d) = %v, want %v", i, ActionAt(i), a)
		}
	}
	if len(Actions()) != NumActions {
		t.Errorf("len(Actions()) = %d, want %d", len(Actions()), NumActions)
	}
	if Invalid.Valid() {
		t.Error("Invalid should not be a valid action")
	}
}
