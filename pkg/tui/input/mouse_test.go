// ABOUTME: Table-driven tests for SGR mouse report decoding.
// ABOUTME: Covers buttons, wheel, drag/motion, modifiers, and malformed input.

package input

import "testing"

func TestParseSGRMouse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		body   string
		final  byte
		want   Mouse
		wantOK bool
	}{
		{
			name:   "left press at origin",
			body:   "0;1;1",
			final:  'M',
			want:   Mouse{Button: MouseBtnLeft, Action: MouseActionPress, X: 0, Y: 0},
			wantOK: true,
		},
		{
			name:   "left release",
			body:   "0;10;5",
			final:  'm',
			want:   Mouse{Button: MouseBtnLeft, Action: MouseActionRelease, X: 9, Y: 4},
			wantOK: true,
		},
		{
			name:   "right press",
			body:   "2;3;4",
			final:  'M',
			want:   Mouse{Button: MouseBtnRight, Action: MouseActionPress, X: 2, Y: 3},
			wantOK: true,
		},
		{
			name:   "middle press with ctrl",
			body:   "17;2;2",
			final:  'M',
			want:   Mouse{Button: MouseBtnMiddle, Action: MouseActionPress, X: 1, Y: 1, Ctrl: true},
			wantOK: true,
		},
		{
			name:   "shift left press",
			body:   "4;1;1",
			final:  'M',
			want:   Mouse{Button: MouseBtnLeft, Action: MouseActionPress, Shift: true},
			wantOK: true,
		},
		{
			name:   "wheel up",
			body:   "64;5;5",
			final:  'M',
			want:   Mouse{Button: MouseBtnWheelUp, Action: MouseActionPress, X: 4, Y: 4},
			wantOK: true,
		},
		{
			name:   "wheel down",
			body:   "65;5;5",
			final:  'M',
			want:   Mouse{Button: MouseBtnWheelDown, Action: MouseActionPress, X: 4, Y: 4},
			wantOK: true,
		},
		{
			name:   "left drag",
			body:   "32;8;9",
			final:  'M',
			want:   Mouse{Button: MouseBtnLeft, Action: MouseActionDrag, X: 7, Y: 8},
			wantOK: true,
		},
		{
			name:   "bare motion",
			body:   "35;8;9",
			final:  'M',
			want:   Mouse{Button: MouseBtnNone, Action: MouseActionMove, X: 7, Y: 8},
			wantOK: true,
		},

		// Malformed bodies
		{name: "too few fields", body: "0;1", final: 'M', wantOK: false},
		{name: "non-numeric code", body: "x;1;1", final: 'M', wantOK: false},
		{name: "zero column", body: "0;0;1", final: 'M', wantOK: false},
		{name: "empty", body: "", final: 'M', wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := parseSGRMouse(tt.body, tt.final)
			if ok != tt.wantOK {
				t.Fatalf("parseSGRMouse(%q, %q) ok = %v, want %v", tt.body, tt.final, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("parseSGRMouse(%q, %q) = %+v, want %+v", tt.body, tt.final, got, tt.want)
			}
		})
	}
}
