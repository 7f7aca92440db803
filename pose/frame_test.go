package pose

import "testing"

func TestBuildFrameDuplicateLastWins(t *testing.T) {
	f := BuildFrame([]Keypoint{
		kp("left_wrist", 1, 2, 0.9),
		kp("left_wrist", 7, 8, 0.4),
	})
	if len(f) != 1 {
		t.Fatalf("expected 1 keypoint, got %d", len(f))
	}
	if got := f["left_wrist"]; got.X != 7 || got.Y != 8 || got.Score != 0.4 {
		t.Errorf("expected last occurrence to win, got %+v", got)
	}
}

func TestShoulderWidth(t *testing.T) {
	f := BuildFrame([]Keypoint{
		kp("left_shoulder", 300, 300, 1),
		kp("right_shoulder", 500, 310, 1),
	})
	w, ok := f.ShoulderWidth()
	if !ok || w != 200 {
		t.Errorf("expected width 200, got %f (ok=%v)", w, ok)
	}
}

func TestShoulderWidthMissingShoulder(t *testing.T) {
	f := BuildFrame([]Keypoint{kp("left_shoulder", 300, 300, 1)})
	if _, ok := f.ShoulderWidth(); ok {
		t.Error("width must be undefined with one shoulder missing")
	}
}

func TestShoulderWidthZeroIsUndefined(t *testing.T) {
	f := BuildFrame([]Keypoint{
		kp("left_shoulder", 300, 300, 1),
		kp("right_shoulder", 300, 400, 1),
	})
	if _, ok := f.ShoulderWidth(); ok {
		t.Error("zero width must be undefined, it cannot scale anything")
	}
}

func TestConfidenceOK(t *testing.T) {
	f := BuildFrame([]Keypoint{kp("left_wrist", 0, 0, 0.35)})

	if !f.ConfidenceOK("left_wrist", HardMinScore) {
		t.Error("score equal to the threshold must pass")
	}
	if f.ConfidenceOK("left_wrist", 0.36) {
		t.Error("score below the threshold must fail")
	}
	if f.ConfidenceOK("right_wrist", SoftMinScore) {
		t.Error("absent keypoint must fail")
	}
}

func TestRolesFor(t *testing.T) {
	cases := []struct {
		handedness string
		wantBack   string
	}{
		{"right", "right_shoulder"},
		{"RIGHT", "right_shoulder"},
		{"", "right_shoulder"},
		{"southpaw-ish nonsense", "right_shoulder"},
		{"left", "left_shoulder"},
		{"Lefty", "left_shoulder"},
		{"  L  ", "left_shoulder"},
	}
	for _, tc := range cases {
		if got := RolesFor(tc.handedness); got.BackShoulder != tc.wantBack {
			t.Errorf("RolesFor(%q).BackShoulder = %s, want %s", tc.handedness, got.BackShoulder, tc.wantBack)
		}
	}
}

func TestRolesMirrorSwapped(t *testing.T) {
	r := RolesFor("right")
	l := RolesFor("left")

	if r.BackShoulder != l.FrontShoulder || r.FrontShoulder != l.BackShoulder {
		t.Error("shoulder roles must mirror between handedness")
	}
	if r.BackElbow != l.FrontElbow || r.BackWrist != l.FrontWrist {
		t.Error("elbow and wrist roles must mirror between handedness")
	}
}
