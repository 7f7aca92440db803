package pose

// Shared test fixtures. Coordinates are in detector pixels.

func kp(name string, x, y, score float64) Keypoint {
	return Keypoint{Name: name, X: x, Y: y, Score: score}
}

// goodStanceKeypoints is a right-handed stance that passes every gate and
// every rule: shoulder width 200, compact grip, hands set by the back
// shoulder, back arm bent at exactly 90 degrees, level shoulders.
func goodStanceKeypoints() []Keypoint {
	return []Keypoint{
		kp("left_shoulder", 300, 300, 1.0),
		kp("right_shoulder", 500, 300, 1.0),
		kp("left_elbow", 400, 400, 1.0),
		kp("right_elbow", 560, 330, 1.0),
		kp("left_wrist", 500, 395, 1.0),
		kp("right_wrist", 530, 390, 1.0),
	}
}

// override replaces the keypoint with the same name, appending if absent.
func override(kps []Keypoint, repl Keypoint) []Keypoint {
	out := make([]Keypoint, 0, len(kps)+1)
	found := false
	for _, k := range kps {
		if k.Name == repl.Name {
			out = append(out, repl)
			found = true
			continue
		}
		out = append(out, k)
	}
	if !found {
		out = append(out, repl)
	}
	return out
}

func without(kps []Keypoint, name string) []Keypoint {
	out := make([]Keypoint, 0, len(kps))
	for _, k := range kps {
		if k.Name != name {
			out = append(out, k)
		}
	}
	return out
}

// scaled multiplies every coordinate by k, leaving scores untouched.
func scaled(kps []Keypoint, k float64) []Keypoint {
	out := make([]Keypoint, len(kps))
	for i, p := range kps {
		p.X *= k
		p.Y *= k
		out[i] = p
	}
	return out
}

// mirrored swaps left_* and right_* keypoint names without moving anything.
func mirrored(kps []Keypoint) []Keypoint {
	swap := map[string]string{
		"left_shoulder": "right_shoulder", "right_shoulder": "left_shoulder",
		"left_elbow": "right_elbow", "right_elbow": "left_elbow",
		"left_wrist": "right_wrist", "right_wrist": "left_wrist",
	}
	out := make([]Keypoint, len(kps))
	for i, p := range kps {
		if n, ok := swap[p.Name]; ok {
			p.Name = n
		}
		out[i] = p
	}
	return out
}
