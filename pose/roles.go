package pose

import "strings"

// Roles binds the six logical stance roles to concrete keypoint names for
// one handedness. Every rule is written in terms of roles, so the same rule
// code serves left- and right-handed hitters.
type Roles struct {
	BackShoulder  string
	BackElbow     string
	BackWrist     string
	FrontShoulder string
	FrontElbow    string
	FrontWrist    string
}

var (
	rightHandedRoles = Roles{
		BackShoulder:  "right_shoulder",
		BackElbow:     "right_elbow",
		BackWrist:     "right_wrist",
		FrontShoulder: "left_shoulder",
		FrontElbow:    "left_elbow",
		FrontWrist:    "left_wrist",
	}
	leftHandedRoles = Roles{
		BackShoulder:  "left_shoulder",
		BackElbow:     "left_elbow",
		BackWrist:     "left_wrist",
		FrontShoulder: "right_shoulder",
		FrontElbow:    "right_elbow",
		FrontWrist:    "right_wrist",
	}
)

// RolesFor resolves a handedness string to its role bindings. Anything
// starting with "l" (case-insensitive) is left-handed; everything else,
// including the empty string, is right-handed.
func RolesFor(handedness string) Roles {
	hand := strings.ToLower(strings.TrimSpace(handedness))
	if strings.HasPrefix(hand, "l") {
		return leftHandedRoles
	}
	return rightHandedRoles
}

// required returns the joints that must be confidently visible before any
// stance analysis can run.
func (r Roles) required() []string {
	return []string{r.FrontShoulder, r.BackShoulder, r.FrontWrist, r.BackWrist}
}
