package stereo

// Eye identifies which simulated eye a pass is rendered from.
type Eye int

const (
	RightEye Eye = iota
	LeftEye
)

func (e Eye) String() string {
	if e == LeftEye {
		return "left"
	}
	return "right"
}

// Frustum returns the projection bounds belonging to e.
func (b Bounds) Frustum(e Eye) Frustum {
	if e == LeftEye {
		return b.LeftEye
	}
	return b.RightEye
}

// ViewOffsetX is the horizontal translation applied to the scene for e.
// The right eye sits at +sep/2, so the world shifts by -sep/2, and vice versa.
func (r Rig) ViewOffsetX(e Eye) float32 {
	if e == LeftEye {
		return r.OcularSeparation / 2
	}
	return -r.OcularSeparation / 2
}

// CrossViewOrder lists the eyes in screen order, left half first. For
// cross-eyed viewing the left half shows the right eye's image.
var CrossViewOrder = [2]Eye{RightEye, LeftEye}
