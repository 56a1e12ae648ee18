package render

import "github.com/go-gl/mathgl/mgl32"

// Stack is a modelview matrix stack. Every operation post-multiplies the
// current matrix, so the last transform issued is applied to vertices first.
// The zero value is not ready; call LoadIdentity.
type Stack struct {
	top   mgl32.Mat4
	saved []mgl32.Mat4
}

func NewStack() *Stack {
	return &Stack{top: mgl32.Ident4()}
}

// LoadIdentity replaces the current matrix; saved matrices are untouched.
func (s *Stack) LoadIdentity() { s.top = mgl32.Ident4() }

func (s *Stack) PushMatrix() { s.saved = append(s.saved, s.top) }

// PopMatrix restores the last pushed matrix. Popping an empty stack is a no-op.
func (s *Stack) PopMatrix() {
	if len(s.saved) == 0 {
		return
	}
	s.top = s.saved[len(s.saved)-1]
	s.saved = s.saved[:len(s.saved)-1]
}

func (s *Stack) Translate(x, y, z float32) { s.top = s.top.Mul4(mgl32.Translate3D(x, y, z)) }

func (s *Stack) Scale(x, y, z float32) { s.top = s.top.Mul4(mgl32.Scale3D(x, y, z)) }

func (s *Stack) Rotate(deg float32, axis mgl32.Vec3) {
	s.top = s.top.Mul4(mgl32.HomogRotate3D(mgl32.DegToRad(deg), axis.Normalize()))
}

// Top returns the current matrix.
func (s *Stack) Top() mgl32.Mat4 { return s.top }

// Depth returns the number of saved matrices.
func (s *Stack) Depth() int { return len(s.saved) }
