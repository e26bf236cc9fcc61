package runner

// Fixed-point scale factor: 1 cell = 1000 units.
// This allows for sub-cell precision while maintaining determinism.
const Scale = 1000

// Fixed represents a fixed-point integer (scaled by Scale).
type Fixed int

// ToFixed converts a cell coordinate to fixed-point.
func ToFixed(cell int) Fixed {
	return Fixed(cell * Scale)
}

// ToCell converts fixed-point to cell coordinate (truncated).
func (f Fixed) ToCell() int {
	return int(f) / Scale
}

// ToCellRounded converts fixed-point to nearest cell.
func (f Fixed) ToCellRounded() int {
	if f >= 0 {
		return int(f+Scale/2) / Scale
	}
	return int(f-Scale/2) / Scale
}

// Add adds two fixed-point values.
func (f Fixed) Add(other Fixed) Fixed {
	return f + other
}

// Sub subtracts two fixed-point values.
func (f Fixed) Sub(other Fixed) Fixed {
	return f - other
}

// Mul multiplies fixed-point by an integer.
func (f Fixed) Mul(n int) Fixed {
	return Fixed(int(f) * n)
}

// Div divides fixed-point by an integer.
func (f Fixed) Div(n int) Fixed {
	if n == 0 {
		return 0
	}
	return Fixed(int(f) / n)
}

// Abs returns absolute value.
func (f Fixed) Abs() Fixed {
	if f < 0 {
		return -f
	}
	return f
}

// Sign returns -1, 0, or 1.
func (f Fixed) Sign() int {
	if f < 0 {
		return -1
	}
	if f > 0 {
		return 1
	}
	return 0
}

// ClampFixed restricts a value to [minVal, maxVal].
func ClampFixed(val, minVal, maxVal Fixed) Fixed {
	if val < minVal {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}

// Box is an axis-aligned bounding box in world coordinates.
// Y grows downward; 0 is the top of the playfield.
type Box struct {
	X, Y Fixed // Top-left corner
	W, H Fixed // Extent
}

// NewBox creates a box from a fixed-point position and cell-sized extent.
func NewBox(x, y Fixed, w, h int) Box {
	return Box{X: x, Y: y, W: ToFixed(w), H: ToFixed(h)}
}

// Overlaps reports whether two boxes overlap.
// All comparisons are strict, so boxes that merely share an edge do not collide.
func (b Box) Overlaps(o Box) bool {
	return b.X < o.X+o.W && b.X+b.W > o.X && b.Y < o.Y+o.H && b.Y+b.H > o.Y
}

// Runner is the player body. X follows the camera (the world scrolls under
// the runner); Y is the only integrated axis.
type Runner struct {
	X, Y        Fixed
	W, H        int
	VY          Fixed // Vertical velocity per tick, positive = down
	Grounded    bool
	InvulnTicks int // Damage immunity countdown, 0 = vulnerable
}

// Bounds returns the runner's collision box.
func (r *Runner) Bounds() Box {
	return NewBox(r.X, r.Y, r.W, r.H)
}

// Descending reports whether the runner is moving downward.
func (r *Runner) Descending() bool {
	return r.VY > 0
}

// Integrate advances one tick of vertical motion. Gravity pulls airborne
// bodies; a jump from the ground applies the impulse upward and leaves the
// velocity at exactly -impulse for this tick. The body is clamped to the
// floor (landing) and to the ceiling at y=0. Returns true when a new jump
// started this tick.
func (r *Runner) Integrate(jump bool, gravity, maxFall, impulse, floor Fixed) bool {
	if !r.Grounded {
		r.VY = r.VY.Add(gravity)
		if r.VY > maxFall {
			r.VY = maxFall
		}
	}

	jumped := false
	if jump && r.Grounded {
		r.VY = -impulse
		r.Grounded = false
		jumped = true
	}

	r.Y = r.Y.Add(r.VY)

	// Land on the floor
	if r.Y >= floor {
		r.Y = floor
		r.VY = 0
		r.Grounded = true
	}

	// Ceiling guard: position never goes negative
	if r.Y < 0 {
		r.Y = 0
		r.VY = 0
	}

	return jumped
}
