package camera

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	// MaxPitch bounds the pitch in both directions, in degrees.
	MaxPitch = 45.0

	DefaultYaw         = -90.0
	DefaultPitch       = 0.0
	DefaultSensitivity = 0.5
	DefaultYawStep     = 0.5

	// below this length cross(front, worldUp) is treated as degenerate
	degenerateEpsilon = 1e-6
)

var (
	ErrUnknownDirection = errors.New("camera: unknown direction")
	ErrNegativeDistance = errors.New("camera: negative distance")
)

var (
	worldUp         = mgl32.Vec3{0, 1, 0}
	DefaultPosition = mgl32.Vec3{0, 4, 25}
)

// Direction is a discrete movement or turn request.
type Direction int

const (
	Forward Direction = iota
	Backward
	Left
	Right
	Up
	Down
	YawLeft
	YawRight
	directionCount
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	case YawLeft:
		return "yaw-left"
	case YawRight:
		return "yaw-right"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Camera is a first-person viewer. The front/right/up basis is always
// derived from yaw and pitch and is rebuilt whenever either changes.
type Camera struct {
	position mgl32.Vec3
	front    mgl32.Vec3
	right    mgl32.Vec3
	up       mgl32.Vec3

	yaw   float32
	pitch float32

	sensitivity   float32
	yawStep       float32
	worldVertical bool
}

// Option configures a Camera at construction time.
type Option func(*Camera)

// WithPosition sets the starting position.
func WithPosition(p mgl32.Vec3) Option {
	return func(c *Camera) { c.position = p }
}

// WithYaw sets the starting yaw in degrees.
func WithYaw(deg float32) Option {
	return func(c *Camera) { c.yaw = deg }
}

// WithPitch sets the starting pitch in degrees. It is clamped like any other pitch change.
func WithPitch(deg float32) Option {
	return func(c *Camera) { c.pitch = deg }
}

// WithSensitivity sets the multiplier applied to look deltas.
func WithSensitivity(s float32) Option {
	return func(c *Camera) { c.sensitivity = s }
}

// WithYawStep sets the angle in degrees applied by YawLeft and YawRight.
func WithYawStep(deg float32) Option {
	return func(c *Camera) { c.yawStep = deg }
}

// WithWorldVertical makes Up and Down move along world Y instead of the camera's up vector.
func WithWorldVertical(enabled bool) Option {
	return func(c *Camera) { c.worldVertical = enabled }
}

// New creates a camera at (0,4,25) looking down -Z unless options say otherwise.
func New(opts ...Option) *Camera {
	c := &Camera{
		position:    DefaultPosition,
		yaw:         DefaultYaw,
		pitch:       DefaultPitch,
		sensitivity: DefaultSensitivity,
		yawStep:     DefaultYawStep,
		right:       mgl32.Vec3{1, 0, 0},
	}
	for _, opt := range opts {
		opt(c)
	}
	c.pitch = clampPitch(c.pitch)
	c.updateVectors()
	return c
}

func (c *Camera) Position() mgl32.Vec3 { return c.position }
func (c *Camera) Front() mgl32.Vec3    { return c.front }
func (c *Camera) Right() mgl32.Vec3    { return c.right }
func (c *Camera) Up() mgl32.Vec3       { return c.up }
func (c *Camera) Yaw() float32         { return c.yaw }
func (c *Camera) Pitch() float32       { return c.pitch }
func (c *Camera) Sensitivity() float32 { return c.sensitivity }

// ViewMatrix returns the look-at matrix from the position toward position+front.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.position, c.position.Add(c.front), c.up)
}

// ProcessLookDelta turns the camera by raw pointer deltas. dy follows screen
// convention (down is positive) and is inverted before it reaches pitch.
func (c *Camera) ProcessLookDelta(dx, dy float32) {
	c.yaw += dx * c.sensitivity
	c.pitch = clampPitch(c.pitch - dy*c.sensitivity)
	c.updateVectors()
}

// ProcessKeyboard moves the camera by distance along the axis named by dir.
// YawLeft and YawRight turn by the fixed yaw step and ignore distance.
func (c *Camera) ProcessKeyboard(dir Direction, distance float32) error {
	if dir < 0 || dir >= directionCount {
		return fmt.Errorf("%w: %d", ErrUnknownDirection, int(dir))
	}
	if distance < 0 {
		return fmt.Errorf("%w: %v", ErrNegativeDistance, distance)
	}

	vertical := c.up
	if c.worldVertical {
		vertical = worldUp
	}

	switch dir {
	case Forward:
		c.position = c.position.Add(c.front.Mul(distance))
	case Backward:
		c.position = c.position.Sub(c.front.Mul(distance))
	case Left:
		c.position = c.position.Sub(c.right.Mul(distance))
	case Right:
		c.position = c.position.Add(c.right.Mul(distance))
	case Up:
		c.position = c.position.Add(vertical.Mul(distance))
	case Down:
		c.position = c.position.Sub(vertical.Mul(distance))
	case YawLeft:
		c.yaw -= c.yawStep
		c.updateVectors()
	case YawRight:
		c.yaw += c.yawStep
		c.updateVectors()
	}
	return nil
}

func (c *Camera) updateVectors() {
	y := float64(mgl32.DegToRad(c.yaw))
	p := float64(mgl32.DegToRad(c.pitch))

	front := mgl32.Vec3{
		float32(math.Cos(y) * math.Cos(p)),
		float32(math.Sin(p)),
		float32(math.Sin(y) * math.Cos(p)),
	}.Normalize()

	right := front.Cross(worldUp)
	if right.Len() < degenerateEpsilon {
		// looking straight up or down; keep the last horizontal axis
		right = c.right
	}
	right = right.Normalize()

	c.front = front
	c.right = right
	c.up = right.Cross(front).Normalize()
}

func clampPitch(p float32) float32 {
	if p > MaxPitch {
		return MaxPitch
	}
	if p < -MaxPitch {
		return -MaxPitch
	}
	return p
}
