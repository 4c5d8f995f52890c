package game

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-gl/internal/camera"
	"restaurant-gl/internal/config"
	"restaurant-gl/internal/input"
	"restaurant-gl/internal/scene"
)

const eps = 1e-4

type countingRenderer struct {
	draws    int
	uniforms map[string]int
}

func (r *countingRenderer) BindMesh(scene.MeshHandle)       {}
func (r *countingRenderer) BindTexture(scene.TextureHandle) {}
func (r *countingRenderer) SetUniformMat4(name string, _ mgl32.Mat4) {
	r.uniforms[name]++
}
func (r *countingRenderer) SetUniformInt(name string, _ int32) {
	r.uniforms[name]++
}
func (r *countingRenderer) SetUniformVec3(name string, _ mgl32.Vec3) {
	r.uniforms[name]++
}
func (r *countingRenderer) Draw(int32) { r.draws++ }

func frameWith(actions ...input.Action) input.Frame {
	f := input.Frame{Width: 640, Height: 480, CursorX: 320, CursorY: 240}
	for _, a := range actions {
		f.Held[a] = true
	}
	return f
}

func press(f input.Frame, a input.Action) input.Frame {
	f.Held[a] = true
	f.Pressed[a] = true
	return f
}

func testScene(t *testing.T) *scene.Scene {
	t.Helper()
	res := scene.NewResources()
	res.AddMesh("cube", scene.Mesh{Handle: 1, Count: 36})
	res.AddTexture("wood", 7)
	sc, err := scene.Build(res, []scene.Instance{
		scene.Place("a", "cube", "wood", mgl32.Vec3{0, 0, 0}),
		scene.Place("b", "cube", "wood", mgl32.Vec3{2, 0, 0}),
	})
	require.NoError(t, err)
	return sc
}

func newSession(t *testing.T) *Session {
	t.Helper()
	s, err := NewSession(config.Default(), testScene(t))
	require.NoError(t, err)
	return s
}

func TestControlsForwardOneUnit(t *testing.T) {
	cam := camera.New()
	c := Controls{MoveSpeed: 15}
	f := frameWith(input.ActionMoveForward)

	require.NoError(t, c.Apply(cam, &f, 1.0/15))
	p := cam.Position()
	assert.InDelta(t, 0, p[0], eps)
	assert.InDelta(t, 4, p[1], eps)
	assert.InDelta(t, 24, p[2], eps)
}

func TestControlsOpposingKeysCancel(t *testing.T) {
	cam := camera.New()
	c := Controls{MoveSpeed: 10}
	f := frameWith(input.ActionMoveLeft, input.ActionMoveRight)
	require.NoError(t, c.Apply(cam, &f, 0.5))
	assert.InDelta(t, 0, cam.Position().Sub(mgl32.Vec3{0, 4, 25}).Len(), eps)
}

func TestControlsNegativeDtIsIgnored(t *testing.T) {
	cam := camera.New()
	f := frameWith(input.ActionMoveForward)
	require.NoError(t, Controls{MoveSpeed: 15}.Apply(cam, &f, -1))
	assert.Equal(t, mgl32.Vec3{0, 4, 25}, cam.Position())
}

func TestControlsYawKeysAndEdges(t *testing.T) {
	cam := camera.New()
	c := Controls{MoveSpeed: 15}

	f := frameWith(input.ActionYawRight)
	require.NoError(t, c.Apply(cam, &f, 0.016))
	assert.InDelta(t, -89.5, cam.Yaw(), eps)

	// cursor on the left edge without edge yaw: nothing
	f = frameWith()
	f.CursorX = 0
	require.NoError(t, c.Apply(cam, &f, 0.016))
	assert.InDelta(t, -89.5, cam.Yaw(), eps)

	c.EdgeYaw = true
	require.NoError(t, c.Apply(cam, &f, 0.016))
	assert.InDelta(t, -90, cam.Yaw(), eps)

	f.CursorX = 639
	require.NoError(t, c.Apply(cam, &f, 0.016))
	assert.InDelta(t, -89.5, cam.Yaw(), eps)
	assert.InDelta(t, 1, cam.Front().Len(), eps)
}

func TestControlsLook(t *testing.T) {
	cam := camera.New()
	f := frameWith()
	f.LookDX, f.LookDY = 10, -4
	require.NoError(t, Controls{}.Apply(cam, &f, 0.016))
	assert.InDelta(t, -85, cam.Yaw(), eps)
	assert.InDelta(t, 2, cam.Pitch(), eps)
}

func TestSessionRendersScene(t *testing.T) {
	s := newSession(t)
	r := &countingRenderer{uniforms: make(map[string]int)}
	s.Render(r)
	assert.Equal(t, 2, r.draws)
	assert.Equal(t, 1, r.uniforms[scene.UniformView])
	assert.Equal(t, 2, r.uniforms[scene.UniformMVP])
}

func TestSessionUpdateMovesAndAdvances(t *testing.T) {
	s := newSession(t)
	cmd := s.Update(1.0/15, frameWith(input.ActionMoveForward))
	assert.Equal(t, CommandNone, cmd)
	assert.InDelta(t, 24, s.Camera.Position()[2], eps)
	assert.InDelta(t, 1.0/15, s.Scene().Time(), 1e-9)
}

func TestSessionPause(t *testing.T) {
	s := newSession(t)
	cmd := s.Update(0.1, press(frameWith(), input.ActionPause))
	assert.True(t, cmd.Has(CommandPause))
	assert.True(t, s.Paused)

	s.Update(1, frameWith(input.ActionMoveForward))
	assert.Equal(t, mgl32.Vec3{0, 4, 25}, s.Camera.Position(), "paused camera must not move")
	assert.Zero(t, s.Scene().Time())

	cmd = s.Update(0.1, press(frameWith(), input.ActionPause))
	assert.True(t, cmd.Has(CommandResume))
	assert.False(t, s.Paused)
}

func TestSessionCommands(t *testing.T) {
	s := newSession(t)
	assert.True(t, s.Update(0.1, press(frameWith(), input.ActionScreenshot)).Has(CommandScreenshot))
	assert.Equal(t, CommandQuit, s.Update(0.1, press(frameWith(), input.ActionQuit)))
}

func TestSessionToggleLighting(t *testing.T) {
	defer config.SetLighting(false)
	config.SetLighting(false)
	s := newSession(t)
	require.False(t, s.Composer.Lighting())

	s.Update(0.1, press(frameWith(), input.ActionToggleLighting))
	assert.True(t, s.Composer.Lighting())
	assert.True(t, config.GetLighting())

	// held, not pressed again: no second toggle
	s.Update(0.1, frameWith(input.ActionToggleLighting))
	assert.True(t, s.Composer.Lighting())
}

func TestSessionResize(t *testing.T) {
	s := newSession(t)
	f := frameWith()
	f.Width, f.Height = 800, 400
	s.Update(0.016, f)

	w, h := s.Size()
	assert.Equal(t, 800, w)
	assert.Equal(t, 400, h)
	want := mgl32.Perspective(mgl32.DegToRad(45), 2, 0.1, 100)
	assert.True(t, s.Composer.Projection().ApproxEqual(want))

	// minimized: projection kept
	require.NoError(t, s.Resize(0, 0))
	assert.True(t, s.Composer.Projection().ApproxEqual(want))
}

func TestReplaceSceneKeepsClock(t *testing.T) {
	s := newSession(t)
	s.Update(0.5, frameWith())
	next := testScene(t)
	s.ReplaceScene(next)
	assert.Same(t, next, s.Scene())
	assert.InDelta(t, 0.5, next.Time(), 1e-9)
}

func TestFPSLimiter(t *testing.T) {
	defer config.SetFPSLimit(config.GetFPSLimit())

	config.SetFPSLimit(0)
	l := NewFPSLimiter()
	start := time.Now()
	for i := 0; i < 100; i++ {
		l.Wait(false)
	}
	assert.Less(t, time.Since(start), 50*time.Millisecond, "unlimited must not wait")

	config.SetFPSLimit(200)
	start = time.Now()
	for i := 0; i < 4; i++ {
		l.Wait(false)
	}
	assert.GreaterOrEqual(t, time.Since(start), 15*time.Millisecond)
}

func TestSessionStatus(t *testing.T) {
	defer config.SetLighting(false)
	config.SetLighting(false)
	s := newSession(t)

	lines := s.Status(118)
	require.Len(t, lines, 3)
	assert.Equal(t, "118 fps", lines[0])
	assert.Equal(t, "pos 0.0 4.0 25.0  yaw -90  pitch 0", lines[1])
	assert.Equal(t, "lighting off", lines[2])

	s.Update(0.1, press(frameWith(), input.ActionPause))
	lines = s.Status(30)
	assert.Len(t, lines, 4)
}
