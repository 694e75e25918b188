// Package renderer draws composed scene frames with raylib.
package renderer

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/orrery/camera"
	"github.com/pthm-cable/orrery/components"
	"github.com/pthm-cable/orrery/orbit"
	"github.com/pthm-cable/orrery/scene"
)

const labelFontSize = 14

// label is a 3D-anchored text deferred to the 2D pass.
type label struct {
	text       string
	pos        r3.Vec
	brightness float64
}

// Backend executes scene frames. Create it after the window is open.
type Backend struct {
	fovy     float32
	textures *TextureLoader

	// Unit sphere used for textured bodies
	sphere rl.Model

	labels []label
}

// NewBackend creates a backend. textures may be nil when nothing is textured.
func NewBackend(fovy float64, textures *TextureLoader) *Backend {
	if textures == nil {
		textures = NewTextureLoader()
	}
	return &Backend{
		fovy:     float32(fovy),
		textures: textures,
		sphere:   rl.LoadModelFromMesh(rl.GenMeshSphere(1, scene.TexturedDetail, scene.TexturedDetail)),
	}
}

// Camera converts a view to a raylib camera.
func (b *Backend) Camera(v camera.View) rl.Camera3D {
	return rl.Camera3D{
		Position:   vec(v.Eye),
		Target:     vec(v.Target),
		Up:         vec(v.Up),
		Fovy:       b.fovy,
		Projection: rl.CameraPerspective,
	}
}

// Draw clears the screen and executes the frame's operations, then draws labels.
// Must be called between BeginDrawing and EndDrawing.
func (b *Backend) Draw(f scene.Frame) {
	rl.ClearBackground(color(f.Background, 1))

	cam := b.Camera(f.View)
	b.labels = b.labels[:0]

	rl.BeginMode3D(cam)
	for _, op := range f.Ops {
		b.drawOp(op)
	}
	rl.EndMode3D()

	for _, l := range b.labels {
		if !f.View.InFront(l.pos) {
			continue
		}
		p := rl.GetWorldToScreen(vec(l.pos), cam)
		w := rl.MeasureText(l.text, labelFontSize)
		rl.DrawText(l.text, int32(p.X)-w/2, int32(p.Y), labelFontSize, color(components.RGB{R: 1, G: 1, B: 1}, l.brightness))
	}
}

func (b *Backend) drawOp(op scene.Op) {
	switch o := op.(type) {
	case scene.StarsOp:
		c := color(components.RGB{R: o.Brightness, G: o.Brightness, B: o.Brightness}, 1)
		for _, p := range o.Points {
			rl.DrawPoint3D(vec(p), c)
		}
	case scene.SphereOp:
		b.drawSphere(o)
	case scene.DiscOp:
		drawDisc(o)
	case scene.AnnulusOp:
		drawAnnulus(o)
	case scene.LineLoopOp:
		drawLoop(o)
	case scene.LabelOp:
		b.labels = append(b.labels, label{text: o.Text, pos: o.Position, brightness: o.Brightness})
	}
}

// drawSphere draws the sphere spun about +Y, then its children in the
// unspun body frame.
func (b *Backend) drawSphere(o scene.SphereOp) {
	rl.PushMatrix()
	rl.Translatef(float32(o.Center.X), float32(o.Center.Y), float32(o.Center.Z))

	rl.PushMatrix()
	rl.Rotatef(float32(o.Spin), 0, 1, 0)
	tint := color(add(o.Color, o.Emissive), 1)
	if h, ok := o.Texture.Get(); ok {
		if tex, ok := b.textures.Texture(h); ok {
			rl.SetMaterialTexture(b.sphere.Materials, rl.MapDiffuse, tex)
			rl.DrawModel(b.sphere, rl.Vector3{}, float32(o.Radius), tint)
		} else {
			rl.DrawSphereEx(rl.Vector3{}, float32(o.Radius), int32(o.Detail), int32(o.Detail), tint)
		}
	} else {
		rl.DrawSphereEx(rl.Vector3{}, float32(o.Radius), int32(o.Detail), int32(o.Detail), tint)
	}
	rl.PopMatrix()

	for _, child := range o.Children {
		b.drawOp(child)
	}
	rl.PopMatrix()
}

// drawDisc draws a blended fan with depth testing off.
func drawDisc(o scene.DiscOp) {
	rl.DisableDepthTest()
	rl.DisableBackfaceCulling()
	rl.BeginBlendMode(rl.BlendAlpha)

	c := color(o.Color, o.Alpha)
	center := vec(o.Center)
	rim := orbit.Circle(o.Radius, o.Points)
	for i := 0; i+1 < len(rim); i++ {
		rl.DrawTriangle3D(center, vec(r3.Add(o.Center, rim[i+1])), vec(r3.Add(o.Center, rim[i])), c)
	}

	rl.EndBlendMode()
	rl.EnableBackfaceCulling()
	rl.EnableDepthTest()
}

// drawAnnulus draws a blended flat ring as a strip of quads.
func drawAnnulus(o scene.AnnulusOp) {
	rl.DisableBackfaceCulling()
	rl.BeginBlendMode(rl.BlendAlpha)

	c := color(o.Color, o.Alpha)
	inner := orbit.Circle(o.Inner, o.Points)
	outer := orbit.Circle(o.Outer, o.Points)
	for i := 0; i+1 < len(inner); i++ {
		a := vec(r3.Add(o.Center, inner[i]))
		bb := vec(r3.Add(o.Center, outer[i]))
		cc := vec(r3.Add(o.Center, outer[i+1]))
		d := vec(r3.Add(o.Center, inner[i+1]))
		rl.DrawTriangle3D(a, cc, bb, c)
		rl.DrawTriangle3D(a, d, cc, c)
	}

	rl.EndBlendMode()
	rl.EnableBackfaceCulling()
}

func drawLoop(o scene.LineLoopOp) {
	n := len(o.Points)
	if n < 2 {
		return
	}
	c := color(o.Color, 1)
	for i := 0; i < n; i++ {
		rl.DrawLine3D(vec(o.Points[i]), vec(o.Points[(i+1)%n]), c)
	}
}

// Unload frees GPU resources held by the backend.
func (b *Backend) Unload() {
	// The sphere's material texture belongs to the loader.
	rl.SetMaterialTexture(b.sphere.Materials, rl.MapDiffuse, rl.Texture2D{})
	rl.UnloadModel(b.sphere)
	b.textures.Unload()
}

func vec(v r3.Vec) rl.Vector3 {
	return rl.NewVector3(float32(v.X), float32(v.Y), float32(v.Z))
}

func add(a, b components.RGB) components.RGB {
	return components.RGB{R: a.R + b.R, G: a.G + b.G, B: a.B + b.B}
}

// color converts a linear color and alpha in [0, 1] to 8-bit, clamping.
func color(c components.RGB, alpha float64) rl.Color {
	return rl.NewColor(channel(c.R), channel(c.G), channel(c.B), channel(alpha))
}

func channel(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}
