package scene

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/orrery/camera"
	"github.com/pthm-cable/orrery/components"
	"github.com/pthm-cable/orrery/texture"
)

// Op is one draw operation. Backends type-switch on the concrete types below.
type Op interface {
	isOp()
}

// StarsOp draws a point cloud in a single grey level.
type StarsOp struct {
	Points     []r3.Vec
	Brightness float64
}

// SphereOp draws a tessellated sphere, flat colored or textured.
type SphereOp struct {
	Center   r3.Vec
	Radius   float64
	Color    components.RGB
	Emissive components.RGB // added to Color, for self-lit bodies
	Spin     float64        // degrees about +Y, applied to the sphere only
	Texture  texture.Ref
	Detail   int // rings and slices

	// Children are drawn in the body's frame: positions relative to Center.
	Children []Op
}

// DiscOp draws an alpha-blended triangle fan in the XZ plane.
// Depth testing is disabled while it is drawn.
type DiscOp struct {
	Center r3.Vec
	Radius float64
	Color  components.RGB
	Alpha  float64
	Points int
}

// AnnulusOp draws an alpha-blended flat ring (triangle strip) in the XZ plane.
type AnnulusOp struct {
	Center       r3.Vec
	Inner, Outer float64
	Color        components.RGB
	Alpha        float64
	Points       int
}

// LineLoopOp draws a closed, unlit polyline.
type LineLoopOp struct {
	Points []r3.Vec
	Color  components.RGB
}

// LabelOp draws text anchored at a 3D position.
type LabelOp struct {
	Text       string
	Position   r3.Vec
	Brightness float64
}

func (StarsOp) isOp()    {}
func (SphereOp) isOp()   {}
func (DiscOp) isOp()     {}
func (AnnulusOp) isOp()  {}
func (LineLoopOp) isOp() {}
func (LabelOp) isOp()    {}

// Overlay asks the overlay collaborator to show facts about the focused body.
type Overlay struct {
	Name  string
	Facts []string
}

// Frame is everything a backend needs to draw one tick.
type Frame struct {
	Background components.RGB
	View       camera.View
	Ops        []Op
	Overlay    *Overlay // nil outside focus mode
	Paused     bool
}
