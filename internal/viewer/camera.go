package viewer

import (
	"math"

	"github.com/MKhiriev/go-model-viewer/models"
)

// Pose is the camera state shown on screen.
type Pose struct {
	Position models.Vector3
	Target   models.Vector3
}

// DefaultPose is the camera every freshly opened model starts with.
var DefaultPose = Pose{
	Position: models.Vector3{X: 0, Y: 1, Z: 5},
	Target:   models.Vector3{},
}

// CameraPose converts the displayed pose to its wire form.
func (p Pose) CameraPose() models.CameraPose {
	position, target := p.Position, p.Target
	return models.CameraPose{Position: &position, Target: &target}
}

// Distance is the length between the camera and the point it looks at.
func (p Pose) Distance() float64 {
	return length(sub(p.Position, p.Target))
}

// Move is a single camera step issued by the terminal UI.
type Move int

const (
	OrbitLeft Move = iota
	OrbitRight
	OrbitUp
	OrbitDown
	PanLeft
	PanRight
	PanUp
	PanDown
	ZoomIn
	ZoomOut
)

const (
	orbitStep    = math.Pi / 18
	panStep      = 0.25
	zoomFactor   = 0.9
	minDistance  = 0.1
	maxElevation = math.Pi/2 - 0.01
)

func (p Pose) apply(move Move) Pose {
	offset := sub(p.Position, p.Target)
	r := length(offset)
	if r < minDistance {
		r = minDistance
		offset = models.Vector3{Z: r}
	}

	azimuth := math.Atan2(offset.X, offset.Z)
	elevation := math.Asin(clamp(offset.Y/r, -1, 1))

	switch move {
	case OrbitLeft:
		azimuth -= orbitStep
	case OrbitRight:
		azimuth += orbitStep
	case OrbitUp:
		elevation = clamp(elevation+orbitStep, -maxElevation, maxElevation)
	case OrbitDown:
		elevation = clamp(elevation-orbitStep, -maxElevation, maxElevation)
	case ZoomIn:
		r = math.Max(r*zoomFactor, minDistance)
	case ZoomOut:
		r /= zoomFactor
	case PanLeft, PanRight, PanUp, PanDown:
		return p.pan(move, azimuth)
	default:
		return p
	}

	position := add(p.Target, models.Vector3{
		X: r * math.Cos(elevation) * math.Sin(azimuth),
		Y: r * math.Sin(elevation),
		Z: r * math.Cos(elevation) * math.Cos(azimuth),
	})
	return Pose{Position: position, Target: p.Target}
}

// pan shifts camera and target together along the screen axes.
func (p Pose) pan(move Move, azimuth float64) Pose {
	right := models.Vector3{X: math.Cos(azimuth), Z: -math.Sin(azimuth)}
	up := models.Vector3{Y: 1}

	var delta models.Vector3
	switch move {
	case PanLeft:
		delta = scale(right, -panStep)
	case PanRight:
		delta = scale(right, panStep)
	case PanUp:
		delta = scale(up, panStep)
	case PanDown:
		delta = scale(up, -panStep)
	}

	return Pose{Position: add(p.Position, delta), Target: add(p.Target, delta)}
}

func add(a, b models.Vector3) models.Vector3 {
	return models.Vector3{X: a.X + b.X, Y: a.Y + b.Y, Z: a.Z + b.Z}
}

func sub(a, b models.Vector3) models.Vector3 {
	return models.Vector3{X: a.X - b.X, Y: a.Y - b.Y, Z: a.Z - b.Z}
}

func scale(v models.Vector3, k float64) models.Vector3 {
	return models.Vector3{X: v.X * k, Y: v.Y * k, Z: v.Z * k}
}

func length(v models.Vector3) float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
