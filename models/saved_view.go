package models

import "time"

// Vector3 is a point or direction in model space.
type Vector3 struct {
	X float64 `json:"x" bson:"x"`
	Y float64 `json:"y" bson:"y"`
	Z float64 `json:"z" bson:"z"`
}

// CameraPose is the camera state submitted when a view is saved.
type CameraPose struct {
	Position *Vector3 `json:"position,omitempty"`
	Target   *Vector3 `json:"target,omitempty"`
}

// IsEmpty reports whether the pose carries neither position nor target.
func (p *CameraPose) IsEmpty() bool {
	return p == nil || (p.Position == nil && p.Target == nil)
}

// SavedView is an immutable named camera snapshot embedded in a [Model].
// Its identifier is generated independently of the model identifier.
type SavedView struct {
	ID        string    `json:"id" bson:"id"`
	Name      string    `json:"name" bson:"name"`
	Position  *Vector3  `json:"position,omitempty" bson:"position,omitempty"`
	Target    *Vector3  `json:"target,omitempty" bson:"target,omitempty"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}
