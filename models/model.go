package models

import "time"

// Model is a 3D model record owned by exactly one user.
//
// A record is only ever read or mutated through a filter on both ID and
// OwnerID, so it is never visible to anyone but its owner.
type Model struct {
	// ID is the unique identifier of the record (UUID string).
	ID string `json:"id" bson:"_id"`

	// OwnerID references the owning [User]. Not exposed to clients.
	OwnerID string `json:"-" bson:"ownerId"`

	// Name is the display name of the model.
	Name string `json:"name" bson:"name"`

	// FileURL locates the 3D asset (absolute URL or server-relative path).
	FileURL string `json:"fileUrl" bson:"fileUrl"`

	// Thumbnail optionally locates a preview image.
	Thumbnail string `json:"thumbnail,omitempty" bson:"thumbnail,omitempty"`

	// CreatedAt is the creation timestamp.
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`

	// UpdatedAt is stamped on every successful update.
	UpdatedAt *time.Time `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`

	// SavedViews is the append-only list of camera snapshots, in insertion order.
	SavedViews []SavedView `json:"savedViews" bson:"savedViews"`
}

// TableName returns the name of the database table (or collection)
// associated with the Model.
func (m Model) TableName() string {
	return "models"
}

// Summary returns the list projection of the model.
func (m Model) Summary() ModelSummary {
	return ModelSummary{
		ID:        m.ID,
		Name:      m.Name,
		CreatedAt: m.CreatedAt,
		Thumbnail: m.Thumbnail,
	}
}

// ModelSummary is the list-view projection of a [Model]. The file locator and
// saved views are left out to keep list payloads small.
type ModelSummary struct {
	ID        string    `json:"id" bson:"_id"`
	Name      string    `json:"name" bson:"name"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	Thumbnail string    `json:"thumbnail,omitempty" bson:"thumbnail,omitempty"`
}

// ModelPatch describes a partial update of a [Model].
// A nil field is absent and is left unchanged.
type ModelPatch struct {
	Name    *string `json:"name,omitempty"`
	FileURL *string `json:"fileUrl,omitempty"`
}

// Normalize drops fields that carry an empty string, so that only
// meaningful values are written to the store.
func (p ModelPatch) Normalize() ModelPatch {
	if p.Name != nil && *p.Name == "" {
		p.Name = nil
	}
	if p.FileURL != nil && *p.FileURL == "" {
		p.FileURL = nil
	}
	return p
}
