package viewer

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/MKhiriev/go-model-viewer/internal/logger"
	"github.com/MKhiriev/go-model-viewer/internal/validators"
	"github.com/MKhiriev/go-model-viewer/models"
)

const (
	// DemoRef opens the bundled read-only sample.
	DemoRef = "demo"
	// NewRef opens an empty placeholder awaiting a local file.
	NewRef = "new"
)

// DemoModel is the bundled sample shown for [DemoRef].
var DemoModel = models.Model{
	ID:      DemoRef,
	Name:    "Demo Model",
	FileURL: "/assets/3d/duck.glb",
}

// Kind tells how the opened model was resolved.
type Kind int

const (
	KindNone Kind = iota
	KindDemo
	KindNew
	KindStored
)

// Session is the state of one viewer screen. It is safe for concurrent use,
// since UI commands run on their own goroutines.
type Session struct {
	source ModelSource

	mu        sync.RWMutex
	kind      Kind
	model     models.Model
	views     []models.SavedView
	displayed Pose
	localFile string

	logger *logger.Logger
}

func NewSession(source ModelSource, logger *logger.Logger) *Session {
	return &Session{
		source:    source,
		displayed: DefaultPose,
		logger:    logger,
	}
}

// Open resolves ref and resets the displayed camera. On error the previous
// state is kept.
func (s *Session) Open(ctx context.Context, ref string) error {
	ref = strings.TrimSpace(ref)

	var (
		kind  Kind
		model models.Model
	)
	switch ref {
	case DemoRef:
		kind, model = KindDemo, DemoModel
	case NewRef:
		kind, model = KindNew, models.Model{Name: "New Model"}
	default:
		loaded, err := s.source.Get(ctx, ref)
		if err != nil {
			return fmt.Errorf("open model %q: %w", ref, err)
		}
		kind, model = KindStored, loaded
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.kind = kind
	s.model = model
	s.views = slices.Clone(model.SavedViews)
	s.model.SavedViews = nil
	s.displayed = DefaultPose
	s.localFile = ""

	s.logger.Debug().Str("ref", ref).Int("views", len(s.views)).Msg("model opened")
	return nil
}

func (s *Session) Kind() Kind {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.kind
}

// Model returns the opened record without its saved views.
func (s *Session) Model() models.Model {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.model
}

func (s *Session) Displayed() Pose {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.displayed
}

// Views returns a copy of the persisted saved views in insertion order.
func (s *Session) Views() []models.SavedView {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.views)
}

// SelectView applies the stored pose of the view to the displayed camera.
// Missing coordinates leave the matching part of the camera unchanged.
func (s *Session) SelectView(viewID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.IndexFunc(s.views, func(v models.SavedView) bool { return v.ID == viewID })
	if idx < 0 {
		return ErrViewNotFound
	}

	view := s.views[idx]
	if view.Position != nil {
		s.displayed.Position = *view.Position
	}
	if view.Target != nil {
		s.displayed.Target = *view.Target
	}
	return nil
}

// MoveCamera changes the displayed pose only.
func (s *Session) MoveCamera(move Move) Pose {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.displayed = s.displayed.apply(move)
	return s.displayed
}

// ResetCamera restores [DefaultPose].
func (s *Session) ResetCamera() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.displayed = DefaultPose
}

// CanSave reports whether the save action is available for the opened model.
func (s *Session) CanSave() bool {
	return s.Kind() == KindStored
}

// SaveCurrentView persists the displayed pose under name. The view is
// appended to [Session.Views] only after the server accepted it.
func (s *Session) SaveCurrentView(ctx context.Context, name string) (models.SavedView, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.SavedView{}, ErrViewNameRequired
	}

	s.mu.RLock()
	kind, modelID, pose := s.kind, s.model.ID, s.displayed
	s.mu.RUnlock()

	switch kind {
	case KindNone:
		return models.SavedView{}, ErrNoModelOpened
	case KindDemo:
		return models.SavedView{}, ErrReadOnlyModel
	case KindNew:
		return models.SavedView{}, ErrModelNotPersisted
	}

	view, err := s.source.AddView(ctx, modelID, name, pose.CameraPose())
	if err != nil {
		return models.SavedView{}, fmt.Errorf("save view: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// the user may have opened another model while the request was in flight
	if s.kind == KindStored && s.model.ID == modelID {
		s.views = append(s.views, view)
	}

	s.logger.Debug().Str("model_id", modelID).Str("view_id", view.ID).Msg("view saved")
	return view, nil
}

// AttachLocalFile points the placeholder opened with [NewRef] at a local
// file for preview. Nothing is uploaded or persisted.
func (s *Session) AttachLocalFile(path string) error {
	path = strings.TrimSpace(path)
	if err := validators.ValidateModelFileName(path); err != nil {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve local file: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.kind != KindNew {
		return ErrNotPlaceholder
	}

	s.localFile = abs
	s.model.Name = strings.TrimSuffix(filepath.Base(abs), filepath.Ext(abs))
	s.model.FileURL = "file://" + filepath.ToSlash(abs)
	return nil
}

// LocalFile returns the attached local path, if any.
func (s *Session) LocalFile() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.localFile
}
