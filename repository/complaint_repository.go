package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"civisafe/internal/kv"
	"civisafe/models"
)

// ComplaintsKey is the storage key of the user-submitted complaints.
const ComplaintsKey = "userComplaints"

// ComplaintRepository keeps the working list of complaints: the seed set followed
// by the persisted user submissions. Only user submissions are ever written back.
// It performs read-modify-write without locking and is meant for a single caller.
type ComplaintRepository struct {
	store kv.Store
	log   *zap.Logger
	now   func() time.Time
	newID func() string

	seed    []models.Complaint
	seedIDs map[string]struct{}

	working []models.Complaint
	loaded  bool
}

// ComplaintOption customizes a ComplaintRepository.
type ComplaintOption func(*ComplaintRepository)

// WithClock sets the time source used for submittedAt.
func WithClock(now func() time.Time) ComplaintOption {
	return func(r *ComplaintRepository) { r.now = now }
}

// WithIDGenerator replaces the CMP-<uuid> id allocator.
func WithIDGenerator(gen func() string) ComplaintOption {
	return func(r *ComplaintRepository) { r.newID = gen }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) ComplaintOption {
	return func(r *ComplaintRepository) {
		if l != nil {
			r.log = l
		}
	}
}

// WithSeed replaces the seed set. Passing nil disables seeding.
func WithSeed(seed []models.Complaint) ComplaintOption {
	return func(r *ComplaintRepository) { r.seed = seed }
}

func NewComplaintRepository(store kv.Store, opts ...ComplaintOption) *ComplaintRepository {
	r := &ComplaintRepository{
		store: store,
		log:   zap.NewNop(),
		now:   time.Now,
		newID: func() string { return "CMP-" + uuid.NewString() },
		seed:  SeedComplaints(),
	}
	for _, o := range opts {
		o(r)
	}
	r.log = r.log.Named("complaints")
	seed := make([]models.Complaint, 0, len(r.seed))
	r.seedIDs = make(map[string]struct{}, len(r.seed))
	for _, c := range r.seed {
		if _, dup := r.seedIDs[c.ID]; dup || c.ID == "" || !c.Status.Valid() || !c.Category.Valid() {
			r.log.Warn("skipping invalid seed complaint", zap.String("id", c.ID))
			continue
		}
		r.seedIDs[c.ID] = struct{}{}
		seed = append(seed, c)
	}
	r.seed = seed
	return r
}

// IsSeed reports whether id belongs to the built-in seed set.
func (r *ComplaintRepository) IsSeed(id string) bool {
	_, ok := r.seedIDs[id]
	return ok
}

// LoadAll rebuilds the working copy from the seed set and storage and returns it.
// Any unsaved edits to seed complaints are discarded.
func (r *ComplaintRepository) LoadAll(ctx context.Context) ([]models.Complaint, error) {
	user, err := r.UserComplaints(ctx)
	if err != nil {
		return nil, err
	}
	working := make([]models.Complaint, 0, len(r.seed)+len(user))
	for _, c := range r.seed {
		working = append(working, normalize(c))
	}
	working = append(working, user...)
	r.working = working
	r.loaded = true
	return cloneAll(r.working), nil
}

// UserComplaints returns the persisted user submissions in stored order.
// Missing or malformed data yields an empty list.
func (r *ComplaintRepository) UserComplaints(ctx context.Context) ([]models.Complaint, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	raw, ok, err := r.store.Get(ctx, ComplaintsKey)
	if err != nil {
		return nil, fmt.Errorf("read complaints: %w", err)
	}
	if !ok || strings.TrimSpace(raw) == "" {
		return []models.Complaint{}, nil
	}
	var stored []models.Complaint
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		r.log.Warn("discarding malformed complaints", zap.Error(err))
		return []models.Complaint{}, nil
	}

	out := make([]models.Complaint, 0, len(stored))
	seen := make(map[string]struct{}, len(stored))
	for _, c := range stored {
		switch {
		case c.ID == "" || !c.Status.Valid() || !c.Category.Valid():
			r.log.Warn("skipping invalid stored complaint", zap.String("id", c.ID))
			continue
		case r.IsSeed(c.ID):
			continue
		}
		if _, dup := seen[c.ID]; dup {
			r.log.Warn("skipping duplicate stored complaint", zap.String("id", c.ID))
			continue
		}
		seen[c.ID] = struct{}{}
		out = append(out, normalize(c))
	}
	return out, nil
}

// Persist overwrites the stored user submissions. Seed ids are filtered out.
func (r *ComplaintRepository) Persist(ctx context.Context, userComplaints []models.Complaint) error {
	keep := make([]models.Complaint, 0, len(userComplaints))
	for _, c := range userComplaints {
		if r.IsSeed(c.ID) {
			continue
		}
		keep = append(keep, normalize(c))
	}
	b, err := json.Marshal(keep)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := r.store.Set(ctx, ComplaintsKey, string(b)); err != nil {
		return fmt.Errorf("write complaints: %w", err)
	}
	return nil
}

// Create validates nc, assigns a fresh id, status pending and the current time,
// and appends the complaint to storage and the working copy.
func (r *ComplaintRepository) Create(ctx context.Context, nc models.NewComplaint) (*models.Complaint, error) {
	if strings.TrimSpace(nc.Title) == "" {
		return nil, fmt.Errorf("%w: title", ErrMissingField)
	}
	if strings.TrimSpace(nc.Description) == "" {
		return nil, fmt.Errorf("%w: description", ErrMissingField)
	}
	if strings.TrimSpace(nc.SubmittedBy) == "" {
		return nil, fmt.Errorf("%w: submittedBy", ErrMissingField)
	}
	if !nc.Category.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCategory, nc.Category)
	}
	if err := r.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	user, err := r.UserComplaints(ctx)
	if err != nil {
		return nil, err
	}

	c := models.Complaint{
		ID:                r.allocateID(user),
		Title:             nc.Title,
		Category:          nc.Category,
		Description:       nc.Description,
		Status:            models.StatusPending,
		SubmittedBy:       nc.SubmittedBy,
		SubmittedAt:       r.now().UTC(),
		Comments:          []string{},
		AttachmentPresent: nc.AttachmentPresent,
	}
	if err := r.Persist(ctx, append(user, c)); err != nil {
		return nil, err
	}
	r.working = append(r.working, c)
	r.log.Info("complaint created", zap.String("id", c.ID), zap.String("category", string(c.Category)))
	out := c.Clone()
	return &out, nil
}

// allocateID draws ids until one is free in both the working copy and storage.
func (r *ComplaintRepository) allocateID(user []models.Complaint) string {
	for {
		id := r.newID()
		if r.IsSeed(id) || indexOf(r.working, id) >= 0 || indexOf(user, id) >= 0 {
			continue
		}
		return id
	}
}

// ChangeStatus sets the status of complaint id. Seed complaints change only in
// the working copy. Unknown ids are ignored.
func (r *ComplaintRepository) ChangeStatus(ctx context.Context, id string, status models.Status) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	return r.mutate(ctx, id, func(c *models.Complaint) {
		c.Status = status
	})
}

// AppendComment adds text to the end of the comments of complaint id.
// Blank text and unknown ids are ignored.
func (r *ComplaintRepository) AppendComment(ctx context.Context, id, text string) error {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	return r.mutate(ctx, id, func(c *models.Complaint) {
		c.Comments = append(c.Comments, text)
	})
}

// mutate applies a change to complaint id. User complaints are written to
// storage first; the working copy changes only once the write succeeds.
func (r *ComplaintRepository) mutate(ctx context.Context, id string, apply func(*models.Complaint)) error {
	if err := r.ensureLoaded(ctx); err != nil {
		return err
	}
	i := indexOf(r.working, id)
	if i < 0 {
		return nil
	}
	if !r.IsSeed(id) {
		user, err := r.UserComplaints(ctx)
		if err != nil {
			return err
		}
		// A complaint gone from storage is only updated in the working copy.
		if j := indexOf(user, id); j >= 0 {
			apply(&user[j])
			if err := r.Persist(ctx, user); err != nil {
				return err
			}
		}
	}
	apply(&r.working[i])
	return nil
}

// Delete removes complaint id. Deleting a seed complaint lasts until the next
// reload. Unknown ids are ignored.
func (r *ComplaintRepository) Delete(ctx context.Context, id string) error {
	if err := r.ensureLoaded(ctx); err != nil {
		return err
	}
	i := indexOf(r.working, id)
	if i < 0 {
		return nil
	}
	if !r.IsSeed(id) {
		user, err := r.UserComplaints(ctx)
		if err != nil {
			return err
		}
		if j := indexOf(user, id); j >= 0 {
			if err := r.Persist(ctx, append(user[:j], user[j+1:]...)); err != nil {
				return err
			}
			r.log.Info("complaint deleted", zap.String("id", id))
		}
	}
	r.working = append(r.working[:i], r.working[i+1:]...)
	return nil
}

// List returns the working copy, loading it on first use.
func (r *ComplaintRepository) List(ctx context.Context) ([]models.Complaint, error) {
	if err := r.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	return cloneAll(r.working), nil
}

// Get returns complaint id from the working copy, or nil when absent.
func (r *ComplaintRepository) Get(ctx context.Context, id string) (*models.Complaint, error) {
	if err := r.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	i := indexOf(r.working, id)
	if i < 0 {
		return nil, nil
	}
	c := r.working[i].Clone()
	return &c, nil
}

func (r *ComplaintRepository) ensureLoaded(ctx context.Context) error {
	if r.loaded {
		return nil
	}
	_, err := r.LoadAll(ctx)
	return err
}

func indexOf(list []models.Complaint, id string) int {
	for i := range list {
		if list[i].ID == id {
			return i
		}
	}
	return -1
}

// normalize copies c and guarantees a non-nil comment list.
func normalize(c models.Complaint) models.Complaint {
	out := c.Clone()
	if out.Comments == nil {
		out.Comments = []string{}
	}
	return out
}

func cloneAll(list []models.Complaint) []models.Complaint {
	out := make([]models.Complaint, len(list))
	for i, c := range list {
		out[i] = c.Clone()
	}
	return out
}
