package user

import (
	"context"
	"errors"
	"sync"

	"github.com/dmorales/recetario/internal/domain"
	"github.com/dmorales/recetario/internal/repository"
)

// FakeRepository is a stateful in-memory implementation of Repository for
// testing. It holds every collection the deletion cascade touches so the
// transaction semantics can be verified end to end: staged writes apply on
// Commit and evaporate on Rollback.
type FakeRepository struct {
	mu        sync.Mutex
	users     map[string]*domain.User
	Profiles  map[string]*domain.Profile
	Fridges   map[string]*domain.Fridge
	Favorites map[string]*domain.Favorites
	Histories map[string]*domain.History
	Recipes   map[string]*domain.Recipe

	// FailCommit forces the next Commit to error, for rollback tests
	FailCommit bool
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{
		users:     make(map[string]*domain.User),
		Profiles:  make(map[string]*domain.Profile),
		Fridges:   make(map[string]*domain.Fridge),
		Favorites: make(map[string]*domain.Favorites),
		Histories: make(map[string]*domain.History),
		Recipes:   make(map[string]*domain.Recipe),
	}
}

// SeedUser installs an account directly.
func (f *FakeRepository) SeedUser(u domain.User) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[u.ID] = &u
}

// SeedRecipe installs a catalog entry directly.
func (f *FakeRepository) SeedRecipe(r domain.Recipe) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := r
	cp.Ratings = append([]domain.RecipeRating(nil), r.Ratings...)
	f.Recipes[r.ID] = &cp
}

func (f *FakeRepository) CreateUser(ctx context.Context, user *domain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *FakeRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[userID]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *FakeRepository) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *FakeRepository) UpdateUser(ctx context.Context, user domain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[user.ID] = &user
	return nil
}

func (f *FakeRepository) BeginTx(ctx context.Context) (repository.UserTx, error) {
	return &fakeTx{repo: f}, nil
}

// fakeTx stages mutations and applies them all on Commit.
type fakeTx struct {
	repo   *FakeRepository
	staged []func()
	closed bool
}

func (t *fakeTx) stage(op func()) {
	t.staged = append(t.staged, op)
}

func (t *fakeTx) Commit(ctx context.Context) error {
	if t.closed {
		return errors.New(domain.ErrMsgTxClosed)
	}
	t.repo.mu.Lock()
	defer t.repo.mu.Unlock()
	if t.repo.FailCommit {
		t.closed = true
		return errors.New("commit failed")
	}
	for _, op := range t.staged {
		op()
	}
	t.closed = true
	return nil
}

func (t *fakeTx) Rollback(ctx context.Context) error {
	if t.closed {
		return errors.New(domain.ErrMsgTxClosed)
	}
	t.staged = nil
	t.closed = true
	return nil
}

func (t *fakeTx) DeleteUser(ctx context.Context, userID string) error {
	t.stage(func() { delete(t.repo.users, userID) })
	return nil
}

func (t *fakeTx) DeleteProfile(ctx context.Context, userID string) error {
	t.stage(func() { delete(t.repo.Profiles, userID) })
	return nil
}

func (t *fakeTx) DeleteFridge(ctx context.Context, userID string) error {
	t.stage(func() { delete(t.repo.Fridges, userID) })
	return nil
}

func (t *fakeTx) DeleteFavorites(ctx context.Context, userID string) error {
	t.stage(func() { delete(t.repo.Favorites, userID) })
	return nil
}

func (t *fakeTx) DeleteHistory(ctx context.Context, userID string) error {
	t.stage(func() { delete(t.repo.Histories, userID) })
	return nil
}

func (t *fakeTx) GetRecipesRatedBy(ctx context.Context, userID string) ([]domain.Recipe, error) {
	t.repo.mu.Lock()
	defer t.repo.mu.Unlock()
	var out []domain.Recipe
	for _, r := range t.repo.Recipes {
		for _, rating := range r.Ratings {
			if rating.UserID == userID {
				cp := *r
				cp.Ratings = append([]domain.RecipeRating(nil), r.Ratings...)
				out = append(out, cp)
				break
			}
		}
	}
	return out, nil
}

func (t *fakeTx) UpdateRecipe(ctx context.Context, recipe domain.Recipe) error {
	t.stage(func() { t.repo.Recipes[recipe.ID] = &recipe })
	return nil
}
