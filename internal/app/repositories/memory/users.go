package memory

import (
	"context"

	"github.com/qasyoun/qasyounextra/internal/app/models"
	"github.com/qasyoun/qasyounextra/internal/app/repositories"
)

// GetUser returns the user with id, or nil.
func (r *Repository) GetUser(_ context.Context, id int64) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.users.lookup(id), nil
}

// GetUserByUsername is a case-sensitive exact match.
func (r *Repository) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.users.find(func(u *models.User) bool { return u.Username == username }), nil
}

// GetUserByEmail is a case-sensitive exact match.
func (r *Repository) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.users.find(func(u *models.User) bool { return u.Email == email }), nil
}

// GetTeachers returns users whose role is teacher, in creation order.
func (r *Repository) GetTeachers(_ context.Context) ([]*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.users.filter(func(u *models.User) bool { return u.Role == models.RoleTeacher }), nil
}

// CreateUser stores a new user.
func (r *Repository) CreateUser(_ context.Context, in models.UserInput) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.enforceUniqueness {
		if err := r.checkUserUnique(0, in.Username, in.Email); err != nil {
			return nil, err
		}
	}

	u := models.NewUserRecord(r.users.nextID(), in, r.now())
	return r.users.insert(u.ID, u), nil
}

// UpdateUser replaces the mutable columns of user id. Unknown ids yield nil.
func (r *Repository) UpdateUser(_ context.Context, id int64, upd models.UserUpdate) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.users.get(id)
	if !ok {
		return nil, nil
	}
	if r.enforceUniqueness {
		if err := r.checkUserUnique(id, "", upd.Email); err != nil {
			return nil, err
		}
	}

	u := upd.Apply(existing)
	r.users.rows[id] = u
	return r.users.clone(u), nil
}

// checkUserUnique rejects a username or email already held by a user other
// than self. Empty values are not checked. Callers hold the lock.
func (r *Repository) checkUserUnique(self int64, username, email string) error {
	for _, id := range r.users.order {
		u := r.users.rows[id]
		if u.ID == self {
			continue
		}
		if username != "" && u.Username == username {
			return &repositories.UniqueViolationError{Constraint: repositories.ConstraintUsername}
		}
		if email != "" && u.Email == email {
			return &repositories.UniqueViolationError{Constraint: repositories.ConstraintEmail}
		}
	}
	return nil
}
