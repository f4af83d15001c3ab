package memory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gosupply/internal/domain"
	apperror "gosupply/internal/errors"
)

type userRepository struct {
	store *Store
}

// NewUserRepository devolve o repositório de usuários sobre o Store.
func NewUserRepository(store *Store) domain.UserRepository {
	return &userRepository{store: store}
}

func (r *userRepository) Save(_ context.Context, user domain.User) (domain.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, u := range r.store.users {
		if strings.EqualFold(u.Email, user.Email) {
			return domain.User{}, apperror.NewConflictError(fmt.Sprintf("email %s is already registered", user.Email))
		}
	}

	now := time.Now().UTC()
	user.ID = 0
	user.CreatedAt = now
	user.UpdatedAt = now
	return r.store.putUserLocked(user), nil
}

func (r *userRepository) FindByEmail(_ context.Context, email string) (domain.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, u := range r.store.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return domain.User{}, apperror.NewNotFoundError(fmt.Sprintf("user %s not found", email))
}
