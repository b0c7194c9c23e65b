package repositories

import (
	"fmt"

	"github.com/desertthunder/catalog/internal/models"
	"github.com/desertthunder/catalog/internal/shared"
)

// CreateUser appends a new user. Mobile numbers are not checked for uniqueness.
func (r *CatalogRepository) CreateUser(name, mobile string) *models.User {
	r.mu.Lock()
	defer r.mu.Unlock()

	user := models.NewUser(len(r.users)+1, name, mobile)
	user.SetID(shared.GenerateID())

	r.users = append(r.users, user)
	index(r.usersByMobile, mobile, user)

	r.logger.Debug("created user", "mobile", mobile, "sequence", user.Sequence())
	return user
}

// GetUser returns the first user created with mobile.
func (r *CatalogRepository) GetUser(mobile string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.userByMobile(mobile)
}

// CreatorPlaylist returns the playlist most recently created by the user, or nil if they have none.
func (r *CatalogRepository) CreatorPlaylist(mobile string) (*models.Playlist, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, err := r.userByMobile(mobile)
	if err != nil {
		return nil, err
	}
	return user.LatestPlaylist(), nil
}

// UserPlaylists returns every playlist the user created, oldest first.
func (r *CatalogRepository) UserPlaylists(mobile string) ([]*models.Playlist, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, err := r.userByMobile(mobile)
	if err != nil {
		return nil, err
	}
	return user.Playlists(), nil
}

// userByMobile must be called with r.mu held.
func (r *CatalogRepository) userByMobile(mobile string) (*models.User, error) {
	user, ok := r.usersByMobile[mobile]
	if !ok {
		r.logger.Warn("user lookup failed", "mobile", mobile)
		return nil, fmt.Errorf("%w: %s", shared.ErrUserNotFound, mobile)
	}
	return user, nil
}
