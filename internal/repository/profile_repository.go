package repository

import (
	"sync"

	"github.com/leetmentor/bot/internal/domain"
)

// profileRepository implements domain.ProfileRepository with an
// in-memory map keyed by chat ID. Display cache only.
type profileRepository struct {
	mu       sync.Mutex
	profiles map[int64]*domain.UserProfileRecord
}

// NewProfileRepository creates a new in-memory profile repository
func NewProfileRepository() domain.ProfileRepository {
	return &profileRepository{
		profiles: make(map[int64]*domain.UserProfileRecord),
	}
}

// Find returns a copy of the last-seen profile for the chat, if any
func (r *profileRepository) Find(chatID int64) (*domain.UserProfileRecord, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.profiles[chatID]
	if !ok {
		return nil, false
	}
	copied := *record
	return &copied, true
}

// Save stores the record, overwriting any previous one for the chat
func (r *profileRepository) Save(record *domain.UserProfileRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *record
	r.profiles[record.ChatID] = &copied
}

// Count returns the number of chats with a stored profile
func (r *profileRepository) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.profiles)
}
