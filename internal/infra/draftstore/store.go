// Package draftstore хранит черновики бронирования между HTTP запросами.
// Хранилище короткоживущее: черновик переживает перерыв на аутентификацию,
// но не рестарт сервиса - ровно как sessionStorage в браузере.
package draftstore

import (
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
)

// Store TTL-хранилище черновиков, ключ - uuid-токен сессии мастера
type Store struct {
	cache *gocache.Cache
	ttl   time.Duration
}

// NewStore создает хранилище с заданным TTL черновика
// Каждая запись черновика продлевает TTL - активная сессия не истекает
func NewStore(ttl time.Duration) *Store {
	return &Store{
		cache: gocache.New(ttl, 2*ttl),
		ttl:   ttl,
	}
}

// Save сохраняет черновик, продлевая его TTL
func (s *Store) Save(draft *domain.BookingDraft) {
	s.cache.Set(draft.Token, draft, s.ttl)
}

// Get возвращает черновик по токену
func (s *Store) Get(token string) (*domain.BookingDraft, error) {
	v, ok := s.cache.Get(token)
	if !ok {
		return nil, ErrDraftNotFound
	}
	return v.(*domain.BookingDraft), nil
}

// Delete удаляет черновик
func (s *Store) Delete(token string) {
	s.cache.Delete(token)
}
