package stub

import (
	"strings"
	"sync"
)

// Dish is what the stub stores and returns.
type Dish struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

// Store is an in-memory dish index searched by substring.
type Store struct {
	mu     sync.RWMutex
	nextID int64
	dishes []Dish
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Add(name, category string) Dish {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	d := Dish{ID: s.nextID, Name: name, Category: category}
	s.dishes = append(s.dishes, d)
	return d
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.dishes)
}

// Search matches query case-insensitively against names and categories.
func (s *Store) Search(query string) []Dish {
	q := strings.ToLower(query)
	s.mu.RLock()
	defer s.mu.RUnlock()
	res := []Dish{}
	for _, d := range s.dishes {
		if strings.Contains(strings.ToLower(d.Name), q) || strings.Contains(strings.ToLower(d.Category), q) {
			res = append(res, d)
		}
	}
	return res
}
