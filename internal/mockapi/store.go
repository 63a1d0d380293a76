// Package mockapi serves an in-memory /users Resource API. It backs local
// development of the client and the integration tests of the transport,
// repository and controller layers.
package mockapi

import (
	"errors"
	"sync"

	"github.com/dmitrijs2005/userdesk/internal/client/models"
)

var ErrNotFound = errors.New("user not found")

// Store keeps users in insertion order and assigns ids.
type Store struct {
	mu     sync.RWMutex
	users  []models.User
	nextID int64
}

func NewStore(seed ...models.User) *Store {
	s := &Store{nextID: 1}
	for _, u := range seed {
		if u.ID >= s.nextID {
			s.nextID = u.ID + 1
		}
		s.users = append(s.users, u)
	}
	return s
}

func (s *Store) List() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.User, len(s.users))
	copy(out, s.users)
	return out
}

func (s *Store) Get(id int64) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.User{}, ErrNotFound
	}
	return s.users[i], nil
}

// Create ignores u.ID.
func (s *Store) Create(u models.User) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	u.ID = s.nextID
	s.nextID++
	s.users = append(s.users, u)
	return u
}

func (s *Store) Update(id int64, u models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.User{}, ErrNotFound
	}
	u.ID = id
	s.users[i] = u
	return u, nil
}

func (s *Store) Delete(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	s.users = append(s.users[:i], s.users[i+1:]...)
	return nil
}

func (s *Store) indexOf(id int64) int {
	for i, u := range s.users {
		if u.ID == id {
			return i
		}
	}
	return -1
}

// SampleUsers returns the records the mock API starts with.
func SampleUsers() []models.User {
	return []models.User{
		{
			ID: 1, Name: "Leanne Graham", Username: "Bret", Email: "Sincere@april.biz",
			Phone: "1-770-736-8031 x56442", Website: "hildegard.org",
			Address: models.Address{Street: "Kulas Light", Suite: "Apt. 556", City: "Gwenborough", Zipcode: "92998-3874",
				Geo: models.Geo{Lat: "-37.3159", Lng: "81.1496"}},
			Company: models.Company{Name: "Romaguera-Crona", CatchPhrase: "Multi-layered client-server neural-net", BS: "harness real-time e-markets"},
		},
		{
			ID: 2, Name: "Ervin Howell", Username: "Antonette", Email: "Shanna@melissa.tv",
			Phone: "010-692-6593 x09125", Website: "anastasia.net",
			Address: models.Address{Street: "Victor Plains", Suite: "Suite 879", City: "Wisokyburgh", Zipcode: "90566-7771",
				Geo: models.Geo{Lat: "-43.9509", Lng: "-34.4618"}},
			Company: models.Company{Name: "Deckow-Crist", CatchPhrase: "Proactive didactic contingency", BS: "synergize scalable supply-chains"},
		},
		{
			ID: 3, Name: "Clementine Bauch", Username: "Samantha", Email: "Nathan@yesenia.net",
			Phone: "1-463-123-4447", Website: "ramiro.info",
			Address: models.Address{Street: "Douglas Extension", Suite: "Suite 847", City: "McKenziehaven", Zipcode: "59590-4157",
				Geo: models.Geo{Lat: "-68.6102", Lng: "-47.0653"}},
			Company: models.Company{Name: "Romaguera-Jacobson", CatchPhrase: "Face to face bifurcated interface", BS: "e-enable strategic applications"},
		},
	}
}
