package models

import "sync"

type Buku struct {
	Id     int64  `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
}

// BukuStore adalah penyimpanan sementara untuk contoh CRUD buku.
// Disuntikkan ke controller, bukan variabel global paket.
type BukuStore struct {
	mu     sync.Mutex
	nextId int64
	items  []Buku
}

func NewBukuStore() *BukuStore {
	return &BukuStore{
		nextId: 3,
		items: []Buku{
			{Id: 1, Title: "Bumi Manusia", Author: "Pramoedya Ananta Toer"},
			{Id: 2, Title: "Laskar Pelangi", Author: "Andrea Hirata"},
		},
	}
}

func (s *BukuStore) All() []Buku {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Buku, len(s.items))
	copy(out, s.items)
	return out
}

func (s *BukuStore) Find(id int64) (Buku, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.items {
		if b.Id == id {
			return b, true
		}
	}
	return Buku{}, false
}

func (s *BukuStore) Create(title, author string) Buku {
	s.mu.Lock()
	defer s.mu.Unlock()
	b := Buku{Id: s.nextId, Title: title, Author: author}
	s.nextId++
	s.items = append(s.items, b)
	return b
}

func (s *BukuStore) Update(id int64, title, author string) (Buku, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].Id == id {
			s.items[i].Title = title
			s.items[i].Author = author
			return s.items[i], true
		}
	}
	return Buku{}, false
}

func (s *BukuStore) Delete(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].Id == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}
