package store

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/avc-dev/brevly/internal/model"
)

// Store хранит ссылки и отчёты в памяти; используется без DATABASE_DSN и в тестах
type Store struct {
	links      map[string]*model.Link
	byShortURL map[string]string
	byOriginal map[string]string
	sequence   map[string]uint64
	nextSeq    uint64
	reports    []model.Report
	mutex      sync.Mutex
	now        func() time.Time
}

// NewStore создает пустое in-memory хранилище
func NewStore() *Store {
	return &Store{
		links:      make(map[string]*model.Link),
		byShortURL: make(map[string]string),
		byOriginal: make(map[string]string),
		sequence:   make(map[string]uint64),
		now:        time.Now,
	}
}

// CreateOrGetLink создает ссылку или возвращает существующую для того же оригинального URL.
// Весь путь проверок и вставки выполняется под одной блокировкой.
func (s *Store) CreateOrGetLink(_ context.Context, link model.Link) (model.Link, bool, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if id, ok := s.byOriginal[link.OriginalURL]; ok {
		return *s.links[id], false, nil
	}

	if _, taken := s.byShortURL[link.ShortURL]; taken {
		return model.Link{}, false, fmt.Errorf("short URL %s: %w", link.ShortURL, ErrShortURLTaken)
	}

	if _, exists := s.links[link.ID]; exists {
		return model.Link{}, false, fmt.Errorf("link %s: %w", link.ID, ErrDuplicateEntry)
	}

	now := s.now().UTC()
	stored := link
	stored.AccessCount = 0
	stored.CreatedAt = now
	stored.UpdatedAt = now

	s.links[stored.ID] = &stored
	s.byShortURL[stored.ShortURL] = stored.ID
	s.byOriginal[stored.OriginalURL] = stored.ID
	s.nextSeq++
	s.sequence[stored.ID] = s.nextSeq

	return stored, true, nil
}

func (s *Store) GetLinkByID(_ context.Context, id string) (model.Link, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	link, ok := s.links[id]
	if !ok {
		return model.Link{}, fmt.Errorf("link %s: %w", id, ErrNotFound)
	}

	return *link, nil
}

func (s *Store) GetLinkByShortURL(_ context.Context, shortURL string) (model.Link, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	id, ok := s.byShortURL[shortURL]
	if !ok {
		return model.Link{}, fmt.Errorf("short URL %s: %w", shortURL, ErrNotFound)
	}

	return *s.links[id], nil
}

// ListLinks возвращает страницу ссылок (новые первыми) и общее количество
func (s *Store) ListLinks(_ context.Context, limit, offset int) ([]model.Link, int, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	all := s.sortedLinks()
	total := len(all)

	offset = max(offset, 0)
	if limit < 1 || offset >= total {
		return []model.Link{}, total, nil
	}

	end := min(offset+limit, total)

	return all[offset:end], total, nil
}

func (s *Store) ListAllLinks(_ context.Context) ([]model.Link, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.sortedLinks(), nil
}

func (s *Store) DeleteLink(_ context.Context, id string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	link, ok := s.links[id]
	if !ok {
		return fmt.Errorf("link %s: %w", id, ErrNotFound)
	}

	delete(s.byShortURL, link.ShortURL)
	delete(s.byOriginal, link.OriginalURL)
	delete(s.sequence, id)
	delete(s.links, id)

	return nil
}

// IncrementAccessCount атомарно увеличивает счётчик переходов и возвращает обновлённую ссылку
func (s *Store) IncrementAccessCount(_ context.Context, shortURL string) (model.Link, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	id, ok := s.byShortURL[shortURL]
	if !ok {
		return model.Link{}, fmt.Errorf("short URL %s: %w", shortURL, ErrNotFound)
	}

	link := s.links[id]
	link.AccessCount++
	link.UpdatedAt = s.now().UTC()

	return *link, nil
}

func (s *Store) CreateReport(_ context.Context, report model.Report) (model.Report, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for _, existing := range s.reports {
		if existing.FileName == report.FileName {
			return model.Report{}, fmt.Errorf("report %s: %w", report.FileName, ErrDuplicateEntry)
		}
	}

	report.CreatedAt = s.now().UTC()
	s.reports = append(s.reports, report)

	return report, nil
}

// ListReports возвращает отчёты, новые первыми
func (s *Store) ListReports(_ context.Context) ([]model.Report, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	reports := make([]model.Report, len(s.reports))
	for i, report := range s.reports {
		reports[len(s.reports)-1-i] = report
	}

	return reports, nil
}

// sortedLinks вызывается под блокировкой; порядок вставки совпадает с порядком created_at
func (s *Store) sortedLinks() []model.Link {
	links := make([]model.Link, 0, len(s.links))
	for _, link := range s.links {
		links = append(links, *link)
	}

	slices.SortFunc(links, func(a, b model.Link) int {
		return cmp.Compare(s.sequence[b.ID], s.sequence[a.ID])
	})

	return links
}
