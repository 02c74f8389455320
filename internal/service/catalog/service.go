package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

//go:embed data/studios.json
var defaultCatalog []byte

// Service статический каталог студий. Только чтение, после загрузки не меняется.
type Service struct {
	studios []*domain.Studio
	byID    map[int64]*domain.Studio
	areas   []string
}

// NewDefault загружает встроенный каталог
func NewDefault() (*Service, error) {
	return Parse(defaultCatalog)
}

// Load загружает каталог из файла. Пустой путь означает встроенный каталог.
func Load(path string) (*Service, error) {
	if path == "" {
		return NewDefault()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrInvalidCatalog, path, err)
	}
	return Parse(data)
}

// Parse разбирает каталог в формате {"Studios": [...]}
func Parse(data []byte) (*Service, error) {
	var parsed studiosData
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}

	s := &Service{
		studios: make([]*domain.Studio, 0, len(parsed.Studios)),
		byID:    make(map[int64]*domain.Studio, len(parsed.Studios)),
	}

	areaSet := make(map[string]struct{})
	for i := range parsed.Studios {
		studio := &parsed.Studios[i]

		if _, dup := s.byID[studio.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate studio id %d", ErrInvalidCatalog, studio.ID)
		}
		if err := studio.Availability.Open.Validate(); err != nil {
			return nil, fmt.Errorf("%w: studio %d open time: %v", ErrInvalidCatalog, studio.ID, err)
		}
		if err := studio.Availability.Close.Validate(); err != nil {
			return nil, fmt.Errorf("%w: studio %d close time: %v", ErrInvalidCatalog, studio.ID, err)
		}

		s.studios = append(s.studios, studio)
		s.byID[studio.ID] = studio
		areaSet[studio.Location.Area] = struct{}{}
	}

	s.areas = make([]string, 0, len(areaSet))
	for area := range areaSet {
		s.areas = append(s.areas, area)
	}
	sort.Strings(s.areas)

	return s, nil
}

// List все студии в порядке каталога. Возвращается копия среза.
func (s *Service) List() []*domain.Studio {
	result := make([]*domain.Studio, len(s.studios))
	copy(result, s.studios)
	return result
}

// GetByID студия по идентификатору
func (s *Service) GetByID(id int64) (*domain.Studio, error) {
	studio, ok := s.byID[id]
	if !ok {
		return nil, ErrStudioNotFound
	}
	return studio, nil
}

// Areas уникальные районы в алфавитном порядке
func (s *Service) Areas() []string {
	result := make([]string, len(s.areas))
	copy(result, s.areas)
	return result
}

// SuggestAreas районы, содержащие query (без учёта регистра). Пустой запрос ничего не подсказывает.
func (s *Service) SuggestAreas(query string) []AreaSuggestion {
	query = strings.ToLower(strings.TrimSpace(query))
	result := make([]AreaSuggestion, 0)
	if query == "" {
		return result
	}

	for _, area := range s.areas {
		if !strings.Contains(strings.ToLower(area), query) {
			continue
		}
		count := 0
		for _, studio := range s.studios {
			if studio.Location.Area == area {
				count++
			}
		}
		result = append(result, AreaSuggestion{Area: area, StudioCount: count})
	}
	return result
}

// Types фиксированный список категорий студий
func (s *Service) Types() []domain.StudioType {
	result := make([]domain.StudioType, len(domain.StudioTypes))
	copy(result, domain.StudioTypes)
	return result
}
