package search_showtimes

import (
	"github.com/m04kA/SMC-ShowtimeService/internal/domain"
)

// Request модель запроса поиска сеансов
type Request struct {
	Session  *domain.Session       // nil для анонимного поиска
	Criteria domain.FilterCriteria // Фильтры, пустые поля не ограничивают выборку
	Sort     domain.SortState      // Активная сортировка, нулевое значение - без сортировки
	Refresh  bool                  // Игнорировать кэш снапшота

	Selection *Selection // Отмеченные для bulk-операций сеансы, nil если ничего не отмечено
}

// Selection отмеченные сеансы и условия поиска, при которых их отметили
type Selection struct {
	IDs      []string
	Criteria domain.FilterCriteria
	Sort     domain.SortState
}

// Response модель ответа
type Response struct {
	Showtimes []domain.Showtime      // Отфильтрованные и отсортированные сеансы
	Facets    Facets                 // Варианты для фильтров, по полному снапшоту
	Warnings  []DataIntegrityWarning // Пропущенные записи
	Total     int                    // Размер снапшота

	Selected         []string // Отмеченные сеансы, оставшиеся в выдаче, в ее порядке
	SelectionCleared bool     // Фильтры или сортировка изменились, отметки сброшены
}

// FacetOption вариант фильтра
type FacetOption struct {
	Value string
	Label string
}

// TheaterOption вариант фильтра по номеру зала
type TheaterOption struct {
	Value int
	Label string
}

// Facets списки вариантов для фильтров
type Facets struct {
	Cinemas  []FacetOption
	Theaters []TheaterOption
	Movies   []FacetOption
	Dates    []FacetOption
	Times    []FacetOption
}

// DataIntegrityWarning запись пропущена из-за отсутствующих ссылок
type DataIntegrityWarning struct {
	ShowtimeID string
	Reason     string
}
