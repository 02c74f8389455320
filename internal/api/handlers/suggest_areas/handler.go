package suggest_areas

import (
	"net/http"

	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StudioBooking/internal/service/catalog"
)

// SuggestionsResponse HTTP response model
type SuggestionsResponse struct {
	Query       string                   `json:"query"`
	Suggestions []catalog.AreaSuggestion `json:"suggestions"`
	Areas       []string                 `json:"areas"`
}

type Handler struct {
	catalog CatalogService
	logger  Logger
}

func NewHandler(catalog CatalogService, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  logger,
	}
}

// Handle GET /api/v1/studios/areas?q=
// Пустой q возвращает только список всех районов
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	handlers.RespondJSON(w, http.StatusOK, &SuggestionsResponse{
		Query:       query,
		Suggestions: h.catalog.SuggestAreas(query),
		Areas:       h.catalog.Areas(),
	})
}
