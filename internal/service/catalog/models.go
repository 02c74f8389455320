package catalog

import "github.com/m04kA/SMC-StudioBooking/internal/domain"

// studiosData формат файла каталога
type studiosData struct {
	Studios []domain.Studio `json:"Studios"`
}

// AreaSuggestion подсказка района с количеством студий в нём
type AreaSuggestion struct {
	Area        string `json:"area"`
	StudioCount int    `json:"studioCount"`
}
