package domain

import "github.com/m04kA/SMC-StudioBooking/pkg/types"

// StudioType категория студии
type StudioType string

const (
	TypeRecordingStudio StudioType = "Recording Studio"
	TypePhotography     StudioType = "Photography"
	TypeRehearsalSpace  StudioType = "Rehearsal Space"
	TypeArtStudio       StudioType = "Art Studio"
)

// StudioTypes фиксированный список категорий в порядке отображения
var StudioTypes = []StudioType{
	TypeRecordingStudio,
	TypePhotography,
	TypeRehearsalSpace,
	TypeArtStudio,
}

// IsValid проверяет, что категория из фиксированного списка
func (t StudioType) IsValid() bool {
	for _, known := range StudioTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Studio справочная запись каталога. Не изменяется во время работы сервиса.
// JSON-имена полей совпадают со статическим каталогом.
type Studio struct {
	ID           int64          `json:"Id"`
	Name         string         `json:"Name"`
	Type         StudioType     `json:"Type"`
	Location     Location       `json:"Location"`
	Contact      Contact        `json:"Contact"`
	Amenities    []string       `json:"Amenities"`
	Description  string         `json:"Description"`
	PricePerHour float64        `json:"PricePerHour"`
	Currency     string         `json:"Currency"`
	Availability OperatingHours `json:"Availability"`
	Rating       float64        `json:"Rating"`
	Images       []string       `json:"Images"`
}

// Location адрес и координаты студии
type Location struct {
	City        string      `json:"City"`
	Area        string      `json:"Area"`
	Address     string      `json:"Address"`
	Coordinates Coordinates `json:"Coordinates"`
}

// Coordinates географические координаты в градусах
type Coordinates struct {
	Latitude  float64 `json:"Latitude"`
	Longitude float64 `json:"Longitude"`
}

// Contact контакты студии
type Contact struct {
	Phone string `json:"Phone"`
	Email string `json:"Email"`
}

// OperatingHours часы работы студии (открытие включительно, закрытие исключительно)
type OperatingHours struct {
	Open  types.TimeString `json:"Open"`
	Close types.TimeString `json:"Close"`
}

// Contains проверяет, что время попадает в [Open, Close)
func (h OperatingHours) Contains(t types.TimeString) bool {
	minutes := t.Minutes()
	return minutes >= h.Open.Minutes() && minutes < h.Close.Minutes()
}
