package location

// lookupResponse ответ сервиса IP-геолокации (формат ip-api.com)
type lookupResponse struct {
	Status  string  `json:"status"` // success | fail
	Message string  `json:"message"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}
