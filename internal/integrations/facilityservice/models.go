package facilityservice

// Facility модель площадки из FacilityService
type Facility struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	OwnerID  string `json:"owner_id"` // Идентификатор владельца из identity-провайдера
	Status   string `json:"status"`   // Статус модерации (approved, pending, rejected)
	City     string `json:"city"`
	Address  string `json:"address"`
	IsActive bool   `json:"is_active"`
}

// Court модель корта из FacilityService
type Court struct {
	ID           int64   `json:"id"`
	FacilityID   int64   `json:"facility_id"`
	Name         string  `json:"name"`
	SportType    string  `json:"sport_type"`
	PricePerHour float64 `json:"price_per_hour"`
	IsActive     bool    `json:"is_active"`
}

// ErrorResponse модель ошибки от FacilityService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
