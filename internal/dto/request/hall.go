package request

type CreateHallRequest struct {
	Name        string   `json:"name" validate:"required,min=2,max=100"`
	Description string   `json:"description" validate:"max=2000"`
	Capacity    int      `json:"capacity" validate:"required,gt=0"`
	Equipment   []string `json:"equipment_included"`
	Images      []string `json:"images"`
	HourlyRate  float64  `json:"hourly_rate" validate:"gte=0"`
	IsAvailable bool     `json:"is_available"`
	Location    string   `json:"location" validate:"max=200"`
	Rules       string   `json:"rules" validate:"max=2000"`
}

type UpdateHallRequest struct {
	Name        string   `json:"name" validate:"required,min=2,max=100"`
	Description string   `json:"description" validate:"max=2000"`
	Capacity    int      `json:"capacity" validate:"required,gt=0"`
	Equipment   []string `json:"equipment_included"`
	Images      []string `json:"images"`
	HourlyRate  float64  `json:"hourly_rate" validate:"gte=0"`
	IsAvailable bool     `json:"is_available"`
	Location    string   `json:"location" validate:"max=200"`
	Rules       string   `json:"rules" validate:"max=2000"`
}
