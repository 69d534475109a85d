package dto

type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}

type EmergencyNumber struct {
	Service string `json:"service"`
	Number  int    `json:"number"`
}

type EmergencyNumbersResponse struct {
	Message string            `json:"message"`
	Options []EmergencyNumber `json:"options"`
}
