package request

type CreateServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description,omitempty"`
	PricePence  int     `json:"price_pence" binding:"required,min=0"`
	Duration    string  `json:"duration" binding:"required"`
}

type UpdateServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description,omitempty"`
	PricePence  int     `json:"price_pence" binding:"required,min=0"`
	Duration    string  `json:"duration" binding:"required"`
}

type SetServiceActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}
