package list_pickers

import "github.com/m04kA/SMC-PickerService/internal/service/pickers/models"

// ListPickersResponse HTTP response model
type ListPickersResponse struct {
	Pickers []models.WidgetOptions `json:"pickers"`
}
