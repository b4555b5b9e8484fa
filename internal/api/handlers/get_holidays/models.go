package get_holidays

import "github.com/m04kA/SMC-PickerService/internal/domain"

// HolidaysResponse HTTP response model
type HolidaysResponse struct {
	Year     int       `json:"year"`
	Count    int       `json:"count"`
	Holidays []Holiday `json:"holidays"`
}

// Holiday модель праздника
type Holiday struct {
	Date string `json:"date"`
	Name string `json:"name"`
}

// FromDomain конвертирует набор праздников в HTTP response
func FromDomain(set domain.HolidaySet) *HolidaysResponse {
	list := set.Holidays()
	holidays := make([]Holiday, len(list))
	for i, h := range list {
		holidays[i] = Holiday{Date: h.Date.String(), Name: h.Name}
	}

	return &HolidaysResponse{
		Year:     set.Year(),
		Count:    len(holidays),
		Holidays: holidays,
	}
}
