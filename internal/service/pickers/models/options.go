package models

// Response модели: то, что получает виджет в браузере

// WidgetOptions объект настроек виджета
// Относительные даты уже разрешены на момент запроса
type WidgetOptions struct {
	ID                string          `json:"id"`
	Handle            string          `json:"handle"`
	Capabilities      []string        `json:"capabilities"`
	Locale            string          `json:"locale,omitempty"`
	DateFormat        string          `json:"dateFormat,omitempty"`
	DefaultDate       string          `json:"defaultDate,omitempty"`
	MinDate           string          `json:"minDate,omitempty"`
	MaxDate           string          `json:"maxDate,omitempty"`
	Disable           []DisableEntry  `json:"disable,omitempty"`
	EnableTime        bool            `json:"enableTime"`
	NoCalendar        bool            `json:"noCalendar"`
	MinTime           string          `json:"minTime,omitempty"`
	MaxTime           string          `json:"maxTime,omitempty"`
	Time24hr          bool            `json:"time_24hr"`
	HighlightHolidays bool            `json:"highlightHolidays"`
	Hooks             []string        `json:"hooks"`
	TimeControl       *ControlBinding `json:"timeControl,omitempty"`
}

// DisableEntry одно правило блокировки в формате виджета
// Заполнено ровно одно из: date, from/to, weekday
type DisableEntry struct {
	Date    string `json:"date,omitempty"`
	From    string `json:"from,omitempty"`
	To      string `json:"to,omitempty"`
	Weekday *int   `json:"weekday,omitempty"`
}

// ControlBinding связанный элемент управления временем
// Для select Options содержит начальный список до первого события
type ControlBinding struct {
	ID      string   `json:"id"`
	Kind    string   `json:"kind"`
	Options []string `json:"options,omitempty"`
}

// EventResult результат обработки события виджета
// Пустые WidgetTime и Control означают, что ничего менять не нужно
type EventResult struct {
	PickerID   string         `json:"pickerId"`
	Event      string         `json:"event"`
	Date       string         `json:"date,omitempty"`
	Tier       string         `json:"tier,omitempty"`
	WidgetTime *TimeRange     `json:"widgetTime,omitempty"`
	Control    *ControlUpdate `json:"control,omitempty"`
}

// Applied сообщает, изменило ли событие что-либо
func (r *EventResult) Applied() bool {
	return r.WidgetTime != nil || r.Control != nil
}

// TimeRange окно времени HH:MM
type TimeRange struct {
	Min string `json:"min"`
	Max string `json:"max"`
}

// ControlUpdate изменение связанного элемента
// Для input заполняются Min/Max, для select список Options заменяет текущий
type ControlUpdate struct {
	ID      string     `json:"id"`
	Kind    string     `json:"kind"`
	Range   *TimeRange `json:"range,omitempty"`
	Options []string   `json:"options,omitempty"`
	Clear   bool       `json:"clear,omitempty"`
}
