package holidaysjp

// YearResponse ответ эндпоинта /{year}/date.json
// Ключи - даты в формате YYYY-MM-DD, значения - названия праздников
type YearResponse map[string]string
