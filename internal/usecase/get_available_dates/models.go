package get_available_dates

import "time"

// Request модель запроса на подбор дат уборки
type Request struct {
	Postcode     string // Почтовый индекс (допускается частичный ввод)
	AddressLine1 string // Первая строка адреса (нужна для особого случая Meare)
}

// Response модель ответа со списком предлагаемых дат.
// Даты уникальны по календарному дню и отсортированы по возрастанию; каждая
// попадает в окно [завтра; сегодня+42 дня].
type Response struct {
	Dates []time.Time
}
