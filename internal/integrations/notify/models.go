package notify

// QuoteLine строка сметы в письме
type QuoteLine struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

// QuoteEmail полезная нагрузка письма со сметой. Шаблонизация и доставка —
// забота почтового релея; сервис отправляет только данные.
type QuoteEmail struct {
	To           string `json:"to"`
	CustomerName string `json:"customer_name"`
	Postcode     string `json:"postcode"`
	AddressLine1 string `json:"address_line1"`

	Frequency string `json:"frequency"`

	Lines                  []QuoteLine `json:"lines"`
	SubtotalBeforeDiscount float64     `json:"subtotal_before_discount"`
	Discount               float64     `json:"discount"`
	GrandTotal             float64     `json:"grand_total"`

	// ScheduledDate в формате YYYY-MM-DD; nil при выборе ASAP
	ScheduledDate *string `json:"scheduled_date"`
	ASAP          bool    `json:"asap"`
}

// ErrorResponse модель ошибки от релея
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
