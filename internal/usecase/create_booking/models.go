package create_booking

import (
	"time"

	"github.com/avalonwc/AWC-BookingService/internal/domain"
)

// Request модель запроса на создание заявки
type Request struct {
	// Контактные данные
	CustomerName string  // Имя клиента
	Email        string  // Email для письма со сметой
	Phone        string  // Телефон
	Postcode     string  // Почтовый индекс
	AddressLine1 string  // Первая строка адреса
	Town         *string // Населённый пункт (опционально)

	// Выбор по форме
	Category           domain.PropertyCategory // Категория объекта
	PropertyType       domain.PropertyType     // Тип дома
	BedroomBand        domain.BedroomBand      // Диапазон спален
	Frequency          domain.Frequency        // Периодичность уборки
	HasConservatory    bool                    // Зимний сад
	HasExtension       bool                    // Пристройка
	GutterClearing     bool                    // Прочистка водостоков
	FasciaSoffitGutter bool                    // Мойка фасадных досок и водостоков

	// Первая уборка: либо конкретная дата из предложенных, либо ASAP
	ScheduledDate *time.Time
	ASAP          bool

	Notes *string // Дополнительные заметки (опционально)
}

// Response модель ответа с созданной заявкой
type Response struct {
	ID int64 // ID созданной заявки

	CustomerName string
	Email        string
	Postcode     string
	AddressLine1 string

	// Смета, пересчитанная на сервере
	Lines                  []domain.PriceLine
	SubtotalBeforeDiscount float64
	Discount               float64
	GrandTotal             float64

	ScheduledDate *time.Time
	ASAP          bool

	Status string // Статус заявки

	CreatedAt time.Time
	UpdatedAt time.Time
}
