package api

import "time"

// Plan представляет план выходных в wire-формате
type Plan struct {
	LastModified time.Time  `json:"last_modified"` // LastModified время последнего изменения (клиентское)
	ID           string     `json:"id"`            // ID уникальный идентификатор плана (UUID)
	Title        string     `json:"title"`         // Title название плана (например, "Поход в горы")
	WeekendOf    string     `json:"weekend_of"`    // WeekendOf дата субботы планируемых выходных (YYYY-MM-DD)
	Activities   []Activity `json:"activities"`    // Activities активности, распределённые по слотам
}

// Activity представляет одну активность внутри плана
type Activity struct {
	Name  string `json:"name"`            // Name название активности (например, "Бранч", "Велопрогулка")
	Slot  string `json:"slot"`            // Slot временной слот: "sat-am", "sat-pm", "sun-am", "sun-pm"
	Notes string `json:"notes,omitempty"` // Notes опциональные заметки
}

// PlanResponse представляет ответ сервера на создание/обновление плана
type PlanResponse struct {
	Plan    Plan   `json:"plan"`    // Plan сохранённое состояние плана на сервере
	Message string `json:"message"` // Message сообщение об успехе
}

// ListPlansResponse представляет ответ со списком планов пользователя
type ListPlansResponse struct {
	Plans []Plan `json:"plans"`
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`             // описание ошибки
	Message string `json:"message,omitempty"` // дополнительное сообщение
}
