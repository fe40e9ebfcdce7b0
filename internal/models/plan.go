package models

import "time"

// SyncStatus статус синхронизации локальной записи с сервером
type SyncStatus string

const (
	// SyncStatusSynced последняя локальная мутация подтверждена сервером
	SyncStatusSynced SyncStatus = "synced"
	// SyncStatusPending локальная мутация ещё не подтверждена сервером
	SyncStatusPending SyncStatus = "pending"
)

// Plan представляет план выходных — основную доменную сущность.
// Хранится локально в durable store и читается оптимистично:
// чтение всегда возвращает последнее локальное состояние,
// независимо от того, подтвердил ли его сервер.
type Plan struct {
	LastModified time.Time  `json:"last_modified"` // LastModified время последней локальной мутации
	ID           string     `json:"id"`            // ID уникальный идентификатор плана (UUID)
	Title        string     `json:"title"`         // Title название плана
	WeekendOf    string     `json:"weekend_of"`    // WeekendOf дата субботы выходных (YYYY-MM-DD)
	SyncStatus   SyncStatus `json:"sync_status"`   // SyncStatus synced | pending
	Activities   []Activity `json:"activities"`    // Activities активности по слотам
}

// Activity представляет одну активность внутри плана
type Activity struct {
	Name  string `json:"name"`            // Name название активности
	Slot  string `json:"slot"`            // Slot временной слот: "sat-am", "sat-pm", "sun-am", "sun-pm"
	Notes string `json:"notes,omitempty"` // Notes опциональные заметки
}

// Clone создает глубокую копию плана
func (p *Plan) Clone() *Plan {
	activities := make([]Activity, len(p.Activities))
	copy(activities, p.Activities)

	return &Plan{
		ID:           p.ID,
		Title:        p.Title,
		WeekendOf:    p.WeekendOf,
		SyncStatus:   p.SyncStatus,
		LastModified: p.LastModified,
		Activities:   activities,
	}
}

// CatalogActivity представляет запись справочника активностей.
// Справочник — advisory read-model: локальная копия может быть в любой
// момент перестроена из ответа сервера, терять её не страшно.
type CatalogActivity struct {
	ID       string `json:"id"`       // ID стабильный идентификатор
	Name     string `json:"name"`     // Name название активности
	Category string `json:"category"` // Category категория
	Indoor   bool   `json:"indoor"`   // Indoor подходит для плохой погоды
}
