package api

// CatalogActivity представляет одну запись справочника активностей.
// Справочник — это read-only данные, клиент кеширует их локально
// и перестраивает кеш из этого ответа при необходимости.
type CatalogActivity struct {
	ID       string `json:"id"`       // ID стабильный идентификатор активности
	Name     string `json:"name"`     // Name название активности
	Category string `json:"category"` // Category категория ("outdoor", "food", "culture", ...)
	Indoor   bool   `json:"indoor"`   // Indoor подходит ли активность для плохой погоды
}

// CatalogResponse представляет ответ со справочником активностей
type CatalogResponse struct {
	Activities []CatalogActivity `json:"activities"`
}
