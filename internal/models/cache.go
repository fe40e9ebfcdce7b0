package models

import (
	"net/url"
	"time"
)

// CacheEntry представляет сохранённый снимок HTTP-ответа.
// Запись принадлежит ровно одному namespace и перезаписывается
// целиком при повторном успешном fetch — частичных обновлений нет.
type CacheEntry struct {
	StoredAt time.Time         `json:"stored_at"` // StoredAt время записи снимка
	Method   string            `json:"method"`    // Method HTTP метод (кешируется только GET)
	URL      string            `json:"url"`       // URL нормализованный URL запроса
	Headers  map[string]string `json:"headers"`   // Headers заголовки ответа
	Body     []byte            `json:"body"`      // Body тело ответа
	Status   int               `json:"status"`    // Status HTTP статус (кешируются только 200)
}

// CacheKey возвращает ключ записи в namespace: метод + нормализованный URL.
// Фрагмент отбрасывается: он не уходит на сервер и не должен плодить
// дубликаты одного и того же ответа. Некорректный URL остаётся как есть.
func CacheKey(method, rawURL string) string {
	return method + " " + NormalizeURL(rawURL)
}

// NormalizeURL приводит URL к канонической строке без фрагмента.
func NormalizeURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	u.Fragment = ""
	u.RawFragment = ""
	return u.String()
}
