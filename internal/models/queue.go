package models

import "time"

// Action тип отложенной мутации
type Action string

const (
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Приоритеты по умолчанию для мутаций в очереди.
// Delete выше остальных: удаление не должно застревать позади
// потока обновлений, иначе пользователь видит "воскресшие" планы.
const (
	PriorityUpdate = 0
	PriorityCreate = 1
	PriorityDelete = 2
)

// MaxRetries потолок попыток для одного элемента очереди.
// После третьей неудачной попытки элемент выбрасывается
// и наружу уходит сигнал sync-abandoned.
const MaxRetries = 3

// ItemState состояние элемента очереди в рамках одного прохода drain
type ItemState string

const (
	// ItemStatePending элемент ждёт следующего прохода drain
	ItemStatePending ItemState = "pending"
	// ItemStateInflight элемент отправляется на сервер прямо сейчас
	ItemStateInflight ItemState = "inflight"
)

// QueueItem представляет одну отложенную мутацию в очереди синхронизации.
// Создаётся только координатором синхронизации, когда мутация не может
// быть немедленно подтверждена сервером (offline или сетевая ошибка).
// Переходы состояний выражены неизменяющими методами: каждый переход
// возвращает новую копию, исходный элемент не мутируется.
type QueueItem struct {
	EnqueuedAt time.Time `json:"enqueued_at"` // EnqueuedAt время постановки в очередь
	ID         string    `json:"id"`          // ID уникальный идентификатор элемента (UUID)
	Action     Action    `json:"action"`      // Action create | update | delete
	EntityRef  string    `json:"entity_ref"`  // EntityRef ID плана, к которому относится мутация
	State      ItemState `json:"state"`       // State pending | inflight
	Payload    []byte    `json:"payload"`     // Payload JSON-снимок плана на момент мутации
	Priority   int       `json:"priority"`    // Priority больший приоритет дренируется раньше
	RetryCount int       `json:"retry_count"` // RetryCount число неудачных попыток
}

// DefaultPriority возвращает приоритет по умолчанию для типа мутации
func DefaultPriority(action Action) int {
	switch action {
	case ActionDelete:
		return PriorityDelete
	case ActionCreate:
		return PriorityCreate
	default:
		return PriorityUpdate
	}
}

// WithInflight возвращает копию элемента в состоянии inflight
func (i QueueItem) WithInflight() QueueItem {
	next := i.clone()
	next.State = ItemStateInflight
	return next
}

// WithFailure возвращает копию элемента после неудачной попытки:
// счётчик увеличен, состояние снова pending (повтор на следующем drain)
func (i QueueItem) WithFailure() QueueItem {
	next := i.clone()
	next.State = ItemStatePending
	next.RetryCount++
	return next
}

// WithPayload возвращает копию элемента с новым payload.
// Используется при коалесценции повторных update той же сущности:
// позиция в очереди (EnqueuedAt, ID) сохраняется, счётчик попыток
// сбрасывается — payload новый, прошлые неудачи к нему не относятся.
func (i QueueItem) WithPayload(payload []byte) QueueItem {
	next := i.clone()
	next.Payload = make([]byte, len(payload))
	copy(next.Payload, payload)
	next.RetryCount = 0
	return next
}

// Exhausted сообщает, исчерпал ли элемент лимит попыток
func (i QueueItem) Exhausted() bool {
	return i.RetryCount >= MaxRetries
}

// Before определяет порядок дренирования: сначала больший приоритет,
// внутри приоритета — раньше поставленные; ID как детерминированный
// tiebreak при равных временах.
func (i QueueItem) Before(other QueueItem) bool {
	if i.Priority != other.Priority {
		return i.Priority > other.Priority
	}
	if !i.EnqueuedAt.Equal(other.EnqueuedAt) {
		return i.EnqueuedAt.Before(other.EnqueuedAt)
	}
	return i.ID < other.ID
}

func (i QueueItem) clone() QueueItem {
	next := i
	next.Payload = make([]byte, len(i.Payload))
	copy(next.Payload, i.Payload)
	return next
}
