package iocli

//go:generate moq -out io_mock.go . IO

// IO абстрагирует терминал клиента weekendly: вывод планов и статуса
// синхронизации, ввод логина и скрытый ввод пароля. Write отдаёт
// сырое тело ответа команды fetch без форматирования.
type IO interface {
	Println(a ...any)
	Printf(format string, a ...any)
	ReadInput(prompt string) (string, error)
	ReadPassword(prompt string) (string, error)
	Write(p []byte) (n int, err error)
}
