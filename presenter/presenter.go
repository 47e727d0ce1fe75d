package presenter

// Action помечает, к какому шагу викторины относится кнопка. Метка
// расшифровывается ровно один раз на границе транспорта: обработчик,
// зарегистрированный на неё, получает только полезную нагрузку кнопки.
type Action string

const (
	// ActionTopic — выбор темы; Data содержит имя темы.
	ActionTopic Action = "topic"
	// ActionAnswer — выбор варианта ответа; Data содержит индекс варианта.
	ActionAnswer Action = "answer"
	// ActionReport — выбор формата отчёта; Data содержит "text" или "pdf".
	ActionReport Action = "report"
)

// Button — одна кнопка выбора, показываемая пользователю.
type Button struct {
	Label  string // Надпись на кнопке.
	Action Action // Шаг, который кнопка инициирует.
	Data   string // Полезная нагрузка кнопки.
}

// Presenter абстрагирует доставку контента пользователю текущего действия.
// Ядро викторины не знает, как сообщения доставляются и повторяются ли
// попытки: любая ошибка доставки логируется на месте вызова и не откатывает
// состояние сессии — потерянное сообщение пользователь компенсирует
// следующим действием.
type Presenter interface {
	// ShowChoices показывает текст с кнопками выбора и, если путь непустой,
	// картинкой.
	ShowChoices(text string, buttons []Button, imagePath string) error
	// ShowText показывает обычное текстовое сообщение.
	ShowText(text string) error
	// ShowDocument отправляет файл с подписью.
	ShowDocument(path, caption string) error
	// Notify показывает короткое всплывающее уведомление.
	Notify(short string) error
}
