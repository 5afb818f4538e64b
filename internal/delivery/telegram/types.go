// internal/delivery/telegram/types.go
package telegram

// ParseModeMarkdown - режим разметки для *жирного* текста
const ParseModeMarkdown = "Markdown"

// Update - обновление из getUpdates
type Update struct {
	UpdateID int      `json:"update_id"`
	Message  *Message `json:"message,omitempty"`
}

// Message - входящее сообщение
type Message struct {
	MessageID int64  `json:"message_id"`
	From      *User  `json:"from,omitempty"`
	Chat      Chat   `json:"chat"`
	Text      string `json:"text"`
}

// User - отправитель
type User struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Chat - чат, в который уходит ответ
type Chat struct {
	ID int64 `json:"id"`
}

// SendMessageRequest - тело sendMessage
type SendMessageRequest struct {
	ChatID    int64  `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode,omitempty"`
}

// APIResponse - общий конверт ответа Bot API
type APIResponse struct {
	OK          bool   `json:"ok"`
	ErrorCode   int    `json:"error_code,omitempty"`
	Description string `json:"description,omitempty"`
	Parameters  *struct {
		RetryAfter int `json:"retry_after"`
	} `json:"parameters,omitempty"`
}

// UpdatesResponse - ответ getUpdates
type UpdatesResponse struct {
	APIResponse
	Result []Update `json:"result"`
}
