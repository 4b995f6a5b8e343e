package whatsapp

import (
	"errors"
	"fmt"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// ErrSendFailed возвращается при ошибке отправки сообщения
var ErrSendFailed = errors.New("whatsapp client: failed to send message")

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client best-effort отправитель WhatsApp сообщений через Twilio.
// Доставка не гарантируется и не подтверждается.
type Client struct {
	api  *twilio.RestClient
	from string
	log  Logger
}

// NewClient создает новый экземпляр клиента WhatsApp
func NewClient(accountSID, authToken, from string, log Logger) *Client {
	return &Client{
		api: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSID,
			Password: authToken,
		}),
		from: from,
		log:  log,
	}
}

// SendMessage отправляет сообщение на номер клиентки
func (c *Client) SendMessage(to, body string) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo("whatsapp:" + to)
	params.SetFrom("whatsapp:" + c.from)
	params.SetBody(body)

	resp, err := c.api.Api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("%w: to=%s: %v", ErrSendFailed, to, err)
	}

	if resp.Sid != nil {
		c.log.Info("WhatsApp message sent to %s, sid=%s", to, *resp.Sid)
	} else {
		c.log.Warn("WhatsApp message sent to %s, but no SID returned", to)
	}
	return nil
}
