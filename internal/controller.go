package internal

import (
	"context"
	"strings"
	"time"
)

const (
	// fallbackAnswer stands in when the endpoint responds without an
	// answer field. Absence of the field is not an error.
	fallbackAnswer = "I received your message but couldn't generate a response. Please try again."

	// connectivityNotice is the assistant bubble shown for any transport
	// or backend failure.
	connectivityNotice = "Sorry, I encountered an error connecting to the server. Please check your connection and try again."

	// defaultResponseDelay smooths perceived latency. It is applied on the
	// success and failure paths alike so timing does not reveal which
	// branch ran.
	defaultResponseDelay = 800 * time.Millisecond
)

// Controller drives one conversational turn: append the user message, call
// the answer endpoint, extract referrals, append the assistant message.
type Controller struct {
	store  *HistoryStore
	client AnswerClient
	delay  func()
}

// NewController wires a controller over a store and an answer client. A nil
// delay gets the default artificial response delay; tests pass a no-op.
func NewController(store *HistoryStore, client AnswerClient, delay func()) *Controller {
	if delay == nil {
		delay = func() { time.Sleep(defaultResponseDelay) }
	}
	return &Controller{
		store:  store,
		client: client,
		delay:  delay,
	}
}

// SendMessage runs a full turn against the session that is current when the
// call is made. It is a silent no-op on blank text, on a missing current
// session, and while another turn is still in flight.
//
// The target session id is captured here, at send time, so a slow response
// is appended to the session the user was in when they asked, not whichever
// session is current once the response lands.
func (c *Controller) SendMessage(ctx context.Context, text string) {
	if strings.TrimSpace(text) == "" {
		return
	}
	sessionID := c.store.CurrentSessionID()
	if sessionID == "" {
		return
	}
	if !c.store.tryBeginLoading() {
		LogDebug("Dropping message, a turn is already in flight")
		return
	}

	// Optimistic append; the user sees their message before the network
	// round trip completes.
	c.store.AppendMessageTo(sessionID, NewMessage{Content: text, IsUser: true})

	response, err := c.client.Ask(ctx, sessionID, text)
	c.delay()

	if err != nil {
		LogWarn("Answer request failed: %v", err)
		c.store.AppendMessageTo(sessionID, NewMessage{
			Content: connectivityNotice,
			Error:   true,
		})
		c.store.SetLoading(false)
		return
	}

	answer := response.Answer
	if answer == "" {
		answer = fallbackAnswer
	}

	c.store.AppendMessageTo(sessionID, NewMessage{
		Content: answer,
		Lawyers: ExtractLawyers(answer),
	})
	c.store.SetLoading(false)
}
