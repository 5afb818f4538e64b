package router

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stock-quote-bot/internal/delivery/telegram/app/bot/handlers"
	"stock-quote-bot/internal/delivery/telegram/app/bot/handlers/base"
)

type stubHandler struct {
	*base.BaseHandler
	reply string
	err   error
	seen  []handlers.HandlerParams
}

func newStub(name, command string, typ handlers.HandlerType, reply string) *stubHandler {
	return &stubHandler{
		BaseHandler: &base.BaseHandler{Name: name, Command: command, Type: typ},
		reply:       reply,
	}
}

func (s *stubHandler) Execute(_ context.Context, params handlers.HandlerParams) (handlers.HandlerResult, error) {
	s.seen = append(s.seen, params)
	if s.err != nil {
		return handlers.HandlerResult{}, s.err
	}
	return handlers.HandlerResult{Message: s.reply}, nil
}

func TestRouter_ExactCommandThenFallback(t *testing.T) {
	r := NewRouter()
	cmd := newStub("history", "1", handlers.TypeCommand, "history")
	def := newStub("quote", "", handlers.TypeMessage, "quote")
	r.RegisterHandler(cmd)
	r.RegisterHandler(def)

	res, err := r.Handle(context.Background(), "1", handlers.HandlerParams{Text: "1"})
	require.NoError(t, err)
	assert.Equal(t, "history", res.Message)

	res, err = r.Handle(context.Background(), "11", handlers.HandlerParams{Text: "11"})
	require.NoError(t, err)
	assert.Equal(t, "quote", res.Message)
	require.Len(t, def.seen, 1)
	assert.Equal(t, "11", def.seen[0].Text)

	assert.Equal(t, []string{"1"}, r.GetCommands())
}

func TestRouter_PropagatesHandlerError(t *testing.T) {
	r := NewRouter()
	def := newStub("quote", "", handlers.TypeMessage, "")
	def.err = errors.New("Not Found")
	r.RegisterHandler(def)

	_, err := r.Handle(context.Background(), "NOPE", handlers.HandlerParams{Text: "NOPE"})
	assert.EqualError(t, err, "Not Found")
}

func TestRouter_NoFallback(t *testing.T) {
	r := NewRouter()
	_, err := r.Handle(context.Background(), "AAPL", handlers.HandlerParams{})
	assert.Error(t, err)
}
