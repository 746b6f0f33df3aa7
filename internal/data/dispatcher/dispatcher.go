package dispatcher

import (
	"github.com/atomicstack/chat-popup-control/internal/backend"
	"github.com/atomicstack/chat-popup-control/internal/chat"
	"github.com/atomicstack/chat-popup-control/internal/menu"
	"github.com/atomicstack/chat-popup-control/internal/state"
)

type Result struct {
	ConversationsUpdated bool
}

type Dispatcher struct {
	conversations state.ConversationStore
}

func New(c state.ConversationStore) *Dispatcher {
	return &Dispatcher{conversations: c}
}

func (d *Dispatcher) Handle(evt backend.Event) Result {
	var res Result
	if evt.Err != nil {
		return res
	}
	switch evt.Kind {
	case backend.KindConversations:
		if snapshot, ok := evt.Data.(chat.Snapshot); ok {
			d.conversations.SetEntries(menu.ConversationEntriesFromChat(snapshot.Conversations))
			d.conversations.SetFetchedAt(snapshot.FetchedAt)
			res.ConversationsUpdated = true
		}
	}
	return res
}
