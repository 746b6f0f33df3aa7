package events

import "github.com/atomicstack/chat-popup-control/internal/logging"

type ConversationTracer struct{}

type cancelReason string

const (
	ReasonEscape  cancelReason = "escape"
	ReasonClosed  cancelReason = "closed"
	ReasonMissing cancelReason = "missing"
)

var Conversation = ConversationTracer{}

func (ConversationTracer) RenamePrompt(id, name string) {
	logging.Trace("conversation.rename.prompt", map[string]interface{}{"id": id, "name": name})
}

func (ConversationTracer) Focus(id string, cursor int) {
	logging.Trace("conversation.rename.focus", map[string]interface{}{"id": id, "cursor": cursor})
}

func (ConversationTracer) Invalid(id, reason string) {
	logging.Trace("conversation.rename.invalid", map[string]interface{}{"id": id, "reason": reason})
}

func (ConversationTracer) SubmitRename(id, name, token string) {
	logging.Trace("conversation.rename.submit", map[string]interface{}{"id": id, "name": name, "token": token})
}

func (ConversationTracer) SkipRename(id string) {
	logging.Trace("conversation.rename.skip", map[string]interface{}{"id": id})
}

func (ConversationTracer) Rename(id, name string) {
	logging.Trace("conversation.rename", map[string]interface{}{"id": id, "name": name})
}

func (ConversationTracer) Renamed(id, name string) {
	logging.Trace("conversation.rename.done", map[string]interface{}{"id": id, "name": name})
}

func (ConversationTracer) RenameFailed(id string, err error) {
	payload := map[string]interface{}{"id": id}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("conversation.rename.error", payload)
}

func (ConversationTracer) StaleResult(id, token string) {
	logging.Trace("conversation.rename.stale", map[string]interface{}{"id": id, "token": token})
}

func (ConversationTracer) CancelRename(id string, reason cancelReason) {
	logging.Trace("conversation.rename.cancel", map[string]interface{}{"id": id, "reason": string(reason)})
}
