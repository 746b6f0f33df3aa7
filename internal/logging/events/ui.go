package events

import "github.com/atomicstack/chat-popup-control/internal/logging"

type UITracer struct{}

type FilterTracer struct{}

type ActionTracer struct{}

type CommandTracer struct{}

type BackendTracer struct{}

var (
	UI      = UITracer{}
	Filter  = FilterTracer{}
	Action  = ActionTracer{}
	Command = CommandTracer{}
	Backend = BackendTracer{}
)

func (UITracer) ListEnter(levelID, itemID, label, filter string) {
	logging.Trace("list.enter", map[string]interface{}{
		"level":  levelID,
		"item":   itemID,
		"label":  label,
		"filter": filter,
	})
}

func (UITracer) ListCursor(levelID string, cursor int) {
	logging.Trace("list.cursor", map[string]interface{}{"level": levelID, "cursor": cursor})
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"error": err.Error()})
}

func (ActionTracer) Success(info string) {
	logging.Trace("action.success", map[string]interface{}{"info": info})
}

func (FilterTracer) Cleared(levelID string) {
	logging.Trace("filter.clear", map[string]interface{}{"level": levelID})
}

func (FilterTracer) Changed(levelID, filter string, matches int) {
	logging.Trace("filter.change", map[string]interface{}{"level": levelID, "filter": filter, "matches": matches})
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) NoOp(id, label string) {
	logging.Trace("command.noop", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Result(id, label, msgType string) {
	logging.Trace("command.result", map[string]interface{}{"id": id, "label": label, "msg": msgType})
}

func (BackendTracer) Poll(count int, err error) {
	payload := map[string]interface{}{"count": count}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("backend.poll", payload)
}

func (BackendTracer) Refresh() {
	logging.Trace("backend.refresh", nil)
}
