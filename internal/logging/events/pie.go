package events

import "github.com/atomicstack/tmux-pie-menu/internal/logging"

type PieTracer struct{}

type CloseReason string

const (
	CloseReasonRequest CloseReason = "request"
	CloseReasonDismiss CloseReason = "dismiss"
)

var Pie = PieTracer{}

func (PieTracer) Open(id string, x, y, radius float64, items int) {
	logging.Trace("pie.open", map[string]interface{}{
		"id":     id,
		"x":      x,
		"y":      y,
		"radius": radius,
		"items":  items,
	})
}

func (PieTracer) Close(id string, reason CloseReason) {
	logging.Trace("pie.close", map[string]interface{}{"id": id, "reason": string(reason)})
}

func (PieTracer) Veto(id, transition string) {
	logging.Trace("pie.veto", map[string]interface{}{"id": id, "transition": transition})
}

func (PieTracer) Reject(activeID string) {
	logging.Trace("pie.reject", map[string]interface{}{"active": activeID})
}

func (PieTracer) Dismiss(id string, distance float64) {
	logging.Trace("pie.dismiss", map[string]interface{}{"id": id, "distance": distance})
}

func (PieTracer) Commit(id string, index int, label string, handled bool) {
	logging.Trace("pie.commit", map[string]interface{}{
		"id":      id,
		"index":   index,
		"label":   label,
		"handled": handled,
	})
}

func (PieTracer) Settled(id string, ticks int) {
	logging.Trace("pie.settled", map[string]interface{}{"id": id, "ticks": ticks})
}
