package events

import "github.com/atomicstack/tmux-pie-menu/internal/logging"

type TmuxTracer struct{}

var Tmux = TmuxTracer{}

func (TmuxTracer) Run(args []string) {
	logging.Trace("tmux.run", map[string]interface{}{"args": args})
}

func (TmuxTracer) SelectWindow(target string) {
	logging.Trace("tmux.window.select", map[string]interface{}{"target": target})
}

func (TmuxTracer) SwitchClient(target string) {
	logging.Trace("tmux.session.switch", map[string]interface{}{"target": target})
}

func (TmuxTracer) Poll(kind string, err error) {
	payload := map[string]interface{}{"kind": kind}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("tmux.poll", payload)
}
