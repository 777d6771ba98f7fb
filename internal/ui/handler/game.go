package handler

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/marvel-battle-poker/internal/protocol"
	"github.com/palemoky/marvel-battle-poker/internal/sound"
	"github.com/palemoky/marvel-battle-poker/internal/ui/model"
)

func handleMsgSnapshot(m model.Model, msg *protocol.Message) tea.Cmd {
	view, err := protocol.ParsePayload[protocol.TableView](msg)
	if err != nil {
		return nil
	}
	m.State().ApplySnapshot(*view)

	// 目标失效时（弃牌或离开能力阶段）清空光标
	if view.Phase != "powers" || !validTarget(m, m.Target()) {
		m.SetTarget(0)
	}
	if view.PendingTarget != 0 {
		m.SetTarget(view.PendingTarget)
	}
	return nil
}

func handleMsgEvent(m model.Model, msg *protocol.Message) tea.Cmd {
	event, err := protocol.ParsePayload[protocol.EventPayload](msg)
	if err != nil {
		return nil
	}
	m.State().ApplyEvent(*event)
	if cue, ok := sound.CueForEvent(event.Type); ok {
		m.PlayCue(cue)
	}
	return nil
}

// validTarget 目标必须是未弃牌的对手
func validTarget(m model.Model, id int) bool {
	for _, p := range m.State().Opponents() {
		if p.ID == id {
			return true
		}
	}
	return false
}
