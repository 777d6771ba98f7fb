package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	gameClient "github.com/palemoky/marvel-battle-poker/internal/client"
	"github.com/palemoky/marvel-battle-poker/internal/game/card"
	"github.com/palemoky/marvel-battle-poker/internal/protocol"
	"github.com/palemoky/marvel-battle-poker/internal/ui/common"
	"github.com/palemoky/marvel-battle-poker/internal/ui/model"
)

var phaseTitles = map[string]string{
	"idle":     "Press n to deal a new hand",
	"deal":     "Dealing",
	"bet1":     "First betting round",
	"powers":   "Powers",
	"swap":     "Card swap",
	"bet2":     "Final betting round",
	"showdown": "Showdown",
}

// TableView renders the whole table screen.
func TableView(m model.Model) string {
	state := m.State()
	if !state.HasView {
		return "Waiting for the table..."
	}
	v := state.View

	header := common.TitleStyle(fmt.Sprintf("⚡ Marvel Battle Poker  hand #%d", v.HandNumber))
	status := fmt.Sprintf("%s   Pot %s %d   Table bet %d   Deck %d",
		phaseTitle(v.Phase), common.ChipIcon, v.Pot, v.TableBet, v.DeckSize)

	sections := []string{header, status, renderSeats(v, m.Target()), renderHand(state)}
	if prompt := renderPrompt(m); prompt != "" {
		sections = append(sections, prompt)
	}
	if len(v.Rankings) > 0 {
		sections = append(sections, RenderRankings(v.Rankings))
	}
	if m.TrackerEnabled() {
		sections = append(sections, RenderTracker(state.Tracker))
	}
	if len(state.Log) > 0 {
		sections = append(sections, common.DimStyle.Render(strings.Join(state.Log, "\n")))
	}
	if m.ShowingHelp() {
		sections = append(sections, m.Help().FullHelpView(m.Keys().FullHelp()))
	} else {
		sections = append(sections, m.Help().ShortHelpView(m.Keys().ShortHelp()))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func phaseTitle(phase string) string {
	if t, ok := phaseTitles[phase]; ok {
		return t
	}
	return phase
}

// renderSeats draws every seat side by side, the current actor highlighted.
func renderSeats(v protocol.TableView, target int) string {
	boxes := make([]string, len(v.Players))
	for i, p := range v.Players {
		boxes[i] = renderSeat(p, v.CurrentPlayer == p.ID, target == p.ID)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
}

func renderSeat(p protocol.PlayerInfo, active, targeted bool) string {
	var sb strings.Builder
	name := common.TruncateName(p.Name, 16)
	switch {
	case active:
		name = common.TurnIcon + " " + name
	case p.Folded:
		name = common.FoldIcon + " " + name
	}
	if targeted {
		name += " 🎯"
	}
	sb.WriteString(name)
	fmt.Fprintf(&sb, "\nChips %d", p.Chips)
	if p.Bet > 0 {
		fmt.Fprintf(&sb, "  Bet %d", p.Bet)
	}
	if p.UsedPower {
		sb.WriteString("\n" + common.PowerIcon + " power used")
	}

	switch {
	case p.IsHuman:
		// 自己的手牌在下方单独绘制
	case p.HandVisible && len(p.Hand) > 0:
		sb.WriteString("\n" + common.CardList(p.Hand))
	case p.CardsCount > 0:
		sb.WriteString("\n" + strings.Repeat("🂠 ", p.CardsCount))
	}

	box := common.BoxStyle
	if active {
		box = common.ActiveBox
	}
	return box.Width(28).Render(sb.String())
}

// renderHand draws the player's own cards with their slot numbers.
func renderHand(state *gameClient.GameState) string {
	me, ok := state.Me()
	if !ok || len(me.Hand) == 0 {
		return ""
	}
	cards := make([]string, len(me.Hand))
	for i, c := range me.Hand {
		cards[i] = RenderCard(c, i, state.IsSelected(i))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, cards...)

	info := fmt.Sprintf("Total power %d", common.HandPower(me.Hand))
	if me.PowerSummary != "" {
		info += fmt.Sprintf("   %s %s", common.PowerIcon, me.PowerSummary)
	}
	return lipgloss.JoinVertical(lipgloss.Left, row, common.DimStyle.Render(info))
}

// RenderCard draws one card face, thick bordered when selected.
func RenderCard(c protocol.CardInfo, slot int, selected bool) string {
	face := fmt.Sprintf("[%d] %s", slot+1, common.TeamStyle(c.Team).Render(common.CardLabel(c)))
	if selected {
		return common.SelectedCard.Render(face)
	}
	return common.CardStyle.Render(face)
}

// renderPrompt tells the player what the table is waiting for.
func renderPrompt(m model.Model) string {
	state := m.State()
	v := state.View

	var lines []string
	if v.Message != "" {
		lines = append(lines, v.Message)
	}
	if state.IsMyTurn() {
		if v.Instruction != "" {
			lines = append(lines, common.HighlightText.Render(v.Instruction))
		}
		if v.ToCall > 0 {
			lines = append(lines, fmt.Sprintf("To call: %d", v.ToCall))
		}
	}
	if in := m.BetInput(); in.Focused() {
		lines = append(lines, "Bet amount: "+in.View())
	}
	if len(lines) == 0 {
		return ""
	}
	return common.PromptStyle.Render(strings.Join(lines, "\n"))
}

// RenderRankings draws the showdown result table.
func RenderRankings(rankings []protocol.RankingInfo) string {
	var sb strings.Builder
	sb.WriteString(common.TitleStyle("Showdown") + "\n")
	for i, r := range rankings {
		icon := "  "
		if r.Winner {
			icon = common.WinnerIcon
		}
		fmt.Fprintf(&sb, "%s %d. %-18s %-18s", icon, i+1, common.TruncateName(r.Name, 18), r.Category)
		if r.Winnings > 0 {
			fmt.Fprintf(&sb, " +%d", r.Winnings)
		}
		if i < len(rankings)-1 {
			sb.WriteString("\n")
		}
	}
	return common.BoxStyle.Render(sb.String())
}

// RenderTracker draws unseen card counts by power and by team.
func RenderTracker(t *gameClient.CardTracker) string {
	remaining := t.Remaining()
	var powers, teams []string
	for p := card.MinPower; p <= card.MaxPower; p++ {
		n := remaining[p]
		cell := fmt.Sprintf("%d:%d", p, n)
		if n == 0 {
			cell = common.DimStyle.Render(cell)
		}
		powers = append(powers, cell)
	}
	byTeam := t.RemainingByTeam()
	for _, team := range card.Teams() {
		name := team.String()
		teams = append(teams, common.TeamStyle(name).Render(fmt.Sprintf("%s %d", name, byTeam[name])))
	}
	body := "Unseen by power  " + strings.Join(powers, "  ") + "\nUnseen by team   " + strings.Join(teams, "  ")
	return common.BoxStyle.Render(body)
}
