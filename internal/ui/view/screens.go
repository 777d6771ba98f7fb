package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/palemoky/marvel-battle-poker/internal/game/power"
	"github.com/palemoky/marvel-battle-poker/internal/game/rule"
	"github.com/palemoky/marvel-battle-poker/internal/ui/common"
	"github.com/palemoky/marvel-battle-poker/internal/ui/model"
)

// LeaderboardView renders the leaderboard screen.
func LeaderboardView(m model.Model) string {
	kind, entries := m.Leaderboard()
	title := common.TitleStyle(fmt.Sprintf("🏆 Leaderboard (%s)", kind))

	var sb strings.Builder
	if len(entries) == 0 {
		sb.WriteString("No results yet")
	} else {
		fmt.Fprintf(&sb, "%-4s %-20s %8s %6s %7s", "#", "Player", "Winnings", "Won", "Win%")
		for _, e := range entries {
			fmt.Fprintf(&sb, "\n%-4d %-20s %8d %6d %6.1f%%",
				e.Rank, common.TruncateName(e.PlayerName, 20), e.Winnings, e.HandsWon, e.WinRate)
		}
	}
	hint := common.DimStyle.Render("d: daily/total   esc: back")
	return lipgloss.JoinVertical(lipgloss.Left, title, common.BoxStyle.Render(sb.String()), hint)
}

// StatsView renders the player's own statistics.
func StatsView(m model.Model) string {
	title := common.TitleStyle("📊 My stats")
	s := m.Stats()
	if s == nil {
		return lipgloss.JoinVertical(lipgloss.Left, title, "Loading...")
	}

	rank := "unranked"
	if s.Rank > 0 {
		rank = fmt.Sprintf("#%d", s.Rank)
	}
	rows := []string{
		fmt.Sprintf("Player          %s", s.PlayerName),
		fmt.Sprintf("Hands played    %d", s.HandsPlayed),
		fmt.Sprintf("Hands won       %d (%.1f%%)", s.HandsWon, s.WinRate),
		fmt.Sprintf("Total winnings  %d", s.TotalWinnings),
		fmt.Sprintf("Biggest pot     %d", s.BiggestPot),
		fmt.Sprintf("Streak          %d (best %d)", s.CurrentStreak, s.MaxWinStreak),
		fmt.Sprintf("Rank            %s", rank),
	}
	hint := common.DimStyle.Render("esc: back")
	return lipgloss.JoinVertical(lipgloss.Left, title, common.BoxStyle.Render(strings.Join(rows, "\n")), hint)
}

// RenderGameRules renders hand categories and character powers.
func RenderGameRules() string {
	var sb strings.Builder

	sb.WriteString("[Hand flow]\n")
	sb.WriteString("Deal 5 cards, bet, use character powers, swap up to 3 cards, bet again, showdown.\n")
	sb.WriteString("Your power comes from the character in slot 1.\n\n")

	sb.WriteString("[Hands, best first]\n")
	for _, c := range rule.Categories() {
		fmt.Fprintf(&sb, "• %-18s %s\n", c.String(), rule.Describe(c))
	}

	sb.WriteString("\n[Powers]\n")
	for _, name := range []string{"Iron Man", "Captain America", "Thor", "Hulk", "Spider-Man", "Doctor Strange"} {
		fmt.Fprintf(&sb, "• %-16s %s\n", name, power.Description(power.KindOf(name), name))
	}

	sb.WriteString("\n[Keys]\n")
	sb.WriteString("• C: card tracker   H: help   L: leaderboard   S: stats   ESC: back")
	return common.BoxStyle.Render(sb.String())
}

// RulesView renders the full rules view.
func RulesView(width int) string {
	title := lipgloss.PlaceHorizontal(width, lipgloss.Center, common.TitleStyle("📖 Rules"))
	rules := lipgloss.PlaceHorizontal(width, lipgloss.Center, RenderGameRules())
	hint := lipgloss.PlaceHorizontal(width, lipgloss.Center, "Press ESC to return to the table")
	return title + "\n\n" + rules + "\n\n" + hint
}
