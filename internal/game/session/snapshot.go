package session

import (
	"errors"
	"fmt"
	"slices"

	"github.com/palemoky/marvel-battle-poker/internal/game/card"
	"github.com/palemoky/marvel-battle-poker/internal/game/player"
	"github.com/palemoky/marvel-battle-poker/internal/game/power"
	"github.com/palemoky/marvel-battle-poker/internal/game/rule"
)

// Snapshot 会话的只读副本
type Snapshot struct {
	Phase         Phase
	HandNumber    int
	Players       []player.Player
	Pot           int
	TableBet      int
	CurrentPlayer int
	Selected      []int
	PendingTarget int
	Message       string
	Rankings      []Ranking
	DeckSize      int
	DiscardSize   int
	Revealed      map[int][]int // 钢铁侠查看过的手牌：查看者 -> 被查看者
	Rules         Rules
}

// Player 返回指定座位的玩家副本
func (s Snapshot) Player(id int) (player.Player, bool) {
	for _, p := range s.Players {
		if p.ID == id {
			return p, true
		}
	}
	return player.Player{}, false
}

// PowerKind 返回指定座位当前手牌对应的能力
func (s Snapshot) PowerKind(id int) power.Kind {
	p, ok := s.Player(id)
	if !ok {
		return power.Generic
	}
	return powerKind(&p)
}

// ToCall 指定座位跟注需要补的筹码
func (s Snapshot) ToCall(id int) int {
	p, ok := s.Player(id)
	if !ok {
		return 0
	}
	return p.Owes(s.TableBet)
}

// CanSee viewer 是否能看到 target 的手牌
func (s Snapshot) CanSee(viewer, target int) bool {
	if viewer == target || s.Phase == PhaseShowdown {
		return true
	}
	return slices.Contains(s.Revealed[viewer], target)
}

// Snapshot 返回当前状态的深拷贝
func (s *GameSession) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	players := make([]player.Player, len(s.players))
	for i, p := range s.players {
		players[i] = p.Clone()
	}
	return Snapshot{
		Phase:         s.phase,
		HandNumber:    s.handNumber,
		Players:       players,
		Pot:           s.pot,
		TableBet:      s.tableBet,
		CurrentPlayer: s.current,
		Selected:      slices.Clone(s.pending.selected),
		PendingTarget: s.pending.target,
		Message:       s.message,
		Rankings:      s.rankingsCopy(),
		DeckSize:      s.deck.Len(),
		DiscardSize:   len(s.discard),
		Revealed:      cloneRevealed(s.revealed),
		Rules:         s.rules,
	}
}

// SeatState 可序列化的座位状态，牌以 ID 表示
type SeatState struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Chips     int    `json:"chips"`
	Bet       int    `json:"bet"`
	Committed int    `json:"committed"`
	Hand      []int  `json:"hand"`
	UsedPower bool   `json:"used_power"`
	Folded    bool   `json:"folded"`
}

// State 会话的完整可序列化状态，用于持久化与恢复
type State struct {
	Phase         Phase         `json:"phase"`
	HandNumber    int           `json:"hand_number"`
	Players       []SeatState   `json:"players"`
	Deck          []int         `json:"deck"`
	Discard       []int         `json:"discard"`
	Pot           int           `json:"pot"`
	TableBet      int           `json:"table_bet"`
	Current       int           `json:"current"`
	Acted         []bool        `json:"acted"`
	Selected      []int         `json:"selected"`
	PendingTarget int           `json:"pending_target"`
	Revealed      map[int][]int `json:"revealed,omitempty"`
	Rankings      []Ranking     `json:"rankings,omitempty"`
	Message       string        `json:"message"`
}

// ErrInvalidState 存档数据不合法
var ErrInvalidState = errors.New("invalid session state")

func cardIDs(cards []card.Card) []int {
	ids := make([]int, len(cards))
	for i, c := range cards {
		ids[i] = c.ID
	}
	return ids
}

func cardsFromIDs(ids []int) ([]card.Card, error) {
	cards := make([]card.Card, 0, len(ids))
	for _, id := range ids {
		c, ok := card.ByID(id)
		if !ok {
			return nil, fmt.Errorf("%w: unknown card id %d", ErrInvalidState, id)
		}
		cards = append(cards, c)
	}
	return cards, nil
}

func cloneRevealed(m map[int][]int) map[int][]int {
	out := make(map[int][]int, len(m))
	for k, v := range m {
		out[k] = slices.Clone(v)
	}
	return out
}

// Export 导出完整状态
func (s *GameSession) Export() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := State{
		Phase:         s.phase,
		HandNumber:    s.handNumber,
		Deck:          cardIDs(s.deck.Cards()),
		Discard:       cardIDs(s.discard),
		Pot:           s.pot,
		TableBet:      s.tableBet,
		Current:       s.current,
		Acted:         slices.Clone(s.acted[:]),
		Selected:      slices.Clone(s.pending.selected),
		PendingTarget: s.pending.target,
		Revealed:      cloneRevealed(s.revealed),
		Rankings:      s.rankingsCopy(),
		Message:       s.message,
	}
	for _, p := range s.players {
		st.Players = append(st.Players, SeatState{
			ID:        p.ID,
			Name:      p.Name,
			Chips:     p.Chips,
			Bet:       p.Bet,
			Committed: p.Committed,
			Hand:      cardIDs(p.Hand),
			UsedPower: p.UsedPower,
			Folded:    p.Folded,
		})
	}
	return st
}

// Restore 用存档覆盖当前状态，数据不合法时返回错误且状态不变
func (s *GameSession) Restore(st State) error {
	if _, ok := phaseNames[st.Phase]; !ok {
		return fmt.Errorf("%w: phase %d", ErrInvalidState, st.Phase)
	}
	if len(st.Players) != NumSeats {
		return fmt.Errorf("%w: %d seats", ErrInvalidState, len(st.Players))
	}
	if st.Current < 0 || st.Current > NumSeats {
		return fmt.Errorf("%w: current seat %d", ErrInvalidState, st.Current)
	}

	var players [NumSeats]*player.Player
	seen := make(map[int]bool, card.CatalogSize)
	track := func(cards []card.Card) error {
		for _, c := range cards {
			if seen[c.ID] {
				return fmt.Errorf("%w: duplicate card %d", ErrInvalidState, c.ID)
			}
			seen[c.ID] = true
		}
		return nil
	}

	for i, ss := range st.Players {
		if ss.ID != i+1 {
			return fmt.Errorf("%w: seat %d has id %d", ErrInvalidState, i+1, ss.ID)
		}
		hand, err := cardsFromIDs(ss.Hand)
		if err != nil {
			return err
		}
		if err := track(hand); err != nil {
			return err
		}
		if len(hand) == 0 {
			hand = nil
		}
		players[i] = &player.Player{
			ID:        ss.ID,
			Name:      ss.Name,
			Chips:     ss.Chips,
			Bet:       ss.Bet,
			Committed: ss.Committed,
			Hand:      hand,
			UsedPower: ss.UsedPower,
			Folded:    ss.Folded,
		}
	}
	deck, err := cardsFromIDs(st.Deck)
	if err != nil {
		return err
	}
	if err := track(deck); err != nil {
		return err
	}
	discard, err := cardsFromIDs(st.Discard)
	if err != nil {
		return err
	}
	if err := track(discard); err != nil {
		return err
	}
	if err := checkRound(st, players, len(seen)); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.phase = st.Phase
	s.handNumber = st.HandNumber
	s.players = players
	s.deck = card.NewDeckFrom(deck)
	s.discard = discard
	s.pot = st.Pot
	s.tableBet = st.TableBet
	s.current = st.Current
	s.acted = [NumSeats]bool{}
	copy(s.acted[:], st.Acted)
	s.pending = pending{selected: slices.Clone(st.Selected), target: st.PendingTarget}
	s.revealed = cloneRevealed(st.Revealed)
	s.rankings = slices.Clone(st.Rankings)
	s.message = st.Message
	s.events = nil
	return nil
}

// checkRound 校验筹码非负；牌局进行中时还要求整副牌齐全、底池等于投入之和、手牌 5 张
func checkRound(st State, players [NumSeats]*player.Player, cards int) error {
	if st.Pot < 0 || st.TableBet < 0 {
		return fmt.Errorf("%w: pot %d, table bet %d", ErrInvalidState, st.Pot, st.TableBet)
	}
	committed := 0
	for _, p := range players {
		if p.Chips < 0 || p.Bet < 0 || p.Committed < 0 {
			return fmt.Errorf("%w: seat %d has negative chips or bets", ErrInvalidState, p.ID)
		}
		committed += p.Committed
	}

	if st.Phase == PhaseIdle || st.Phase == PhaseShowdown {
		return nil
	}
	if cards != card.CatalogSize {
		return fmt.Errorf("%w: %d of %d cards accounted for", ErrInvalidState, cards, card.CatalogSize)
	}
	if st.Pot != committed {
		return fmt.Errorf("%w: pot %d, committed %d", ErrInvalidState, st.Pot, committed)
	}
	if st.Phase == PhaseDeal {
		return nil
	}
	for _, p := range players {
		if len(p.Hand) != rule.HandSize {
			return fmt.Errorf("%w: seat %d holds %d cards", ErrInvalidState, p.ID, len(p.Hand))
		}
	}
	return nil
}
