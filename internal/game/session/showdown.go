package session

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/palemoky/marvel-battle-poker/internal/game/player"
	"github.com/palemoky/marvel-battle-poker/internal/game/rule"
)

// winByFold 只剩一名玩家时直接赢得底池
func (s *GameSession) winByFold(winner *player.Player) {
	won := s.pot
	winner.Award(won)
	s.pot = 0

	s.rankings = []Ranking{{
		PlayerID: winner.ID,
		Name:     winner.Name,
		Winner:   true,
		Winnings: won,
	}}
	s.message = fmt.Sprintf("%s wins %d chips!", winner.Name, won)
	s.finish()
	s.emit(Event{Type: EventRoundWon, PlayerID: winner.ID, Amount: won, Message: s.message})
	s.emit(Event{Type: EventShowdownComplete, Message: s.message, Rankings: s.rankingsCopy()})
}

// showdown 比较所有未弃牌玩家的牌型并分配底池
func (s *GameSession) showdown() {
	type scored struct {
		p   *player.Player
		res rule.Result
	}

	active := s.activePlayers()
	scores := make([]scored, 0, len(active))
	for _, p := range active {
		res, err := rule.Evaluate(p.Hand)
		if err != nil {
			s.log.Error("evaluate hand", zap.Int("player", p.ID), zap.Error(err))
		}
		scores = append(scores, scored{p: p, res: res})
	}
	// 牌型从高到低，同牌型按座位顺序
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].res.Rank > scores[j].res.Rank
	})

	best := scores[0].res.Rank
	var winners []*player.Player
	for _, sc := range scores {
		if sc.res.Rank == best {
			winners = append(winners, sc.p)
		}
	}

	won := s.pot
	share := won / len(winners)
	remainder := won % len(winners)
	payout := make(map[int]int, len(winners))
	for i, w := range winners {
		amount := share
		if i == 0 {
			amount += remainder
		}
		w.Award(amount)
		payout[w.ID] = amount
	}
	s.pot = 0

	s.rankings = make([]Ranking, 0, len(scores))
	for _, sc := range scores {
		amount, isWinner := payout[sc.p.ID]
		s.rankings = append(s.rankings, Ranking{
			PlayerID: sc.p.ID,
			Name:     sc.p.Name,
			Rank:     sc.res.Rank.Rank(),
			Category: sc.res.Category,
			Winner:   isWinner,
			Winnings: amount,
		})
	}

	if len(winners) == 1 {
		s.message = fmt.Sprintf("%s wins with %s! (%d chips)", winners[0].Name, best, won)
	} else {
		names := make([]string, len(winners))
		for i, w := range winners {
			names[i] = w.Name
		}
		s.message = fmt.Sprintf("Tie between %s with %s! (%d chips each)", strings.Join(names, " and "), best, share)
	}

	s.finish()
	for _, w := range winners {
		s.emit(Event{Type: EventRoundWon, PlayerID: w.ID, Amount: payout[w.ID], Message: s.message})
	}
	s.emit(Event{Type: EventShowdownComplete, Message: s.message, Rankings: s.rankingsCopy()})
}

func (s *GameSession) finish() {
	s.setPhase(PhaseShowdown)
	s.setTurn(0)
	s.log.Debug("hand finished", zap.Int("hand", s.handNumber), zap.String("result", s.message))
}

// rankingsCopy 返回排名副本
func (s *GameSession) rankingsCopy() []Ranking {
	return append([]Ranking(nil), s.rankings...)
}
