package convert

import (
	"github.com/palemoky/marvel-battle-poker/internal/game/card"
	"github.com/palemoky/marvel-battle-poker/internal/protocol"
)

// CardToInfo 将 card.Card 转换为 protocol.CardInfo
func CardToInfo(c card.Card) protocol.CardInfo {
	return protocol.CardInfo{
		ID:    c.ID,
		Name:  c.Name,
		Power: c.Power,
		Team:  c.Team.String(),
	}
}

// CardsToInfos 将 []card.Card 转换为 []protocol.CardInfo
func CardsToInfos(cards []card.Card) []protocol.CardInfo {
	if len(cards) == 0 {
		return nil
	}
	infos := make([]protocol.CardInfo, len(cards))
	for i, c := range cards {
		infos[i] = CardToInfo(c)
	}
	return infos
}

// InfoToCard 将 protocol.CardInfo 转换为 card.Card
// 优先按 ID 查目录，目录中没有时按字段还原
func InfoToCard(info protocol.CardInfo) card.Card {
	if c, ok := card.ByID(info.ID); ok {
		return c
	}
	team, err := card.TeamFromString(info.Team)
	if err != nil {
		team = card.Avengers
	}
	return card.Card{ID: info.ID, Name: info.Name, Power: info.Power, Team: team}
}

// InfosToCards 将 []protocol.CardInfo 转换为 []card.Card
func InfosToCards(infos []protocol.CardInfo) []card.Card {
	cards := make([]card.Card, len(infos))
	for i, info := range infos {
		cards[i] = InfoToCard(info)
	}
	return cards
}
