//go:build !production

package testutil

import "github.com/palemoky/marvel-battle-poker/internal/protocol"

// Cards 按 ID 构造传输格式的牌，名字和能量取自目录中的常用角色
func Cards(ids ...int) []protocol.CardInfo {
	known := map[int]protocol.CardInfo{
		1:  {ID: 1, Name: "Iron Man", Power: 8, Team: "Avengers"},
		2:  {ID: 2, Name: "Captain America", Power: 7, Team: "Avengers"},
		3:  {ID: 3, Name: "Thor", Power: 9, Team: "Avengers"},
		4:  {ID: 4, Name: "Hulk", Power: 10, Team: "Avengers"},
		5:  {ID: 5, Name: "Black Widow", Power: 6, Team: "Avengers"},
		24: {ID: 24, Name: "Jubilee", Power: 4, Team: "X-Men"},
		44: {ID: 44, Name: "Ancient One", Power: 8, Team: "Mystic"},
		46: {ID: 46, Name: "Moon Knight", Power: 6, Team: "Mystic"},
	}
	out := make([]protocol.CardInfo, 0, len(ids))
	for _, id := range ids {
		c, ok := known[id]
		if !ok {
			c = protocol.CardInfo{ID: id}
		}
		out = append(out, c)
	}
	return out
}

// PowersView 座位 1 处于能力阶段的牌桌：座位 3 已弃牌，座位 4 手牌已被看到
func PowersView() protocol.TableView {
	return protocol.TableView{
		Viewer:        1,
		Phase:         "powers",
		HandNumber:    3,
		Pot:           80,
		CurrentPlayer: 1,
		Instruction:   "Select a player to target",
		DeckSize:      32,
		MaxSwapCards:  3,
		Players: []protocol.PlayerInfo{
			{ID: 1, Name: "You", Chips: 480, IsHuman: true, CardsCount: 5, Hand: Cards(1, 2, 3, 4, 5), HandVisible: true,
				Power: "iron-man", PowerSummary: "Look at another player's hand"},
			{ID: 2, Name: "Captain Marvel", Chips: 480, CardsCount: 5},
			{ID: 3, Name: "Black Panther", Chips: 500, Folded: true, CardsCount: 5},
			{ID: 4, Name: "Star-Lord", Chips: 480, CardsCount: 5, Hand: Cards(24, 44, 46), HandVisible: true},
		},
	}
}
