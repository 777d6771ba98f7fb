package card

// CatalogSize 整副牌的张数
const CatalogSize = 52

// catalog 固定的 52 张角色牌，ID 与顺序在整个进程内保持稳定
var catalog = [CatalogSize]Card{
	{ID: 1, Name: "Iron Man", Power: 8, Team: Avengers},
	{ID: 2, Name: "Captain America", Power: 7, Team: Avengers},
	{ID: 3, Name: "Thor", Power: 9, Team: Avengers},
	{ID: 4, Name: "Hulk", Power: 10, Team: Avengers},
	{ID: 5, Name: "Black Widow", Power: 6, Team: Avengers},
	{ID: 6, Name: "Hawkeye", Power: 5, Team: Avengers},
	{ID: 7, Name: "Vision", Power: 8, Team: Avengers},
	{ID: 8, Name: "Scarlet Witch", Power: 9, Team: Avengers},
	{ID: 9, Name: "Ant-Man", Power: 6, Team: Avengers},
	{ID: 10, Name: "Wasp", Power: 5, Team: Avengers},
	{ID: 11, Name: "War Machine", Power: 7, Team: Avengers},
	{ID: 12, Name: "Falcon", Power: 6, Team: Avengers},

	{ID: 13, Name: "Wolverine", Power: 8, Team: XMen},
	{ID: 14, Name: "Professor X", Power: 9, Team: XMen},
	{ID: 15, Name: "Cyclops", Power: 7, Team: XMen},
	{ID: 16, Name: "Jean Grey", Power: 10, Team: XMen},
	{ID: 17, Name: "Storm", Power: 8, Team: XMen},
	{ID: 18, Name: "Beast", Power: 6, Team: XMen},
	{ID: 19, Name: "Rogue", Power: 7, Team: XMen},
	{ID: 20, Name: "Gambit", Power: 6, Team: XMen},
	{ID: 21, Name: "Nightcrawler", Power: 5, Team: XMen},
	{ID: 22, Name: "Colossus", Power: 7, Team: XMen},
	{ID: 23, Name: "Iceman", Power: 6, Team: XMen},
	{ID: 24, Name: "Jubilee", Power: 4, Team: XMen},

	{ID: 25, Name: "Star-Lord", Power: 6, Team: Guardians},
	{ID: 26, Name: "Gamora", Power: 7, Team: Guardians},
	{ID: 27, Name: "Drax", Power: 8, Team: Guardians},
	{ID: 28, Name: "Rocket Raccoon", Power: 5, Team: Guardians},
	{ID: 29, Name: "Groot", Power: 7, Team: Guardians},
	{ID: 30, Name: "Mantis", Power: 6, Team: Guardians},
	{ID: 31, Name: "Nebula", Power: 6, Team: Guardians},
	{ID: 32, Name: "Yondu", Power: 5, Team: Guardians},

	{ID: 33, Name: "Thanos", Power: 10, Team: Villains},
	{ID: 34, Name: "Loki", Power: 8, Team: Villains},
	{ID: 35, Name: "Magneto", Power: 9, Team: Villains},
	{ID: 36, Name: "Doctor Doom", Power: 9, Team: Villains},
	{ID: 37, Name: "Green Goblin", Power: 7, Team: Villains},
	{ID: 38, Name: "Venom", Power: 8, Team: Villains},
	{ID: 39, Name: "Ultron", Power: 8, Team: Villains},
	{ID: 40, Name: "Mystique", Power: 6, Team: Villains},
	{ID: 41, Name: "Kingpin", Power: 5, Team: Villains},
	{ID: 42, Name: "Sabretooth", Power: 7, Team: Villains},

	{ID: 43, Name: "Doctor Strange", Power: 9, Team: Mystic},
	{ID: 44, Name: "Ancient One", Power: 8, Team: Mystic},
	{ID: 45, Name: "Ghost Rider", Power: 7, Team: Mystic},
	{ID: 46, Name: "Moon Knight", Power: 6, Team: Mystic},
	{ID: 47, Name: "Blade", Power: 7, Team: Mystic},
	{ID: 48, Name: "Morbius", Power: 6, Team: Mystic},
	{ID: 49, Name: "Wong", Power: 5, Team: Mystic},
	{ID: 50, Name: "Agatha Harkness", Power: 8, Team: Mystic},
	{ID: 51, Name: "Dormammu", Power: 9, Team: Mystic},
	{ID: 52, Name: "Shang-Chi", Power: 7, Team: Mystic},
}

// Catalog 返回整副牌的副本（按目录顺序）
func Catalog() []Card {
	cards := make([]Card, CatalogSize)
	copy(cards, catalog[:])
	return cards
}

// ByID 根据 ID 查找目录中的牌
func ByID(id int) (Card, bool) {
	if id < 1 || id > CatalogSize {
		return Card{}, false
	}
	return catalog[id-1], true
}
