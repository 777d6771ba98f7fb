package card

import (
	"fmt"
	"strconv"
)

// Team 定义角色阵营
type Team int

const (
	Avengers Team = iota
	XMen
	Guardians
	Villains
	Mystic
)

// teamNames 阵营名称映射表
var teamNames = map[Team]string{
	Avengers:  "Avengers",
	XMen:      "X-Men",
	Guardians: "Guardians",
	Villains:  "Villains",
	Mystic:    "Mystic",
}

func (t Team) String() string {
	if name, ok := teamNames[t]; ok {
		return name
	}
	return "Team(" + strconv.Itoa(int(t)) + ")"
}

// Teams 返回所有阵营，按固定顺序
func Teams() []Team {
	return []Team{Avengers, XMen, Guardians, Villains, Mystic}
}

// TeamFromString 根据名称查找阵营
func TeamFromString(s string) (Team, error) {
	for t, name := range teamNames {
		if name == s {
			return t, nil
		}
	}
	return -1, fmt.Errorf("无法识别的阵营: %q", s)
}

const (
	MinPower = 4
	MaxPower = 10
)

// Card 定义一张角色牌，创建后不可变
type Card struct {
	ID    int
	Name  string
	Power int
	Team  Team
}

func (c Card) String() string {
	return fmt.Sprintf("%s(%d %s)", c.Name, c.Power, c.Team)
}
