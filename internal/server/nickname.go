package server

import (
	"math/rand/v2"
)

// 代号词库
var (
	adjectives = []string{
		"Cosmic", "Iron", "Silent", "Crimson", "Quantum",
		"Shadow", "Golden", "Atomic", "Mystic", "Stellar",
		"Savage", "Phantom", "Electric", "Frozen", "Blazing",
	}

	nouns = []string{
		"Falcon", "Sentinel", "Panther", "Hawk", "Spider",
		"Wolf", "Phoenix", "Raven", "Titan", "Viper",
		"Knight", "Comet", "Storm", "Ranger", "Wasp",
	}
)

// GenerateNickname 为未提供名字的玩家生成代号，排行榜按名字区分玩家
func GenerateNickname() string {
	return adjectives[rand.IntN(len(adjectives))] + " " + nouns[rand.IntN(len(nouns))]
}
