package config

import (
	_ "embed"
)

//go:embed defaults/t2048.yaml
var defaultT2048YAML []byte

// DefaultT2048Config returns the built-in configuration.
// Used when the embedded YAML cannot be parsed.
func DefaultT2048Config() T2048Config {
	return T2048Config{
		Game: GameConfig{
			FourProbability: 0.10,
			InitialTiles:    2,
			CooldownMS:      200,
		},
		TUI: TUIConfig{
			TickRate: 60,
			Palette: map[int]string{
				2:    "#eee4da",
				4:    "#ede0c8",
				8:    "#f2b179",
				16:   "#f59563",
				32:   "#f67c5f",
				64:   "#f65e3b",
				128:  "#edcf72",
				256:  "#edcc61",
				512:  "#edc850",
				1024: "#edc53f",
				2048: "#edc22e",
			},
			EmptyColor: "#cdc1b4",
			SuperColor: "#3c3a32",
		},
		Server: ServerConfig{
			HTTPAddr:           ":8048",
			SSHAddr:            ":23234",
			IdleTimeoutMinutes: 30,
			MaxSessions:        256,
		},
		Storage: StorageConfig{
			DBPath: "~/.arcade/scores.db",
		},
		Sim: SimConfig{
			Games:   1000,
			Workers: 4,
			Policy:  "greedy",
		},
	}
}
