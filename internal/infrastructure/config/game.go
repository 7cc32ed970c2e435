package config

// GameConfig holds simulation run configuration
type GameConfig struct {
	// Difficulty preset: easy, normal, hard
	Difficulty string `mapstructure:"difficulty" validate:"required,oneof=easy normal hard"`

	// AutoSave persists the run after every completed cycle
	AutoSave bool `mapstructure:"auto_save"`

	// Seed for the event dice. Zero means time-seeded.
	Seed int64 `mapstructure:"seed"`
}
