package core

// StatusLines is the number of terminal rows kept below the field for the
// status bar.
const StatusLines = 1

// RuntimeConfig contains the settings a session is created with.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Bombs   int   // Number of bombs on the field
	Seed    int64 // RNG seed for deterministic fields
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Bombs:   100,
		Seed:    0, // 0 means use current time in platform layer
	}
}

// FieldSize returns the field dimensions that fit the screen: the full
// width and every row except the status bar.
func (c RuntimeConfig) FieldSize() (int, int) {
	return c.ScreenW, max(c.ScreenH-StatusLines, 0)
}
