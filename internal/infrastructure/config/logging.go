package config

// LoggingConfig selects the slog handler the CLI logs through
type LoggingConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=json text"`

	// stdout, stderr, or file (FilePath then required)
	Output   string `mapstructure:"output" validate:"required,oneof=stdout stderr file"`
	FilePath string `mapstructure:"file_path" validate:"required_if=Output file"`

	// IncludeCaller adds source file:line to each record
	IncludeCaller bool `mapstructure:"include_caller"`
}
