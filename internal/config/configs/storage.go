package configs

// Storage configures where campaign visuals are kept on disk.
type Storage struct {
	// Dir is the directory uploaded visuals are stored in. It is
	// created on startup when missing.
	Dir string `env:"DIR" envDefault:"uploads"`
}
