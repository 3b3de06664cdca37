package types

// Config holds backend selection and runtime parameters.
type Config struct {
	Backend          string `json:"backend" yaml:"backend" mapstructure:"backend"`
	DataDir          string `json:"data_dir" yaml:"data_dir" mapstructure:"data_dir"`
	ListenAddr       string `json:"listen_addr" yaml:"listen_addr" mapstructure:"listen_addr"`
	StrictValidation bool   `json:"strict_validation" yaml:"strict_validation" mapstructure:"strict_validation"`
}

// Supported backend names.
const (
	BackendJSONFile = "jsonfile"
	BackendSQLite   = "sqlite"
)

// knownBackends lists the backends that Validate accepts.
var knownBackends = map[string]bool{
	BackendJSONFile: true,
	BackendSQLite:   true,
}

// Validate checks that the Config is well-formed, returning a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	if c.Backend == "" {
		return ErrBackendEmpty
	}
	if !knownBackends[c.Backend] {
		return ErrBackendUnknown
	}
	if c.DataDir == "" {
		return ErrDataDirEmpty
	}
	return nil
}
