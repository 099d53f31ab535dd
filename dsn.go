package sqlward

import "github.com/sqlward/sqlward/internal/dsnparse"

// defaultDSNParser adapts internal/dsnparse to the DSNParser interface.
type defaultDSNParser struct{}

// NewDefaultDSNParser returns the postgres://-URL-based DSNParser used
// when a ClientConfiguration doesn't supply one of its own.
func NewDefaultDSNParser() DSNParser {
	return defaultDSNParser{}
}

func (defaultDSNParser) Parse(dsn string) (DSNFields, error) {
	f, err := dsnparse.Parse(dsn)
	if err != nil {
		return DSNFields{}, err
	}
	return DSNFields{
		Host:            f.Host,
		Port:            f.Port,
		DatabaseName:    f.DatabaseName,
		Username:        f.Username,
		Password:        f.Password,
		SSLMode:         SSLMode(f.SSLMode),
		ApplicationName: f.ApplicationName,
		Options:         f.Options,
	}, nil
}
