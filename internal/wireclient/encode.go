package wireclient

import (
	"fmt"
	"time"

	"github.com/sqlward/sqlward/internal/wireclient/oid"
)

// encodeParam renders a bind parameter into PostgreSQL's text wire format.
func encodeParam(v any, typ oid.Oid) []byte {
	switch x := v.(type) {
	case int:
		return []byte(fmt.Sprintf("%d", x))
	case int32:
		return []byte(fmt.Sprintf("%d", x))
	case int64:
		return []byte(fmt.Sprintf("%d", x))
	case float32:
		return []byte(fmt.Sprintf("%g", x))
	case float64:
		return []byte(fmt.Sprintf("%g", x))
	case bool:
		return []byte(fmt.Sprintf("%t", x))
	case []byte:
		if typ == oid.T_bytea {
			return []byte(fmt.Sprintf("\\x%x", x))
		}
		return x
	case string:
		return []byte(x)
	case time.Time:
		return []byte(x.Format("2006-01-02 15:04:05.999999999Z07:00"))
	default:
		return []byte(fmt.Sprintf("%v", x))
	}
}
