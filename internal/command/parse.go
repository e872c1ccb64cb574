// Package command implements the RESP command parser and the per-type
// command handlers that execute against an internal/store.Store.
package command

import (
	"github.com/pkg/errors"

	"github.com/sizzlecar/simple-redis/internal/resp"
)

// ErrInvalidCommand is returned when a decoded Frame is not a request
// shape the parser accepts: only Array(of BulkString...) is valid
//.
var ErrInvalidCommand = errors.New("invalid command")

// ParseRequest converts a decoded Frame into its positional string
// arguments: args[0] is the command verb, args[1:] its arguments. Any
// other frame shape — not an array, or an array containing a non-bulk
// element — is rejected.
func ParseRequest(f resp.Frame) ([][]byte, error) {
	if f.Kind != resp.KindArray || f.ArrayNull {
		return nil, ErrInvalidCommand
	}
	args := make([][]byte, len(f.Elems))
	for i, elem := range f.Elems {
		if elem.Kind != resp.KindBulkString || elem.BulkNull {
			return nil, ErrInvalidCommand
		}
		args[i] = elem.Bulk
	}
	if len(args) == 0 {
		return nil, ErrInvalidCommand
	}
	return args, nil
}
