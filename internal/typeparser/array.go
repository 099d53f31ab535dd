package typeparser

import "github.com/sqlward/sqlward/internal/wireclient"

// ArrayParser builds the Parse function for a TypeParser over an array
// type, given the element decoder for its scalar counterpart. It saves
// callers from hand-rolling the "{...}" wire-literal split themselves,
// reusing the same element-splitting rules wireclient's built-in array
// decoding applies.
func ArrayParser(elementParse func(raw string) (any, error)) func(raw string) (any, error) {
	return func(raw string) (any, error) {
		elems, err := wireclient.SplitArrayLiteral([]byte(raw))
		if err != nil {
			return nil, err
		}
		out := make([]any, len(elems))
		for i, e := range elems {
			if e == nil {
				continue
			}
			v, err := elementParse(*e)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	}
}
