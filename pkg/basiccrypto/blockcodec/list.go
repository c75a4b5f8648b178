package blockcodec

import (
	"math/big"
	"strings"

	"github.com/agniv-the-marker/basic-cryptography/pkg/basiccrypto"
)

// ParseList reads a list of decimal integers written as "[1, 2, 3]",
// "1,2,3" or "1 2 3". Surrounding brackets are optional.
func ParseList(s string) ([]*big.Int, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	out := make([]*big.Int, 0, len(fields))
	for _, f := range fields {
		v, ok := new(big.Int).SetString(f, 10)
		if !ok {
			return nil, basiccrypto.NewError("blockcodec.ParseList", basiccrypto.ErrInvalidParameter, "not an integer: %q", f)
		}
		out = append(out, v)
	}
	return out, nil
}

// FormatList renders blocks as "[1, 2, 3]".
func FormatList(blocks []*big.Int) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, b := range blocks {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(b.String())
	}
	sb.WriteByte(']')
	return sb.String()
}
