package domain

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

const cursorPrefix = "arrayconnection:"

// OffsetToCursor encodes a zero-based listing offset into an opaque cursor.
func OffsetToCursor(offset int) string {
	return base64.StdEncoding.EncodeToString([]byte(cursorPrefix + strconv.Itoa(offset)))
}

// CursorToOffset decodes a cursor produced by OffsetToCursor.
func CursorToOffset(cursor string) (int, error) {
	b, err := base64.StdEncoding.DecodeString(cursor)
	if err != nil {
		return 0, NewValidationErr(fmt.Sprintf("invalid cursor %q", cursor))
	}
	raw, ok := strings.CutPrefix(string(b), cursorPrefix)
	if !ok {
		return 0, NewValidationErr(fmt.Sprintf("invalid cursor %q", cursor))
	}
	offset, err := strconv.Atoi(raw)
	if err != nil || offset < 0 {
		return 0, NewValidationErr(fmt.Sprintf("invalid cursor %q", cursor))
	}
	return offset, nil
}
