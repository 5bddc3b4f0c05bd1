package handler

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/cuongbtq/career-tracker/internal/domain"
	"github.com/cuongbtq/career-tracker/internal/store"
)

const cursorPrefix = "app"

func DecodeApplicationCursor(cursorStr string) (*store.ApplicationCursor, error) {
	if cursorStr == "" {
		return nil, nil
	}

	decoded, err := base64.URLEncoding.DecodeString(cursorStr)
	if err != nil {
		return nil, domain.NewValidationError("cursor", "is not valid base64")
	}

	prefix, id, ok := strings.Cut(string(decoded), "|")
	if !ok || prefix != cursorPrefix || id == "" {
		return nil, domain.NewValidationError("cursor", "has an invalid format")
	}

	return &store.ApplicationCursor{ID: id}, nil
}

func EncodeApplicationCursor(cursor *store.ApplicationCursor) string {
	cs := fmt.Sprintf("%s|%s", cursorPrefix, cursor.ID)
	return base64.URLEncoding.EncodeToString([]byte(cs))
}
