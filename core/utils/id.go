package utils

import (
	"strings"

	"meeting-planner/core/constants"

	"github.com/gosimple/slug"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const idAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

func GenerateID(length int) (string, error) {
	return gonanoid.Generate(idAlphabet, length)
}

// GenerateMeetingCode builds the public share code of a meeting, for example
// "weekly-sync-4fXk29Qa". Titles that slugify to nothing get only the random part.
func GenerateMeetingCode(title string) (string, error) {
	id, err := GenerateID(constants.MeetingCodeLength)
	if err != nil {
		return "", err
	}

	s := slug.Make(title)
	if len(s) > constants.MeetingSlugMaxLength {
		s = strings.TrimRight(s[:constants.MeetingSlugMaxLength], "-")
	}
	if s == "" {
		return id, nil
	}
	return s + "-" + id, nil
}
