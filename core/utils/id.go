package utils

import (
	"team-scheduler/core/constants"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const idAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

func GenerateID() string {
	id, err := gonanoid.Generate(idAlphabet, 7)
	if err != nil {
		return ""
	}
	return id
}

// GenerateInviteToken returns a URL-safe token used to identify a team
// member in availability and voting links.
func GenerateInviteToken() string {
	token, err := gonanoid.Generate(idAlphabet, constants.InviteTokenLength)
	if err != nil {
		return ""
	}
	return token
}
