package services

import (
	"fmt"
	"strings"
)

// emergencyMessages maps a normalized category to its message template. The
// shortened location URL is appended to the template verbatim.
var emergencyMessages = map[string]string{
	"stalking":     "EMERGENCY: I am being stalked. My current location is: ",
	"harassment":   "EMERGENCY: I am being harassed. My current location is: ",
	"accident":     "EMERGENCY: I have been in an accident. My current location is: ",
	"violence":     "EMERGENCY: I am experiencing violence. My current location is: ",
	"homeinvasion": "EMERGENCY: There is a home invasion. My current location is: ",
	"cabtrouble":   "EMERGENCY: I am having trouble with my cab. My current location is: ",
	"stranded":     "EMERGENCY: I am stranded. My current location is: ",
}

// ComposeEmergencyMessage builds the outbound alert text for a category. A
// category without a template still yields a usable generic message, and the
// result is collapsed to a single line so it survives SMS transport.
func ComposeEmergencyMessage(emergencyType, locationURL string) string {
	var message string
	if tmpl, ok := emergencyMessages[normalizeEmergencyType(emergencyType)]; ok {
		message = tmpl + locationURL
	} else {
		message = fmt.Sprintf("EMERGENCY: I am facing %s. My current location is: %s", emergencyType, locationURL)
	}
	return strings.TrimSpace(strings.ReplaceAll(message, "\n", " "))
}

// normalizeEmergencyType lowercases and strips all whitespace, so
// "Home Invasion" matches the "homeinvasion" template.
func normalizeEmergencyType(emergencyType string) string {
	return strings.Join(strings.Fields(strings.ToLower(emergencyType)), "")
}
