package utils

import (
	"os"
	"os/signal"
	"strings"
	"syscall"
)

func ContainsString(targetString string, sliceOfStrings []string) bool {
	for i := range sliceOfStrings {
		if sliceOfStrings[i] == targetString {
			return true
		}
	}
	return false
}

// NormalizeInput trims the line terminator and surrounding spaces and lowercases the input
func NormalizeInput(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}

// IsMissing returns true for the values a CSV cell takes when there is no data
func IsMissing(value string) bool {
	switch strings.TrimSpace(value) {
	case "", "NaN", "NA", "<nil>":
		return true
	}
	return false
}

// GetSignalChannel returns a channel that receive interrupt or termination signals
func GetSignalChannel() chan os.Signal {
	signalChannel := make(chan os.Signal, 1)
	signal.Notify(signalChannel, os.Interrupt, syscall.SIGTERM)
	return signalChannel
}
