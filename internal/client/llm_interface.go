package client

import "context"

// Intent is the classifier's decision for one user message.
type Intent struct {
	// Tool is one of the names passed to ClassifyIntent, or "" when the
	// model could not pick one.
	Tool string

	// CarName is the car model mentioned in the message, "" when absent.
	CarName string
}

// IntentClassifier picks which assistant tool should handle a user message
// Both GroqClient and OllamaClient implement this interface
type IntentClassifier interface {
	// ClassifyIntent chooses one of tools for the message and extracts the
	// car name argument.
	ClassifyIntent(ctx context.Context, message string, tools []string) (Intent, error)
}

// Ensure both clients implement IntentClassifier
var _ IntentClassifier = (*GroqClient)(nil)
var _ IntentClassifier = (*OllamaClient)(nil)
