package utils

import (
	"github.com/google/uuid"
)

// lotNamespace scopes lot ids derived from submission ids
var lotNamespace = uuid.MustParse("6f1d7c2e-58a4-4c8e-9a53-3f0b1f2d8c41")

// GenerateID returns a new unique identifier string
func GenerateID() string {
	return uuid.New().String()
}

// LotIDForSubmission returns the lot id a submission is promoted to.
// The same submission always yields the same id.
func LotIDForSubmission(submissionID string) string {
	return uuid.NewSHA1(lotNamespace, []byte(submissionID)).String()
}
