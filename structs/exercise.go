package structs

// UnlockRequest carries the shared access code.
type UnlockRequest struct {
	Code string `json:"code"`
}

// MarkRequest carries the answer text to be scored.
type MarkRequest struct {
	AnswerText string `json:"answerText"`
}
