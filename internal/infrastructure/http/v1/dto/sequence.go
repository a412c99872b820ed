package dto

import (
	"time"

	"stokado/internal/core/sequence"
)

// GenerateRequest asks for identifiers under a prefix.
type GenerateRequest struct {
	// Count of identifiers to reserve; defaults to 1.
	Count int `json:"count"`
}

// GenerateResponse returns reserved identifiers.
type GenerateResponse struct {
	Prefix string   `json:"prefix"`
	IDs    []string `json:"ids"`
}

// ResetSequenceRequest overwrites a counter. Empty ResetTo resets to the
// first identifier of the prefix.
type ResetSequenceRequest struct {
	ResetTo string `json:"resetTo"`
}

// ResetSequenceResponse reports the new counter position.
type ResetSequenceResponse struct {
	Prefix  string `json:"prefix"`
	ResetTo string `json:"resetTo"`
}

// SequenceStateResponse is the API view of one prefix counter.
type SequenceStateResponse struct {
	Prefix    string    `json:"prefix"`
	Letters   string    `json:"letters"`
	Number    int       `json:"number"`
	LatestID  string    `json:"latestId,omitempty"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FromSequenceState creates SequenceStateResponse from a counter state.
func FromSequenceState(s sequence.State) SequenceStateResponse {
	resp := SequenceStateResponse{
		Prefix:    s.Prefix,
		Letters:   s.Letters,
		Number:    s.Number,
		UpdatedAt: s.UpdatedAt,
	}
	if s.WellFormed() && s.Number > 0 {
		resp.LatestID = sequence.Format(s.Prefix, s.Letters, s.Number)
	}
	return resp
}
