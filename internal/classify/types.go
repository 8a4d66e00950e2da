package classify

import (
	"encoding/json"
	"fmt"
)

// Request is the body posted to the classification endpoint.
type Request struct {
	Text string `json:"text"`
}

// Response mirrors the classification payload. IsSpam is the documented
// field; Prediction is what the reference Flask backend emits (1 = spam).
type Response struct {
	IsSpam     *bool `json:"isSpam"`
	Prediction *int  `json:"prediction"`
}

// Verdict is the decoded, unambiguous result of a classification.
type Verdict struct {
	IsSpam bool
}

// Label returns the heading shown for the verdict.
func (v Verdict) Label() string {
	if v.IsSpam {
		return "Spam Detected"
	}
	return "Legitimate Message"
}

// Verdict resolves the payload into a Verdict. isSpam wins when both fields
// are present.
func (r Response) Verdict() (Verdict, error) {
	if r.IsSpam != nil {
		return Verdict{IsSpam: *r.IsSpam}, nil
	}
	if r.Prediction != nil {
		switch *r.Prediction {
		case 0:
			return Verdict{IsSpam: false}, nil
		case 1:
			return Verdict{IsSpam: true}, nil
		default:
			return Verdict{}, fmt.Errorf("%w: prediction %d", ErrMalformedResponse, *r.Prediction)
		}
	}
	return Verdict{}, fmt.Errorf("%w: missing isSpam", ErrMalformedResponse)
}

// decodeResponse parses a response body into a Verdict.
func decodeResponse(data []byte) (Verdict, error) {
	var payload Response
	if err := json.Unmarshal(data, &payload); err != nil {
		return Verdict{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return payload.Verdict()
}
