package dto

// SolveRequest is the body of POST /api/solve. All three fields are free
// text, exactly as typed into the form: items one per line, amounts in
// either separator convention.
type SolveRequest struct {
	Items     string `json:"items"`
	Target    string `json:"target"`
	Tolerance string `json:"tolerance"`
}

// SolveListParams represents query parameters for listing solve history.
type SolveListParams struct {
	Limit int `json:"limit"`
}

// DefaultSolveListParams returns default values for solve list params.
func DefaultSolveListParams() SolveListParams {
	return SolveListParams{
		Limit: 20,
	}
}
