package responses

// SafetyStep records one process completing during the safety scan and the
// work vector after it released its allocation.
type SafetyStep struct {
	ProcessId   string `json:"process_id"`
	Work        []int  `json:"work"`
	Description string `json:"description"`
}

// SafetyResponse is the outcome of a Banker's safety check. An unsafe state
// is reported with Safe=false and a partial Sequence; it is not an error.
type SafetyResponse struct {
	Safe     bool         `json:"safe"`
	Sequence []string     `json:"sequence"`
	Steps    []SafetyStep `json:"steps"`
	Need     [][]int      `json:"need"`
}
