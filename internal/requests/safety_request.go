package requests

// ResourceProcess is one row of the resource-allocation table.
type ResourceProcess struct {
	Id         string `json:"id"`
	Name       string `json:"name,omitempty"`
	Allocation []int  `json:"allocation"`
	Max        []int  `json:"max"`
}

// SafetyRequest carries an allocation state for the Banker's safety check.
// When Clamp is set, allocations above max are lowered to max instead of
// being rejected.
type SafetyRequest struct {
	Processes []ResourceProcess `json:"processes"`
	Available []int             `json:"available"`
	Clamp     bool              `json:"clamp,omitempty"`
}
