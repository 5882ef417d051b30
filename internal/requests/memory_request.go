package requests

type MemorySessionRequest struct {
	TotalSize int    `json:"total_size,omitempty"`
	Strategy  string `json:"strategy,omitempty"`
}

type AllocateRequest struct {
	Owner string `json:"owner"`
	Size  int    `json:"size"`
}

type FreeRequest struct {
	Owner string `json:"owner"`
}
