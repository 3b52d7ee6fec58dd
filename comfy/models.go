package comfy

// Wire models for the ComfyUI-compatible HTTP API (without the server's
// own schema packages).

// Node is one workflow graph node. Inputs hold either literals or
// ["node_id", output_slot] references.
type Node struct {
	ClassType string                 `json:"class_type"`
	Inputs    map[string]interface{} `json:"inputs"`
}

// Workflow is a node graph keyed by node id.
type Workflow map[string]Node

// PromptRequest queues a workflow for execution.
type PromptRequest struct {
	Prompt   Workflow `json:"prompt"`
	ClientID string   `json:"client_id"`
}

// PromptResponse acknowledges a queued workflow.
type PromptResponse struct {
	PromptID string `json:"prompt_id"`
	Number   int    `json:"number,omitempty"`
}

// UploadResponse names the stored input image.
type UploadResponse struct {
	Name      string `json:"name"`
	Subfolder string `json:"subfolder,omitempty"`
	Type      string `json:"type,omitempty"`
}

// OutputFile locates one produced file on the server.
type OutputFile struct {
	Filename  string `json:"filename"`
	Subfolder string `json:"subfolder"`
	Type      string `json:"type"`
}

// NodeOutput lists the files a node produced.
type NodeOutput struct {
	Images []OutputFile `json:"images"`
}

// HistoryEntry is the per-prompt record the server keeps once a
// workflow ran.
type HistoryEntry struct {
	Outputs map[string]NodeOutput `json:"outputs"`
}

// History is the response of the history endpoint, keyed by prompt id.
type History map[string]HistoryEntry
