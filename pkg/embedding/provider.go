package embedding

import "context"

// Provider generates a vector embedding for a piece of text. The task type
// hints the model at the intended use ("retrieval_document" when indexing the
// service catalog, "retrieval_query" when matching an idea against it).
type Provider interface {
	Generate(ctx context.Context, text string, taskType string) (*Response, error)
}

const (
	TaskTypeDocument = "retrieval_document"
	TaskTypeQuery    = "retrieval_query"
)

type Response struct {
	Embedding ResponseEmbedding `json:"embedding"`
}

type ResponseEmbedding struct {
	Values []float32 `json:"values"`
}
