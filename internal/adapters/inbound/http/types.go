package http

// ErrorCode classifies an API error.
type ErrorCode string

const (
	BADREQUEST    ErrorCode = "BAD_REQUEST"
	NOTFOUND      ErrorCode = "NOT_FOUND"
	INTERNALERROR ErrorCode = "INTERNAL_ERROR"
)

// Error is the body of an API error.
type Error struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// ErrorResp wraps an API error.
type ErrorResp struct {
	Error Error `json:"error"`
}

// EmbeddingInput is a precomputed embedding sent by the client.
type EmbeddingInput struct {
	Text          string    `json:"text"`
	Embedding     []float64 `json:"embedding"`
	AuxiliaryData *string   `json:"auxiliaryData,omitempty"`
}

// RegisterRouteReq is the body of POST /v1/routes.
// Exactly one of Phrases or Embeddings must be set.
type RegisterRouteReq struct {
	Destination string           `json:"destination"`
	Phrases     []string         `json:"phrases,omitempty"`
	Embeddings  []EmbeddingInput `json:"embeddings,omitempty"`
}

// RegisterRouteResp is returned once a route was added.
type RegisterRouteResp struct {
	Destination string `json:"destination"`
	Kind        string `json:"kind"`
	Embeddings  int    `json:"embeddings"`
}

// RouteReq is the body of POST /v1/route.
type RouteReq struct {
	Request string  `json:"request"`
	Default *string `json:"default,omitempty"`
}

// RouteParams are the query parameters of GET /v1/route.
type RouteParams struct {
	Request string  `form:"request" json:"request"`
	Default *string `form:"default,omitempty" json:"default,omitempty"`
}

// DestinationResp is the routing answer.
type DestinationResp struct {
	Destination string  `json:"destination"`
	Accuracy    float64 `json:"accuracy"`
}

// RouterStatusResp describes the router state.
type RouterStatusResp struct {
	Ready        bool     `json:"ready"`
	Embeddings   int      `json:"embeddings"`
	Destinations []string `json:"destinations"`
}
