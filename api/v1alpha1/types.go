// Package v1alpha1 holds the wire types of the retrieval planner HTTP API.
package v1alpha1

// Error is returned with every 4xx and 5xx reply.
type Error struct {
	Message   string  `json:"message"`
	RequestId *string `json:"requestId,omitempty"`
}

// TowerType describes one tower configuration code.
type TowerType struct {
	Code             string    `json:"code"`
	Weights          []float64 `json:"weights"`
	ComplexityFactor float64   `json:"complexityFactor"`
}

type TowerTypeList []TowerType

// SessionMessage is sent by a live session client. Exactly one of the forms
// is expected per message: a single Field/Value pair, a Fields batch, or Reset.
// An empty Value clears the field.
type SessionMessage struct {
	Field  string                 `json:"field,omitempty" validate:"omitempty,parameter_field"`
	Value  interface{}            `json:"value,omitempty"`
	Fields map[string]interface{} `json:"fields,omitempty"`
	Reset  bool                   `json:"reset,omitempty"`
}

type Health struct {
	Status string `json:"status"`
}
