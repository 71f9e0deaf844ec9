package mappers

import (
	api "github.com/PratikS7412/Tower-Retrival-Time/api/v1alpha1"
	"github.com/PratikS7412/Tower-Retrival-Time/internal/estimation/params"
)

// BodyToRaw copies a decoded JSON body into a raw field mapping. A nil body
// is an empty mapping.
func BodyToRaw(body map[string]interface{}) params.Raw {
	raw := make(params.Raw, len(body))
	for k, v := range body {
		raw[k] = v
	}
	return raw
}

// SessionMessageToRaw merges the batch and the single field of msg. The
// single field wins when both name the same key.
func SessionMessageToRaw(msg api.SessionMessage) params.Raw {
	raw := BodyToRaw(msg.Fields)
	if msg.Field != "" {
		raw[msg.Field] = msg.Value
	}
	return raw
}
