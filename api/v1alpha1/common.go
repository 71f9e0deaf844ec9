package v1alpha1

const (
	HealthStatusOK = "ok"
)

// IsEmpty reports whether the message carries no instruction at all.
func (m SessionMessage) IsEmpty() bool {
	return m.Field == "" && len(m.Fields) == 0 && !m.Reset
}
