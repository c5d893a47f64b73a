package models

// ContextsPayload is the body of the contexts lookup
type ContextsPayload struct {
	ContextList ContextList `json:"contextList"`
}

// ContextList contains the statistical contexts known to the ONS API
type ContextList struct {
	StatisticalContext List[StatisticalContext] `json:"statisticalContext"`
}

// StatisticalContext is a top level category of datasets, e.g. "Census"
type StatisticalContext struct {
	ContextName string `json:"contextName"`
}

// Names returns the name of every context in the payload
func (p ContextsPayload) Names() []string {
	names := make([]string, 0, len(p.ContextList.StatisticalContext))
	for _, c := range p.ContextList.StatisticalContext {
		names = append(names, c.ContextName)
	}
	return names
}
