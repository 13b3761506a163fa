package intent

// Intent is one of the fixed action categories the service can execute.
type Intent string

const (
	IntentSummarize   Intent = "summarize"
	IntentExtract     Intent = "extract"
	IntentEmail       Intent = "email"
	IntentCreateChart Intent = "create_chart"
	IntentAnalyze     Intent = "analyze"
)

// CatalogEntry maps an intent to the representative phrases used by the
// keyword fallback scorer. The phrases are never used for dispatch.
type CatalogEntry struct {
	Intent  Intent
	Phrases []string
}

// Catalog is the ordered, process-wide intent table. It is the single source
// of truth for both the remote classifier's candidate labels and the fallback
// scorer, so the two can never drift apart. The slice order is the tie-break
// order for equal keyword scores; do not reorder entries casually.
var Catalog = []CatalogEntry{
	{
		Intent: IntentSummarize,
		Phrases: []string{
			"create a summary",
			"summarize this text",
			"summarize this document",
			"give me a summary",
			"provide key points",
			"brief overview",
		},
	},
	{
		Intent: IntentExtract,
		Phrases: []string{
			"extract data",
			"pull out information",
			"find key details",
			"get data points",
			"extract important information",
		},
	},
	{
		Intent: IntentEmail,
		Phrases: []string{
			"send an email",
			"email this content",
			"forward via email",
			"share through email",
			"mail this information",
		},
	},
	{
		Intent: IntentCreateChart,
		Phrases: []string{
			"create a visualization",
			"make a chart",
			"plot this data",
			"visualize information",
			"generate a graph",
		},
	},
	{
		Intent: IntentAnalyze,
		Phrases: []string{
			"analyze this text",
			"provide analysis",
			"evaluate content",
			"assess this information",
		},
	},
}

// Labels returns the intent names in catalog order, for use as the remote
// classifier's candidate labels.
func Labels() []string {
	labels := make([]string, 0, len(Catalog))
	for _, entry := range Catalog {
		labels = append(labels, string(entry.Intent))
	}
	return labels
}

// Known reports whether name is a member of the closed intent set.
func Known(name string) bool {
	for _, entry := range Catalog {
		if string(entry.Intent) == name {
			return true
		}
	}
	return false
}
