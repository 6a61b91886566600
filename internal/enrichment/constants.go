package enrichment

// DefaultSliceSize is the number of features processed concurrently per slice.
const DefaultSliceSize = 6

// Log messages
const (
	LogMsgRunStarted      = "Enrichment run started"
	LogMsgRunFinished     = "Enrichment run finished"
	LogMsgRunCancelled    = "Enrichment run cancelled"
	LogMsgSliceCompleted  = "Enrichment slice completed"
	LogMsgFeaturePanic    = "Recovered panic while enriching feature"
	LogMsgLookupFailed    = "Reference lookup failed, using base color"
	LogMsgPublishFailed   = "Failed to publish enrichment progress"
	LogMsgNilFeatureFound = "Skipping nil feature"
)
