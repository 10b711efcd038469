package consts

// Clinical endpoint types accepted from digitized figures.
const (
	ENDPOINT_OS  = "OS"
	ENDPOINT_PFS = "PFS"
	ENDPOINT_EFS = "EFS"
	ENDPOINT_DFS = "DFS"
)

// Vision analysis providers the extraction service can route to.
const (
	PROVIDER_ANTHROPIC = "anthropic"
	PROVIDER_OPENAI    = "openai"
)

const (
	DEFAULT_ARM         = "Treatment"
	DEFAULT_GRANULARITY = 0.25
)
