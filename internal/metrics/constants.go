package metrics

// Metric Names - HTTP
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Metric Names - Business
const (
	MetricNameRecipesCooked     = "recipes_cooked_total"
	MetricNameRecipesRated      = "recipes_rated_total"
	MetricNameRecipesCreated    = "recipes_created_total"
	MetricNameFridgeUpdates     = "fridge_updates_total"
	MetricNameSearchesPerformed = "recipe_searches_total"
	MetricNameUsersDeleted      = "users_deleted_total"
)

// Help Text - HTTP
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Number of HTTP requests currently being served"
)

// Help Text - Business
const (
	HelpTextRecipesCooked     = "Total number of cook actions performed"
	HelpTextRecipesRated      = "Total number of rating submissions"
	HelpTextRecipesCreated    = "Total number of recipes created"
	HelpTextFridgeUpdates     = "Total number of fridge mutations"
	HelpTextSearchesPerformed = "Total number of recipe searches by mode"
	HelpTextUsersDeleted      = "Total number of user deletion cascades"
)

// Label Names
const (
	LabelMethod     = "method"
	LabelPath       = "path"
	LabelStatus     = "status"
	LabelRecipeType = "recipe_type"
	LabelMode       = "mode"
	LabelOperation  = "operation"
)

// Search mode label values
const (
	SearchModeExact     = "exact"
	SearchModeProximity = "proximity"
)

// Fridge operation label values
const (
	FridgeOpAdd       = "add"
	FridgeOpRemove    = "remove"
	FridgeOpOverwrite = "overwrite"
	FridgeOpCook      = "cook"
)

// HTTPLatencyBuckets are tuned for a local-network API backed by Postgres
var HTTPLatencyBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5}
