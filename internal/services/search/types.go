package search

// Search types accepted in the request body
const (
	TypeWeb   = "web"
	TypeMusic = "music"
	TypeImage = "image"
)

// MaxResults caps every result list returned to the caller
const MaxResults = 10

// Result is a single normalized search hit
type Result struct {
	Title     string `json:"title"`
	Snippet   string `json:"snippet"`
	URL       string `json:"url"`
	Source    string `json:"source"`
	Thumbnail string `json:"thumbnail,omitempty"`
	Type      string `json:"type,omitempty"`
}

// Request is the JSON body of a search call
type Request struct {
	Query string `json:"query" example:"golang"`
	Type  string `json:"type,omitempty" example:"web" enums:"web,music,image"`
}

// Response is the JSON body of a successful search call
type Response struct {
	Query   string   `json:"query"`
	Type    string   `json:"type"`
	Results []Result `json:"results"`
}

// ErrorBody is the JSON body of a rejected call
type ErrorBody struct {
	Error string `json:"error"`
}

// Event is the HTTP-shaped invocation handed over by a function runtime or
// translated from a live HTTP request.
type Event struct {
	HTTPMethod            string            `json:"httpMethod"`
	Body                  string            `json:"body"`
	Headers               map[string]string `json:"headers,omitempty"`
	QueryStringParameters map[string]string `json:"queryStringParameters,omitempty"`
}

// EventResponse is the HTTP-shaped result of handling an Event
type EventResponse struct {
	StatusCode      int               `json:"statusCode"`
	Headers         map[string]string `json:"headers"`
	Body            string            `json:"body"`
	IsBase64Encoded bool              `json:"isBase64Encoded"`
}
