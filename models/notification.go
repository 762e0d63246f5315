package models

// PushPayload is the structured notification handed to the delivery service.
// Data carries client-side routing hints (deeplink) alongside the event
// identifiers.
type PushPayload struct {
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data"`
}
