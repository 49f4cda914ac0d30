package core

// Client is a connected chat participant as seen by the core layer.
// Username and Room are session fields filled in on join; the hub uses them
// to emit the disconnect notification when the connection drops. Events is
// drained by the transport's write loop.
type Client struct {
	ID       string
	Username string
	Room     string
	Events   chan *Event
}

// NewClient constructs a client with an initialized event channel.
func NewClient(id string) *Client {
	return &Client{
		ID:     id,
		Events: make(chan *Event, 32),
	}
}
