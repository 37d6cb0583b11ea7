/*
Package server implements msgpack IPC for the hangman solver.

The server reads msgpack encoded requests from stdin and writes msgpack encoded
responses to stdout, one value after the other with no extra framing. It is
meant to be spawned by an editor plugin or a bot that wants candidate words
without shelling out for every guess.

# IPC

Each request carries an ID that is echoed back, and an action.
Solve requests look like this:

	{"id": "req_001", "action": "solve", "pat": "ca.", "ex": "t", "pg": 0, "ps": 10}

The server responds with one page of matches and the letter table:

	{"id": "req_001", "w": ["car", "can"], "l": [{"k": "c", "n": 2}, {"k": "a", "n": 2}], "t": 2, "pg": 0, "pgs": 1, "us": 38}

Word list management:

	{"id": "lst_001", "action": "lists"}
	{"id": "lst_002", "action": "select", "list": "english"}

Both answer with the catalog and the currently selected list.
A solve request may name a list in "list" to query it without selecting it.

Failed requests are answered with an error message and an HTTP-like code:
400 for malformed requests, 404 for unknown lists, 500 for anything else.

The first value the server writes is {"status": "ready"}. The loop ends
cleanly when stdin reaches EOF.
*/
package server

const (
	ActionSolve  = "solve"
	ActionLists  = "lists"
	ActionSelect = "select"
)

// Request is the union of every request shape; Action picks the fields that matter.
type Request struct {
	ID       string `msgpack:"id"`
	Action   string `msgpack:"action"`
	Pattern  string `msgpack:"pat,omitempty"`
	Excluded string `msgpack:"ex,omitempty"`
	List     string `msgpack:"list,omitempty"`
	Page     int    `msgpack:"pg,omitempty"`
	PageSize int    `msgpack:"ps,omitempty"`
}

// LetterFreq - one row of the letter table
type LetterFreq struct {
	Letter string `msgpack:"k"`
	Count  int    `msgpack:"n"`
}

// SolveResponse - one page of candidate words
type SolveResponse struct {
	ID        string       `msgpack:"id"`
	Words     []string     `msgpack:"w"`
	Letters   []LetterFreq `msgpack:"l"`
	Total     int          `msgpack:"t"`
	Page      int          `msgpack:"pg"`
	Pages     int          `msgpack:"pgs"`
	HasNext   bool         `msgpack:"nx"`
	HasPrev   bool         `msgpack:"pv"`
	TimeTaken int64        `msgpack:"us"`
}

// ListsResponse - catalog state
type ListsResponse struct {
	ID      string   `msgpack:"id"`
	Lists   []string `msgpack:"lists"`
	Current string   `msgpack:"current"`
	Default string   `msgpack:"default"`
}

// ErrorResponse holds basic error information for failed requests
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
