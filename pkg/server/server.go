package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/bastiangx/hangserve/internal/logger"
	"github.com/bastiangx/hangserve/internal/utils"
	"github.com/bastiangx/hangserve/pkg/session"
	"github.com/bastiangx/hangserve/pkg/solver"
	"github.com/bastiangx/hangserve/pkg/wordlist"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Server handles the IPC for solve requests
type Server struct {
	mu           sync.Mutex
	session      *session.Session
	lists        *wordlist.Cache
	maxPageSize  int
	decoder      *msgpack.Decoder
	encoder      *msgpack.Encoder
	log          *log.Logger
	requestCount int
}

// NewServer creates a server that answers requests read from in on out.
// maxPageSize caps the page size a client may ask for.
func NewServer(sess *session.Session, maxPageSize int, in io.Reader, out io.Writer) *Server {
	if maxPageSize <= 0 {
		maxPageSize = solver.DefaultPageSize
	}
	var lists *wordlist.Cache
	if cat := sess.Catalog(); cat != nil {
		lists = wordlist.NewCache(cat, wordlist.DefaultCacheLists)
	}
	return &Server{
		session:     sess,
		lists:       lists,
		maxPageSize: maxPageSize,
		decoder:     msgpack.NewDecoder(in),
		encoder:     msgpack.NewEncoder(out),
		log:         logger.New("ipc"),
	}
}

// Start begins listening for IPC requests. It returns nil when the input
// reaches EOF.
func (s *Server) Start() error {
	s.log.Debug("Starting Server.")

	if err := s.encoder.Encode(map[string]string{"status": "ready"}); err != nil {
		return fmt.Errorf("announce ready: %w", err)
	}

	for {
		raw, err := s.decoder.DecodeRaw()
		if err != nil {
			if errors.Is(err, io.EOF) {
				s.log.Debugf("Input closed after %d requests", s.requestCount)
				if s.lists != nil {
					s.log.Debugf("List cache: %v", s.lists.Stats())
				}
				return nil
			}
			s.log.Errorf("Reading request: %v", err)
			return err
		}

		var req Request
		if err := msgpack.Unmarshal(raw, &req); err != nil {
			s.log.Errorf("Unmarshaling request: %v", err)
			s.sendError("", "Invalid msgpack request", 400)
			continue
		}
		s.handleRequest(req)
	}
}

// handleRequest dispatches one decoded request
func (s *Server) handleRequest(req Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requestCount++

	switch req.Action {
	case ActionSolve:
		s.handleSolve(req)
	case ActionLists:
		s.sendResponse(s.listsResponse(req.ID))
	case ActionSelect:
		s.handleSelect(req)
	case "":
		s.sendError(req.ID, "Missing 'action' parameter", 400)
	default:
		s.sendError(req.ID, fmt.Sprintf("Unknown action: %s", req.Action), 400)
	}
}

func (s *Server) handleSolve(req Request) {
	opts := s.session.Options()

	if req.Pattern == "" {
		s.sendError(req.ID, "Missing 'pat' parameter", 400)
		s.log.Debug("Pattern is empty in request")
		return
	}
	if !utils.IsValidPattern(req.Pattern, opts.Wildcard) {
		s.sendError(req.ID, fmt.Sprintf("Invalid pattern: %q", req.Pattern), 400)
		return
	}
	pattern := solver.ParsePattern(req.Pattern, opts.Wildcard)
	if pattern.Len() > session.MaxFields {
		s.sendError(req.ID, fmt.Sprintf("Pattern exceeds maximum length of %d letters", session.MaxFields), 400)
		return
	}

	words := s.session.Words()
	if req.List != "" {
		var err error
		if words, err = s.loadList(req.List); err != nil {
			s.sendError(req.ID, err.Error(), codeFor(err))
			return
		}
	}

	size := req.PageSize
	if size <= 0 {
		size = opts.PageSize
	}
	size = min(size, s.maxPageSize)

	start := time.Now()
	res := solver.Solve(words, pattern, solver.NewLetterSet(req.Excluded), opts.Solver)
	page := solver.Paginate(res.Words, req.Page, size)
	elapsed := time.Since(start)
	s.log.Debugf("Took [ %v ] for pattern '%s'", elapsed, pattern)

	letters := make([]LetterFreq, len(res.Letters))
	for i, lc := range res.Letters {
		letters[i] = LetterFreq{Letter: string(lc.Letter), Count: lc.Count}
	}

	s.sendResponse(SolveResponse{
		ID:        req.ID,
		Words:     page.Items,
		Letters:   letters,
		Total:     page.Total,
		Page:      page.Index,
		Pages:     page.Pages,
		HasNext:   page.HasNext,
		HasPrev:   page.HasPrev,
		TimeTaken: elapsed.Microseconds(),
	})
}

func (s *Server) handleSelect(req Request) {
	if req.List == "" {
		s.sendError(req.ID, "Missing 'list' parameter", 400)
		return
	}
	if err := s.session.SelectList(req.List); err != nil {
		s.sendError(req.ID, err.Error(), codeFor(err))
		return
	}
	s.log.Infof("Selected list %s", s.session.ListName())
	s.sendResponse(s.listsResponse(req.ID))
}

func (s *Server) listsResponse(id string) ListsResponse {
	resp := ListsResponse{ID: id, Lists: []string{}, Current: s.session.ListName()}
	if cat := s.session.Catalog(); cat != nil {
		resp.Lists = cat.Names()
		resp.Default, _ = cat.Default()
	}
	return resp
}

// loadList returns the words of another list without selecting it.
func (s *Server) loadList(name string) ([]string, error) {
	if s.lists == nil {
		return nil, session.ErrNoCatalog
	}
	return s.lists.Load(name)
}

// Follow applies list changes until ctx is done or changes is closed.
func (s *Server) Follow(ctx context.Context, changes <-chan wordlist.Change) {
	for {
		select {
		case <-ctx.Done():
			return
		case change, ok := <-changes:
			if !ok {
				return
			}
			s.ApplyChange(change)
		}
	}
}

// ApplyChange refreshes the catalog after a list file changed and reloads the
// selected list when it was rewritten. A removed list stays in memory.
func (s *Server) ApplyChange(change wordlist.Change) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cat := s.session.Catalog()
	if cat == nil {
		return
	}
	if err := cat.Refresh(); err != nil {
		s.log.Warnf("Failed to refresh word lists: %v", err)
		return
	}
	s.lists.Invalidate(change.Name)
	if change.Name != s.session.ListName() {
		return
	}
	switch change.Kind {
	case wordlist.ListAdded, wordlist.ListModified:
		if err := s.session.Reload(); err != nil {
			s.log.Warnf("Failed to reload %s: %v", change.Name, err)
			return
		}
		s.log.Infof("Reloaded %s (%s words)", change.Name, utils.FormatWithCommas(len(s.session.Words())))
	case wordlist.ListRemoved:
		s.log.Warnf("Selected list %s was removed, keeping it in memory", change.Name)
	}
}

// sendResponse encodes response as the next msgpack value on the output
func (s *Server) sendResponse(response any) {
	if err := s.encoder.Encode(response); err != nil {
		s.log.Errorf("Encoding response: %v", err)
	}
}

// sendError sends an error response
func (s *Server) sendError(id, message string, code int) {
	s.sendResponse(ErrorResponse{ID: id, Error: message, Code: code})
}

func codeFor(err error) int {
	switch {
	case errors.Is(err, wordlist.ErrUnknownList),
		errors.Is(err, wordlist.ErrNoLists),
		errors.Is(err, session.ErrNoCatalog):
		return 404
	case errors.Is(err, wordlist.ErrAmbiguousList):
		return 400
	default:
		return 500
	}
}
