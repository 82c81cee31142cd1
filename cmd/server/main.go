// Command server is a small web playground around the core: sessions
// hold a board each, and a websocket pushes position updates so a web
// UI can drive the engine without speaking UCI.
package main

import (
	"encoding/json"
	"net/http"
	"os"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"golang.org/x/exp/slices"

	"github.com/kestrelchess/kestrel/internal/bitboards"
	"github.com/kestrelchess/kestrel/internal/game"
	. "github.com/kestrelchess/kestrel/internal/helpers"
	"github.com/kestrelchess/kestrel/internal/movegen"
)

type session struct {
	mu    sync.Mutex
	id    string
	board *game.Board
}

type sessionManager struct {
	mu       sync.Mutex
	tables   *bitboards.AttackTables
	sessions map[string]*session
}

func newSessionManager(tables *bitboards.AttackTables) *sessionManager {
	return &sessionManager{
		tables:   tables,
		sessions: map[string]*session{},
	}
}

func (m *sessionManager) create() (*session, Error) {
	board := game.NewBoard()
	if err := board.LoadFen(game.StartingFen); !IsNil(err) {
		return nil, err
	}

	s := &session{id: uuid.NewString(), board: board}

	m.mu.Lock()
	m.sessions[s.id] = s
	m.mu.Unlock()
	return s, NilError
}

func (m *sessionManager) get(id string) (*session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	return s, ok
}

// UpdateToWeb mirrors the board to the UI after every change.
type UpdateToWeb struct {
	FenString     string   `json:"fenString"`
	LastMove      string   `json:"lastMove"`
	Selection     string   `json:"selection"`
	PossibleMoves []string `json:"possibleMoves"`
	Player        string   `json:"player"`
}

type MessageFromWeb struct {
	NewFen    *string `json:"newFen"`
	Selection *string `json:"selection"`
	Move      *string `json:"move"`
}

func (m *sessionManager) update(s *session, msg MessageFromWeb) (UpdateToWeb, Error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	update := UpdateToWeb{}

	if msg.NewFen != nil {
		if err := s.board.LoadFen(*msg.NewFen); !IsNil(err) {
			return update, err
		}
	}

	if msg.Move != nil {
		moves, err := movegen.LegalMoves(m.tables, s.board)
		if !IsNil(err) {
			return update, err
		}
		applied := false
		for _, move := range moves {
			if move.String() == *msg.Move {
				if err := s.board.MakeMove(move); !IsNil(err) {
					return update, err
				}
				update.LastMove = *msg.Move
				applied = true
				break
			}
		}
		if !applied {
			return update, Errorf("move %q not legal in %q", *msg.Move, s.board.FenString())
		}
	}

	if msg.Selection != nil {
		update.Selection = *msg.Selection
		square, err := SquareFromString(*msg.Selection)
		if !IsNil(err) {
			return update, err
		}
		moves, err := movegen.LegalMoves(m.tables, s.board)
		if !IsNil(err) {
			return update, err
		}
		for _, move := range moves {
			if move.From() == square {
				update.PossibleMoves = append(update.PossibleMoves, move.String())
			}
		}
		slices.Sort(update.PossibleMoves)
	}

	update.FenString = s.board.FenString()
	update.Player = s.board.SideToMove.String()
	return update, NilError
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type server struct {
	manager *sessionManager
	logger  Logger
}

func (sv *server) handleNew(w http.ResponseWriter, r *http.Request) {
	s, err := sv.manager.create()
	if !IsNil(err) {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]string{
		"id":  s.id,
		"fen": s.board.FenString(),
	})
}

func (sv *server) handleWebsocket(w http.ResponseWriter, r *http.Request) {
	s, ok := sv.manager.get(mux.Vars(r)["id"])
	if !ok {
		http.Error(w, "unknown session", http.StatusNotFound)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		sv.logger.Println("upgrade:", err)
		return
	}
	defer func() { _ = conn.Close() }()

	for {
		var msg MessageFromWeb
		if err := conn.ReadJSON(&msg); err != nil {
			sv.logger.Println("read:", err)
			return
		}

		update, updateErr := sv.manager.update(s, msg)
		if !IsNil(updateErr) {
			sv.logger.Println("update:", updateErr)
		}
		if err := conn.WriteJSON(update); err != nil {
			sv.logger.Println("write:", err)
			return
		}
	}
}

func main() {
	port := "8002"
	if len(os.Args) > 1 {
		port = os.Args[1]
	}

	sv := &server{
		manager: newSessionManager(bitboards.NewAttackTables()),
		logger:  DefaultLogger,
	}

	router := mux.NewRouter()
	router.HandleFunc("/api/new", sv.handleNew).Methods("POST")
	router.HandleFunc("/ws/{id}", sv.handleWebsocket)

	sv.logger.Println("listening on :" + port)
	sv.logger.Println(http.ListenAndServe(":"+port, router))
}
