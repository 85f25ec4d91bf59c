package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"net/http"
	"time"

	"github.com/bryanchriswhite/winsnap/internal/capture"
	"github.com/bryanchriswhite/winsnap/internal/logger"
	"github.com/bryanchriswhite/winsnap/internal/output"
	"github.com/bryanchriswhite/winsnap/internal/presenter"
	"github.com/bryanchriswhite/winsnap/internal/usecase"
	"github.com/bryanchriswhite/winsnap/internal/window"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
)

// Windows is the window system the server exposes
type Windows interface {
	usecase.ScreenshotGateway
	usecase.ListWindowsGateway
}

// Server represents the HTTP API server
type Server struct {
	router   *mux.Router
	windows  Windows
	encoding output.Options
	upgrader websocket.Upgrader
}

// NewServer creates a new API server
func NewServer(windows Windows, encoding output.Options) *Server {
	s := &Server{
		router:   mux.NewRouter(),
		windows:  windows,
		encoding: encoding,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true // Allow all origins for local tooling
			},
		},
	}

	s.setupRoutes()
	return s
}

// setupRoutes configures the API routes
func (s *Server) setupRoutes() {
	api := s.router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/windows", s.handleListWindows).Methods("GET")
	api.HandleFunc("/windows/capture", s.handleCapture).Methods("GET")
	api.HandleFunc("/ws", s.handleSocket)

	// Health check
	api.HandleFunc("/health", s.handleHealth).Methods("GET")
}

// Handler returns the routed handler with CORS applied
func (s *Server) Handler() http.Handler {
	return s.enableCORS(s.router)
}

// Start starts the HTTP server
func (s *Server) Start(port int) error {
	addr := fmt.Sprintf(":%d", port)
	logger.WithComponent("api").Info().
		Str("addr", addr).
		Msg("Starting server")

	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv.ListenAndServe()
}

// enableCORS adds CORS headers
func (s *Server) enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// HTTP Handlers

func (s *Server) handleListWindows(w http.ResponseWriter, r *http.Request) {
	result, err := usecase.NewListWindows(s.windows).Execute()
	if err != nil {
		writeError(w, err)
		return
	}

	doc, err := presenter.Document(result)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (s *Server) handleCapture(w http.ResponseWriter, r *http.Request) {
	if !r.URL.Query().Has("title") {
		writeJSON(w, http.StatusBadRequest, presenter.ErrorDocument("missing title query parameter"))
		return
	}
	title := r.URL.Query().Get("title")

	formatName := r.URL.Query().Get("format")
	if formatName == "" {
		formatName = string(output.FormatPNG)
	}
	format, err := output.ParseFormat(formatName)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, presenter.ErrorDocument(err.Error()))
		return
	}

	sink := &responseSink{w: w, format: format, opts: s.encoding}
	if _, err := usecase.NewTakeScreenshot(s.windows, sink).Execute(title, "capture."+string(format)); err != nil {
		if sink.written {
			logger.WithComponent("api").Error().Err(err).Msg("Failed to stream capture")
			return
		}
		writeError(w, err)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// socketCommand is one request on the websocket
type socketCommand struct {
	Op    string `json:"op"`
	Title string `json:"title,omitempty"`
}

// FindWindowResult answers a find command
type FindWindowResult struct {
	Type   string `json:"_type"`
	Title  string `json:"title"`
	Window string `json:"window"`
}

// handleSocket answers list and find commands until the client disconnects
func (s *Server) handleSocket(w http.ResponseWriter, r *http.Request) {
	log := logger.WithComponent("api")

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn().Err(err).Msg("WebSocket upgrade error")
		return
	}
	defer conn.Close()

	for {
		var cmd socketCommand
		if err := conn.ReadJSON(&cmd); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Debug().Err(err).Msg("WebSocket read error")
			}
			return
		}

		if err := conn.WriteJSON(s.answer(cmd)); err != nil {
			log.Debug().Err(err).Msg("WebSocket write error")
			return
		}
	}
}

func (s *Server) answer(cmd socketCommand) any {
	switch cmd.Op {
	case "list":
		result, err := usecase.NewListWindows(s.windows).Execute()
		if err != nil {
			return presenter.ErrorDocument(err.Error())
		}
		doc, err := presenter.Document(result)
		if err != nil {
			return presenter.ErrorDocument(err.Error())
		}
		return doc
	case "find":
		win, found, err := s.windows.FindWindow(cmd.Title)
		if err != nil {
			return presenter.ErrorDocument(err.Error())
		}
		if !found {
			return presenter.ErrorDocument((&usecase.WindowNotFoundError{Title: cmd.Title}).Error())
		}
		return FindWindowResult{Type: "FindWindowResult", Title: cmd.Title, Window: win.String()}
	default:
		return presenter.ErrorDocument(fmt.Sprintf("unknown op %q (use 'list' or 'find')", cmd.Op))
	}
}

// responseSink persists a capture by encoding it into the HTTP response
type responseSink struct {
	w       http.ResponseWriter
	format  output.Format
	opts    output.Options
	written bool
}

func (rs *responseSink) SaveImage(img image.Image, _ string) error {
	rs.w.Header().Set("Content-Type", rs.format.ContentType())
	rs.written = true
	return output.Encode(rs.w, img, rs.format, rs.opts)
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusFor(err), presenter.ErrorDocument(err.Error()))
}

func statusFor(err error) int {
	var notFound *usecase.WindowNotFoundError
	var geometry *capture.GeometryError
	var tree *window.TreeQueryError
	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &geometry), errors.As(err, &tree):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
