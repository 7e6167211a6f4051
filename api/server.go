package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image/png"
	"log"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/matt-g-everett/chartanim/chart"
	"github.com/matt-g-everett/chartanim/stream"
	"github.com/matt-g-everett/chartanim/surface"
	"github.com/rs/cors"
)

const (
	defaultKeyframes = 10
	maxKeyframes     = 1000

	// Largest container side accepted from a query.
	maxContainer = 8192
)

// Api serves previews of the configured slides.
type Api struct {
	config   stream.Config
	extents  chart.Extents
	upgrader websocket.Upgrader

	// mu guards the shared preview surface; one frame is painted at a time.
	mu      sync.Mutex
	session *chart.Session
	raster  *surface.Raster
}

// NewApi creates an instance of an Api for the slides in config.
func NewApi(config stream.Config) (*Api, error) {
	a := new(Api)
	a.config = config
	a.extents = config.Extents()
	a.upgrader = websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}

	raster, err := surface.NewRaster(a.extents.Pixels())
	if err != nil {
		return nil, fmt.Errorf("create preview surface: %w", err)
	}
	a.raster = raster
	a.session = chart.NewSession()
	return a, nil
}

// Logger logs every request with the time taken to serve it.
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s %s", r.Method, r.RequestURI, time.Since(start))
	})
}

// Router returns the handler for every route, CORS enabled.
func (a *Api) Router() http.Handler {
	r := mux.NewRouter()
	r.Use(Logger)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/slides", a.slides).Methods("GET")
	api.HandleFunc("/slides/{slide:[0-9]+}/frame.png", a.framePNG).Methods("GET")
	api.HandleFunc("/slides/{slide:[0-9]+}/frame.svg", a.frameSVG).Methods("GET")
	api.HandleFunc("/slides/{slide:[0-9]+}/keyframes", a.keyframes).Methods("GET")
	api.HandleFunc("/slides/{slide:[0-9]+}/play", a.play)

	r.PathPrefix("/").Handler(http.FileServer(http.Dir(a.config.Server.Static)))

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
	})
	return c.Handler(r)
}

// Serve listens on the configured address until ctx is done.
func (a *Api) Serve(ctx context.Context) error {
	srv := &http.Server{
		Handler:     a.Router(),
		Addr:        a.config.Server.Addr,
		ReadTimeout: 15 * time.Second,
	}

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			srv.Shutdown(shutdown)
		case <-done:
		}
	}()

	log.Printf("Listening on %s", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve %s: %w", srv.Addr, err)
	}
	return nil
}

type slideInfo struct {
	Index     int           `json:"index"`
	Animation chart.Config  `json:"animation"`
	Data      chart.Dataset `json:"data"`
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Write response: %v", err)
	}
}

func (a *Api) slides(w http.ResponseWriter, r *http.Request) {
	out := make([]slideInfo, len(a.config.Slides))
	for i, s := range a.config.Slides {
		out[i] = slideInfo{Index: i, Animation: s.Animation, Data: s.Data}
	}
	writeJSON(w, out)
}

// slide looks up the slide named in the route, writing a 404 when there is
// none.
func (a *Api) slide(w http.ResponseWriter, r *http.Request) (stream.Slide, bool) {
	i, err := strconv.Atoi(mux.Vars(r)["slide"])
	if err != nil || i < 0 || i >= len(a.config.Slides) {
		http.Error(w, "no such slide", http.StatusNotFound)
		return stream.Slide{}, false
	}
	return a.config.Slides[i], true
}

// progress reads the raw progress query value; a missing value is the final
// frame.
func progress(r *http.Request) (float64, error) {
	s := r.URL.Query().Get("progress")
	if s == "" {
		return 1, nil
	}
	p, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("bad progress %q: %w", s, err)
	}
	return p, nil
}

// container reads the width and height query values, defaulting each to the
// configured container.
func (a *Api) container(r *http.Request) (float64, float64, error) {
	dims := [2]float64{a.config.Surface.Width, a.config.Surface.Height}
	for i, name := range []string{"width", "height"} {
		s := r.URL.Query().Get(name)
		if s == "" {
			continue
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || !(v > 0) || v > maxContainer {
			return 0, 0, fmt.Errorf("%s must be between 0 and %d", name, maxContainer)
		}
		dims[i] = v
	}
	return dims[0], dims[1], nil
}

// frameQuery reads everything a single frame request needs.
func (a *Api) frameQuery(w http.ResponseWriter, r *http.Request) (s stream.Slide, p, cw, ch float64, ok bool) {
	if s, ok = a.slide(w, r); !ok {
		return
	}
	var err error
	if p, err = progress(r); err == nil {
		cw, ch, err = a.container(r)
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return s, 0, 0, 0, false
	}
	return s, p, cw, ch, true
}

func (a *Api) framePNG(w http.ResponseWriter, r *http.Request) {
	s, p, cw, ch, ok := a.frameQuery(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	a.mu.Lock()
	a.session.Setup(s.Data, s.Animation, a.raster)
	a.session.Resize(cw, ch)
	a.session.RenderFrame(p)
	err := png.Encode(&buf, a.raster.Image())
	a.mu.Unlock()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Write(buf.Bytes())
}

func (a *Api) frameSVG(w http.ResponseWriter, r *http.Request) {
	s, p, cw, ch, ok := a.frameQuery(w, r)
	if !ok {
		return
	}

	rec := surface.NewRecorder(a.extents.Pixels())
	session := chart.NewSession()
	session.Setup(s.Data, s.Animation, rec)
	session.Resize(cw, ch)
	session.RenderFrame(p)

	w.Header().Set("Content-Type", "image/svg+xml")
	surface.WriteSVG(w, rec)
}

func (a *Api) keyframes(w http.ResponseWriter, r *http.Request) {
	s, ok := a.slide(w, r)
	if !ok {
		return
	}
	n := defaultKeyframes
	if q := r.URL.Query().Get("n"); q != "" {
		v, err := strconv.Atoi(q)
		if err != nil || v < 1 || v > maxKeyframes {
			http.Error(w, fmt.Sprintf("n must be between 1 and %d", maxKeyframes), http.StatusBadRequest)
			return
		}
		n = v
	}

	session := chart.NewSession()
	session.Setup(s.Data, s.Animation, nil)
	writeJSON(w, struct {
		Keyframes []float64 `json:"keyframes"`
	}{session.GenerateKeyframes(n)})
}

// play streams the slide over a websocket as binary frames, one message per
// frame, then closes normally.
func (a *Api) play(w http.ResponseWriter, r *http.Request) {
	s, ok := a.slide(w, r)
	if !ok {
		return
	}
	conn, err := a.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Upgrade: %v", err)
		return
	}
	defer conn.Close()

	raster, err := surface.NewRaster(a.extents.Pixels())
	if err != nil {
		log.Printf("Create surface: %v", err)
		return
	}
	config := a.config
	config.Slides = []stream.Slide{s}
	player := stream.NewPlayer(config, chart.NewSession(), raster)

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()
	go func() {
		// Reading is only needed to notice the peer going away.
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				cancel()
				return
			}
		}
	}()

	err = player.Run(ctx, func(f stream.Frame) error {
		b, err := f.MarshalBinary()
		if err != nil {
			return err
		}
		return conn.WriteMessage(websocket.BinaryMessage, b)
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("Play slide: %v", err)
		return
	}
	conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, "done"))
}
