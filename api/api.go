// Package api exposes a mouse driver over HTTP and WebSocket.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/png"
	"io"
	"net/http"
	"sync"

	"github.com/allape/gogger"
	"github.com/allape/openmouse/config"
	"github.com/allape/openmouse/helper"
	"github.com/allape/openmouse/mouse"
	"github.com/allape/openmouse/mouse/dummy"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var l = gogger.New("api")

var ErrNoDriver = mouse.ErrNoDriver

type Result struct {
	OK      bool   `json:"ok"`
	Command string `json:"command,omitempty"`
	Error   string `json:"error,omitempty"`
}

type Server struct {
	Driver mouse.Driver
	Config config.Config

	// one command at a time, a click must not interleave with other requests
	locker   sync.Locker
	upgrader websocket.Upgrader
}

func New(d mouse.Driver, conf config.Config) *Server {
	s := &Server{
		Driver: d,
		Config: conf,
		locker: &sync.Mutex{},
	}
	if conf.HTTP.Cors {
		s.upgrader.CheckOrigin = func(r *http.Request) bool {
			return true
		}
	}
	return s
}

// Apply runs c against the driver while holding the command lock.
func (s *Server) Apply(c mouse.Command) error {
	if s.Driver == nil {
		return ErrNoDriver
	}

	s.locker.Lock()
	defer s.locker.Unlock()

	l.Verbose().Println("apply:", c)

	return c.Apply(s.Driver)
}

func StatusOf(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case mouse.IsInvalid(err):
		return http.StatusBadRequest
	case errors.Is(err, mouse.ErrNoDriver), errors.Is(err, mouse.ErrUnsupported):
		return http.StatusNotImplemented
	}
	return http.StatusInternalServerError
}

func (s *Server) Handler() *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())

	if s.Config.HTTP.Cors {
		engine.Use(cors.Default())
	}

	engine.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	engine.POST("/mouse/:op", s.handleCommand)
	engine.GET("/mouse/screen", s.handleScreen)
	engine.GET("/mouse/trace.png", s.handleTrace)
	engine.DELETE("/mouse/trace", s.handleTraceReset)
	engine.GET(s.Config.HTTP.WSPath, s.handleWebsocket)

	SetupUI(engine)

	return engine
}

func (s *Server) handleCommand(c *gin.Context) {
	var r mouse.Request
	if body := c.Request.Body; body != nil && body != http.NoBody {
		// chunked bodies report no length, an empty body is still fine
		if err := json.NewDecoder(body).Decode(&r); err != nil && !errors.Is(err, io.EOF) {
			c.JSON(http.StatusBadRequest, Result{Error: fmt.Errorf("%w: %v", mouse.ErrInvalidCommand, err).Error()})
			return
		}
	}
	r.Op = mouse.Op(c.Param("op"))

	cmd, err := r.Command()
	if err != nil {
		c.JSON(StatusOf(err), Result{Error: err.Error()})
		return
	}

	err = s.Apply(cmd)
	if err != nil {
		l.Warn().Println(cmd, "failed:", err)
		c.JSON(StatusOf(err), Result{Command: cmd.String(), Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, Result{OK: true, Command: cmd.String()})
}

func (s *Server) recorder() (*dummy.Driver, bool) {
	d, ok := mouse.Unwrap(s.Driver).(*dummy.Driver)
	return d, ok
}

func (s *Server) screenSize() (mouse.Size, error) {
	sizer, ok := mouse.Unwrap(s.Driver).(mouse.ScreenSizer)
	if !ok {
		return mouse.Size{}, fmt.Errorf("%w: driver does not report a screen size", mouse.ErrUnsupported)
	}
	return sizer.ScreenSize()
}

type Screen struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

func (s *Server) handleScreen(c *gin.Context) {
	if s.Driver == nil {
		c.JSON(http.StatusNotImplemented, Result{Error: mouse.ErrNoDriver.Error()})
		return
	}
	size, err := s.screenSize()
	if err != nil {
		c.JSON(StatusOf(err), Result{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, Screen{Width: size.Width, Height: size.Height})
}

func (s *Server) handleTrace(c *gin.Context) {
	d, ok := s.recorder()
	if !ok {
		c.JSON(http.StatusNotFound, Result{Error: "trace is only recorded by the dummy driver"})
		return
	}

	size, err := s.screenSize()
	if err != nil {
		c.JSON(StatusOf(err), Result{Error: err.Error()})
		return
	}

	img, err := helper.RenderTrace(d.Events(), size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, Result{Error: err.Error()})
		return
	}

	c.Header("Content-Type", "image/png")
	c.Status(http.StatusOK)
	if err := png.Encode(c.Writer, img); err != nil {
		l.Error().Println("encode trace:", err)
	}
}

func (s *Server) handleTraceReset(c *gin.Context) {
	d, ok := s.recorder()
	if !ok {
		c.JSON(http.StatusNotFound, Result{Error: "trace is only recorded by the dummy driver"})
		return
	}
	d.Reset()
	c.JSON(http.StatusOK, Result{OK: true})
}
