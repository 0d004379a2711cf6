package api

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/allape/openmouse/mouse"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// DecodeCommand accepts either the JSON form {"type":"move","x":1,"y":2}
// or a text line such as "move 1 2".
func DecodeCommand(msg []byte) (mouse.Command, error) {
	msg = bytes.TrimSpace(msg)
	if len(msg) > 0 && msg[0] == '{' {
		var r mouse.Request
		if err := json.Unmarshal(msg, &r); err != nil {
			return mouse.Command{}, fmt.Errorf("%w: %v", mouse.ErrInvalidCommand, err)
		}
		return r.Command()
	}
	return mouse.ParseCommand(string(msg))
}

func (s *Server) handleWebsocket(c *gin.Context) {
	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		l.Error().Println("upgrade:", err)
		return
	}
	defer func() {
		_ = conn.Close()
	}()

	l.Info().Println("websocket client connected:", conn.RemoteAddr())

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				l.Warn().Println("read:", err)
			}
			return
		}

		result := Result{OK: true}

		cmd, err := DecodeCommand(msg)
		if err == nil {
			result.Command = cmd.String()
			err = s.Apply(cmd)
		}
		if err != nil {
			result = Result{Command: result.Command, Error: err.Error()}
		}

		if err := conn.WriteJSON(result); err != nil {
			l.Warn().Println("write:", err)
			return
		}
	}
}
