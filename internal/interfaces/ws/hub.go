// Package ws implementa el canal en vivo del buzón de feedback: un hub de
// suscriptores websocket agrupados por empresa. El caso de uso de feedback
// publica eventos insert/update y el hub los reparte a las conexiones de la
// empresa correspondiente.
package ws

import (
	"encoding/json"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/gestion-api/internal/application/dto"
	"github.com/jhoicas/gestion-api/internal/application/usecase"
	"github.com/rs/zerolog"
)

// tamaño del buffer de salida por conexión; un suscriptor lento pierde
// eventos en vez de bloquear la publicación.
const sendBuffer = 16

var _ usecase.FeedbackPublisher = (*Hub)(nil)

// suscriptor una conexión websocket con su cola de salida. El goroutine
// escritor es el único que toca conn para escribir.
type suscriptor struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub registro de suscriptores por empresa. Seguro para uso concurrente.
type Hub struct {
	mu   sync.RWMutex
	subs map[string]map[*suscriptor]struct{}
	log  zerolog.Logger
}

// NewHub construye el hub.
func NewHub(log zerolog.Logger) *Hub {
	return &Hub{
		subs: make(map[string]map[*suscriptor]struct{}),
		log:  log,
	}
}

// Publish reparte el evento a los suscriptores de la empresa. Nunca bloquea:
// si la cola de un suscriptor está llena, ese suscriptor pierde el evento.
func (h *Hub) Publish(empresaID string, event dto.FeedbackEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		h.log.Error().Err(err).Str("empresa_id", empresaID).Msg("serializar evento de feedback")
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for s := range h.subs[empresaID] {
		select {
		case s.send <- payload:
		default:
			h.log.Warn().Str("empresa_id", empresaID).Msg("suscriptor lento, evento descartado")
		}
	}
}

// Handler devuelve el handler websocket de /ws/feedback. Requiere pasar antes
// por el AuthMiddleware HTTP: la empresa del suscriptor sale de los locals.
func (h *Hub) Handler() fiber.Handler {
	return websocket.New(func(c *websocket.Conn) {
		empresaID, _ := c.Locals("empresa_id").(string)
		if empresaID == "" {
			_ = c.Close()
			return
		}

		s := &suscriptor{conn: c, send: make(chan []byte, sendBuffer)}
		h.suscribir(empresaID, s)

		done := make(chan struct{})
		go func() {
			defer close(done)
			for payload := range s.send {
				if err := c.WriteMessage(websocket.TextMessage, payload); err != nil {
					return
				}
			}
		}()

		// Lazo de lectura: solo para detectar el cierre del cliente. Los
		// mensajes entrantes se ignoran, el canal es de salida.
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}

		// Primero sacar al suscriptor del registro y recién entonces cerrar
		// su cola: ningún Publish puede estar enviando tras desuscribir.
		h.desuscribir(empresaID, s)
		close(s.send)
		<-done
	})
}

// Upgrade es el middleware previo que rechaza peticiones que no sean un
// upgrade websocket.
func Upgrade() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	}
}

func (h *Hub) suscribir(empresaID string, s *suscriptor) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.subs[empresaID] == nil {
		h.subs[empresaID] = make(map[*suscriptor]struct{})
	}
	h.subs[empresaID][s] = struct{}{}
	h.log.Debug().Str("empresa_id", empresaID).Int("suscriptores", len(h.subs[empresaID])).Msg("suscriptor conectado")
}

func (h *Hub) desuscribir(empresaID string, s *suscriptor) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.subs[empresaID], s)
	if len(h.subs[empresaID]) == 0 {
		delete(h.subs, empresaID)
	}
}
