// Package webhook entrega eventos del buzón de feedback al endpoint HTTP
// configurado por cada empresa. Usa net/http de la stdlib; no requiere
// librerías de terceros.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jhoicas/gestion-api/internal/application/dto"
	"github.com/jhoicas/gestion-api/internal/application/usecase"
)

var _ usecase.WebhookSender = (*Notifier)(nil)

// Notifier implementa usecase.WebhookSender con un POST JSON.
type Notifier struct {
	httpClient *http.Client
}

// NewNotifier construye el notificador. timeout acota el POST completo;
// un webhook lento no debe retener goroutines indefinidamente.
func NewNotifier(timeout time.Duration) *Notifier {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Notifier{httpClient: &http.Client{Timeout: timeout}}
}

// Send publica el evento como JSON en la URL de la empresa. Cualquier status
// fuera de 2xx cuenta como fallo; el caller decide si reintenta.
func (n *Notifier) Send(ctx context.Context, url string, event dto.FeedbackEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("webhook: serializar evento: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("webhook: crear request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "gestion-api-webhook/1.0")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("webhook: POST %s: %w", url, err)
	}
	defer resp.Body.Close()
	// Drenar el cuerpo para reusar la conexión.
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("webhook: %s respondió %d", url, resp.StatusCode)
	}
	return nil
}
