// Package opener entrega URIs externos (whatsapp://, etc.) al sistema operativo.
package opener

import (
	"context"
	"os/exec"
	"runtime"

	"github.com/jhoicas/spares-manager/internal/application/share"
)

var _ share.Opener = (*System)(nil)

// System abre URIs con el lanzador del sistema (xdg-open, open, start).
type System struct {
	goos string
}

// NewSystem construye el opener para el sistema operativo actual.
func NewSystem() *System {
	return &System{goos: runtime.GOOS}
}

// Command devuelve el comando y argumentos usados para abrir uri.
func (s *System) Command(uri string) (string, []string) {
	switch s.goos {
	case "windows":
		return "cmd", []string{"/c", "start", "", uri}
	case "darwin":
		return "open", []string{uri}
	default:
		return "xdg-open", []string{uri}
	}
}

// Open lanza el comando sin esperar a que termine la app externa.
func (s *System) Open(ctx context.Context, uri string) error {
	name, args := s.Command(uri)
	cmd := exec.CommandContext(ctx, name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()
	return nil
}
