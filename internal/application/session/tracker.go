package session

import (
	"context"
	"sync"
)

// Tracker serializa los eventos de cambio de identidad y mantiene el último
// Workspace resuelto POR PRINCIPAL: el estado de bootstrap de un usuario nunca
// es visible ni sobrescribible por la sesión de otro. Cada evento incrementa
// un contador de generación; una resolución cuyo snapshot de generación quedó
// atrás se descarta (el resultado del último evento de ese principal es el
// autoritativo).
type Tracker struct {
	resolver *Resolver

	mu       sync.Mutex
	gen      uint64
	sessions map[string]*principalSession
}

// principalSession es el estado de bootstrap de un principal.
type principalSession struct {
	gen           uint64
	workspace     Workspace
	authenticated bool
	resolving     bool
}

// Snapshot es el estado observable de la sesión de un principal en un instante.
type Snapshot struct {
	Workspace     Workspace
	Authenticated bool
	// Resolving indica bootstrap en curso: las vistas de admin muestran
	// estado de carga (ReadyUnknown) en vez de tratarlo como no-listo.
	Resolving bool
	// Resolved indica que existe una resolución terminada para el principal.
	// Falso si el bootstrap nunca corrió en este proceso (o la sesión se
	// cerró): el cliente debe re-ejecutar GET /api/session.
	Resolved bool
}

// ReadyState devuelve el tri-estado de readiness del snapshot.
func (s Snapshot) ReadyState() Readiness {
	if s.Resolving || !s.Resolved {
		return ReadyUnknown
	}
	return s.Workspace.Readiness
}

// NewTracker construye el tracker sobre el resolver.
func NewTracker(resolver *Resolver) *Tracker {
	return &Tracker{resolver: resolver, sessions: make(map[string]*principalSession)}
}

// OnPrincipalChanged procesa un evento de identidad con principal presente
// (login o restauración de sesión): dispara una resolución para ESE principal.
// Devuelve el Workspace vigente del principal tras el evento.
func (t *Tracker) OnPrincipalChanged(ctx context.Context, p Principal) (Workspace, error) {
	t.mu.Lock()
	t.gen++
	gen := t.gen
	s, ok := t.sessions[p.ID]
	if !ok {
		s = &principalSession{workspace: emptyWorkspace()}
		t.sessions[p.ID] = s
	}
	s.gen = gen
	s.resolving = true
	t.mu.Unlock()

	ws, err := t.resolver.Resolve(ctx, p)

	t.mu.Lock()
	defer t.mu.Unlock()
	cur, ok := t.sessions[p.ID]
	if !ok {
		// Un logout del principal evictó la sesión mientras resolvíamos.
		return emptyWorkspace(), nil
	}
	if cur.gen != gen {
		// Resolución obsoleta: llegó un evento más nuevo para este principal.
		return cur.workspace, nil
	}
	cur.resolving = false
	if err != nil {
		// Fallo terminal de bootstrap: estado seguro y error hacia el usuario.
		cur.workspace = emptyWorkspace()
		cur.authenticated = false
		return cur.workspace, err
	}
	cur.workspace = ws
	cur.authenticated = true
	return cur.workspace, nil
}

// OnPrincipalAbsent procesa el evento de principal ausente (logout): elimina
// todo el estado resuelto del principal en un solo paso. Las sesiones de los
// demás principales no se tocan.
func (t *Tracker) OnPrincipalAbsent(principalID string) Workspace {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.gen++
	delete(t.sessions, principalID)
	return emptyWorkspace()
}

// CurrentFor devuelve el estado observable vigente del principal. Si el
// bootstrap nunca corrió para él, el snapshot queda sin resolver
// (ReadyUnknown).
func (t *Tracker) CurrentFor(principalID string) Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	s, ok := t.sessions[principalID]
	if !ok {
		return Snapshot{Workspace: emptyWorkspace()}
	}
	return Snapshot{
		Workspace:     s.workspace,
		Authenticated: s.authenticated,
		Resolving:     s.resolving,
		Resolved:      !s.resolving,
	}
}
